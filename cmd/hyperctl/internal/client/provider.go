package client

import (
	"fmt"
	"sync"

	"github.com/pterm/pterm"

	"github.com/hypertool/hypertool/cmd/hyperctl/internal/auth"
	"github.com/hypertool/hypertool/pkg/sdk"
)

// Provider yields the restored session and an authenticated SDK client
// backed by the file credential store. Construction is lazy and cached, so
// commands that never talk to the server pay nothing.
type Provider struct {
	serverURL string

	sessionOnce sync.Once
	session     *sdk.Session
	sessionErr  error

	sdkOnce   sync.Once
	sdkClient *sdk.Client
	sdkErr    error
}

// NewProvider constructs a Provider bound to the given server URL.
func NewProvider(serverURL string) *Provider {
	return &Provider{serverURL: serverURL}
}

// Session returns the process-wide session, restored from the credential
// store on first use.
func (p *Provider) Session() (*sdk.Session, error) {
	p.sessionOnce.Do(func() {
		store, err := auth.NewFileStore()
		if err != nil {
			p.sessionErr = fmt.Errorf("failed to create credential store: %w", err)
			return
		}
		p.session = sdk.NewSession(store)
		p.session.Restore()
	})
	if p.sessionErr != nil {
		return nil, p.sessionErr
	}
	return p.session, nil
}

// SDKClient returns a client bound to the restored session.
func (p *Provider) SDKClient() (*sdk.Client, error) {
	p.sdkOnce.Do(func() {
		session, err := p.Session()
		if err != nil {
			p.sdkErr = err
			return
		}
		p.sdkClient = sdk.NewClient(p.serverURL, session,
			sdk.WithSessionExpiredHandler(func() {
				pterm.Warning.Println("Session expired; please run `hyperctl auth login` again.")
			}),
		)
	})
	if p.sdkErr != nil {
		return nil, p.sdkErr
	}
	return p.sdkClient, nil
}

// Authorize checks the current session against a role requirement the same
// way protected routes do, and translates the decision into a CLI error.
func (p *Provider) Authorize(required sdk.Role) error {
	session, err := p.Session()
	if err != nil {
		return err
	}
	switch decision := sdk.EvaluateRoute(session.Snapshot(), required); decision {
	case sdk.DecisionRender:
		return nil
	case sdk.DecisionRedirectLogin:
		return fmt.Errorf("not logged in; please run `hyperctl auth login`")
	case sdk.DecisionRedirectHome:
		return fmt.Errorf("this command requires the %q role", required)
	default:
		return fmt.Errorf("session not ready (%s)", decision)
	}
}
