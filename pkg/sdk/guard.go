package sdk

// Decision is the outcome of evaluating a protected route against the
// current session.
type Decision int

const (
	// DecisionLoading means restoration has not completed; the caller should
	// show a neutral placeholder and make no authorization decision yet.
	DecisionLoading Decision = iota
	// DecisionRedirectLogin means the caller is unauthenticated and should be
	// sent to the login entry point (replacing, not pushing, history so the
	// back button does not loop).
	DecisionRedirectLogin
	// DecisionRedirectHome means the caller is authenticated but lacks the
	// required role; send them to the default authenticated landing location,
	// not back to login.
	DecisionRedirectHome
	// DecisionRender means the protected content may be shown.
	DecisionRender
)

func (d Decision) String() string {
	switch d {
	case DecisionLoading:
		return "loading"
	case DecisionRedirectLogin:
		return "redirect-login"
	case DecisionRedirectHome:
		return "redirect-home"
	case DecisionRender:
		return "render"
	default:
		return "unknown"
	}
}

// EvaluateRoute decides whether a protected route may render for the given
// session snapshot. required is the route's role constraint; the empty string
// means any authenticated caller is allowed.
//
// Role comparison is exact: superadmin does not satisfy an admin requirement.
// The check is a pure function of its inputs and retains no state between
// evaluations; callers re-run it whenever the session or navigation changes.
func EvaluateRoute(snap Snapshot, required Role) Decision {
	if snap.Restoration == RestorationPending {
		return DecisionLoading
	}
	if !snap.Authenticated() {
		return DecisionRedirectLogin
	}
	if required != "" && snap.Role != required {
		return DecisionRedirectHome
	}
	return DecisionRender
}
