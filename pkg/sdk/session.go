package sdk

import (
	"encoding/json"
	"log"
	"sync"
)

// RestorationState reports whether the persisted session has been read yet.
// Dependents use it to distinguish "definitely logged out" from "don't know
// yet", which matters for avoiding a spurious redirect to login while the
// session is still being restored.
type RestorationState int

const (
	// RestorationPending is the initial state, before Restore has run.
	RestorationPending RestorationState = iota
	// RestorationResolved means Restore has completed (successfully or empty).
	RestorationResolved
)

// Snapshot is an immutable view of the session at a point in time.
// Credential presence is the authentication signal; Role and Profile are
// auxiliary and may be briefly absent even when Credential is set.
type Snapshot struct {
	Credential  string
	Role        Role
	Profile     Profile
	Restoration RestorationState
}

// Authenticated reports whether the snapshot carries a credential.
func (s Snapshot) Authenticated() bool {
	return s.Credential != ""
}

// Session is the single owner of the authenticated state for the current
// process: the bearer credential, the caller's role, and the user profile.
// It is constructed with an injected CredentialStore and passed explicitly to
// its consumers; there is no package-level session.
//
// Login and Logout replace or clear all fields together, so observers never
// see a credential without its role or vice versa.
type Session struct {
	store CredentialStore

	mu          sync.RWMutex
	credential  string
	role        Role
	profile     Profile
	restoration RestorationState

	subMu       sync.Mutex
	subscribers map[int]func(Snapshot)
	nextSubID   int
}

// NewSession creates an empty, unrestored session backed by store.
// A nil store is allowed; the session is then memory-only.
func NewSession(store CredentialStore) *Session {
	return &Session{
		store:       store,
		restoration: RestorationPending,
		subscribers: make(map[int]func(Snapshot)),
	}
}

// Restore reads persisted credentials into memory. It runs once per process:
// subsequent calls are no-ops. Missing or malformed persisted data leaves the
// session empty rather than failing; Restore always ends with the session
// resolved.
func (s *Session) Restore() {
	s.mu.Lock()
	if s.restoration == RestorationResolved {
		s.mu.Unlock()
		return
	}

	if s.store != nil {
		creds, err := s.store.LoadCredentials()
		if err == nil && creds != nil && creds.Token != "" {
			s.credential = creds.Token
			s.role = creds.Role
			s.profile = decodeStoredProfile(creds.User)
		}
	}
	s.restoration = RestorationResolved
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
}

// Login replaces the session with the given profile, credential, and role,
// persisting all three under the fixed storage keys. A persistence failure is
// non-fatal: the in-memory session still updates and remains authoritative
// for the rest of the process lifetime.
func (s *Session) Login(profile Profile, credential string, role Role) {
	if s.store != nil {
		user, err := json.Marshal(profile)
		if err != nil {
			user = nil
		}
		err = s.store.SaveCredentials(&Credentials{
			Token: credential,
			Role:  role,
			User:  user,
		})
		if err != nil {
			log.Printf("session: failed to persist credentials: %v", err)
		}
	}

	s.mu.Lock()
	s.credential = credential
	s.role = role
	s.profile = profile
	s.restoration = RestorationResolved
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
}

// Logout clears the persisted and in-memory session together. It is
// idempotent: logging out an already-empty session is a no-op.
func (s *Session) Logout() {
	if s.store != nil {
		if err := s.store.DeleteCredentials(); err != nil {
			log.Printf("session: failed to delete credentials: %v", err)
		}
	}

	s.mu.Lock()
	wasEmpty := s.credential == "" && s.role == "" && s.profile == nil
	s.credential = ""
	s.role = ""
	s.profile = nil
	snap := s.snapshotLocked()
	s.mu.Unlock()

	if !wasEmpty {
		s.notify(snap)
	}
}

// Snapshot returns a consistent view of the session.
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Authenticated reports whether a credential is currently held.
func (s *Session) Authenticated() bool {
	return s.Snapshot().Authenticated()
}

// Subscribe registers fn to be called with the new snapshot after every
// session mutation. The returned function cancels the subscription.
func (s *Session) Subscribe(fn func(Snapshot)) func() {
	s.subMu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subscribers, id)
		s.subMu.Unlock()
	}
}

// decodeStoredProfile parses a persisted user record. Malformed data yields
// an absent profile, never an error: the credential next to it stays usable
// and only the display data degrades.
func decodeStoredProfile(raw json.RawMessage) Profile {
	if len(raw) == 0 {
		return nil
	}
	var profile Profile
	if err := json.Unmarshal(raw, &profile); err != nil {
		return nil
	}
	return profile
}

func (s *Session) snapshotLocked() Snapshot {
	return Snapshot{
		Credential:  s.credential,
		Role:        s.role,
		Profile:     s.profile,
		Restoration: s.restoration,
	}
}

func (s *Session) notify(snap Snapshot) {
	s.subMu.Lock()
	fns := make([]func(Snapshot), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}
