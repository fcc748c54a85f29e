// Package sessionstate gives the per-client session bag an explicit shape.
// Registration accumulates staged fields across requests; none of them are
// authoritative until the final stage commits a user row.
package sessionstate

import (
	"github.com/gofiber/fiber/v2/middleware/session"
)

// Stage marks how far a client has progressed through registration.
type Stage int

const (
	StageAnonymous Stage = iota
	StageIdentity
	StageCredentials
	StageAuthenticated
)

// Session keys. Kept private so every read and write goes through State.
const (
	keyStage      = "stage"
	keyMobile     = "mobile"
	keyName       = "name"
	keyEmail      = "email"
	keyDigest     = "credentialDigest"
	keyIsLoggedIn = "isLoggedIn"
	keySessionID  = "sessionId"
	keyUserID     = "userId"
)

// State is the typed projection of one client's session.
type State struct {
	Stage Stage

	// Staged registration fields, pending the final commit
	Mobile           string
	Name             string
	Email            string
	CredentialDigest string

	// Login fields, set after a session row is durably created
	IsLoggedIn bool
	SessionID  uint
	UserID     uint
}

// FromSession loads the state held in a fiber session. Absent keys leave
// zero values, so a fresh session yields an anonymous state.
func FromSession(sess *session.Session) *State {
	st := &State{}
	if v, ok := sess.Get(keyStage).(int); ok {
		st.Stage = Stage(v)
	}
	if v, ok := sess.Get(keyMobile).(string); ok {
		st.Mobile = v
	}
	if v, ok := sess.Get(keyName).(string); ok {
		st.Name = v
	}
	if v, ok := sess.Get(keyEmail).(string); ok {
		st.Email = v
	}
	if v, ok := sess.Get(keyDigest).(string); ok {
		st.CredentialDigest = v
	}
	if v, ok := sess.Get(keyIsLoggedIn).(bool); ok {
		st.IsLoggedIn = v
	}
	if v, ok := sess.Get(keySessionID).(uint); ok {
		st.SessionID = v
	}
	if v, ok := sess.Get(keyUserID).(uint); ok {
		st.UserID = v
	}
	return st
}

// Save writes the state back into the fiber session and persists it.
func (st *State) Save(sess *session.Session) error {
	sess.Set(keyStage, int(st.Stage))
	sess.Set(keyMobile, st.Mobile)
	sess.Set(keyName, st.Name)
	sess.Set(keyEmail, st.Email)
	sess.Set(keyDigest, st.CredentialDigest)
	sess.Set(keyIsLoggedIn, st.IsLoggedIn)
	sess.Set(keySessionID, st.SessionID)
	sess.Set(keyUserID, st.UserID)
	return sess.Save()
}

// StagedComplete reports whether both earlier registration stages have
// populated this session.
func (st *State) StagedComplete() bool {
	return st.Mobile != "" && st.Name != "" && st.Email != "" && st.CredentialDigest != ""
}

// ClearLogin drops the login fields. Staged registration progress is kept;
// a registered user simply needs a fresh login.
func (st *State) ClearLogin() {
	st.IsLoggedIn = false
	st.SessionID = 0
	st.UserID = 0
}
