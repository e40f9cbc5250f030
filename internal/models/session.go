package models

// Session is the logged-in terminal user, persisted under the
// "currentUser" key so a restart restores the session.
type Session struct {
	Username string `json:"username"`
}
