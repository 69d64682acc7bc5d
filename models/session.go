package models

// Credentials are the user-entered login data. They never leave the login
// call; only the resulting API key is persisted.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is the body returned by the API key endpoint on login.
type LoginResponse struct {
	UserID int64  `json:"userID"`
	Name   string `json:"username"`
	Key    string `json:"key"`
}

// Session is an authenticated account on this device.
type Session struct {
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
	APIKey string `json:"-"`
}

// Library returns the personal library of the session's user.
func (s Session) Library() Library {
	return PersonalLibrary(s.UserID)
}
