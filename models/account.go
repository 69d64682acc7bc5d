package models

import (
	"encoding/json"
	"slices"
)

// Account is a user known to the reference API server.
type Account struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
}

// Group is a shared library on the reference API server. Version bumps on
// every metadata change.
type Group struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Owner   int64   `json:"owner"`
	Members []int64 `json:"members"`
	Version int64   `json:"version"`
}

// HasMember reports whether userID owns or belongs to the group.
func (g Group) HasMember(userID int64) bool {
	return g.Owner == userID || slices.Contains(g.Members, userID)
}

// APIKey is a key issued by POST /keys.
type APIKey struct {
	Key      string `json:"key"`
	UserID   int64  `json:"userID"`
	Username string `json:"username"`
}

// ObjectWrite is one object of a write request in body order.
type ObjectWrite struct {
	Key string
	// Version is the version the client based the edit on; -1 when the
	// body carried none.
	Version int64
	Body    []byte
}

// WriteOutcome is the server's answer for a write request, indexed like the
// request body.
type WriteOutcome struct {
	Successful map[int]json.RawMessage `json:"successful"`
	Unchanged  map[int]string          `json:"unchanged"`
	Failed     map[int]WriteFailure    `json:"failed"`
	Version    int64                   `json:"-"`
}

// WriteFailure describes why one object of a write was refused.
type WriteFailure struct {
	Key     string `json:"key"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}
