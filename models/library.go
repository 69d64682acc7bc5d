// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strconv"
)

// LibraryKind distinguishes a user's own library from a group library.
type LibraryKind string

const (
	// LibraryPersonal is the library owned by the authenticated user.
	LibraryPersonal LibraryKind = "personal"
	// LibraryGroup is a shared library discovered through group metadata.
	LibraryGroup LibraryKind = "group"
)

// Library identifies the unit of isolation for versions, objects and
// deletions. Two libraries with the same ID but different kinds are distinct.
type Library struct {
	Kind LibraryKind `json:"kind"`
	ID   int64       `json:"id"`
}

// PersonalLibrary returns the library owned by userID.
func PersonalLibrary(userID int64) Library {
	return Library{Kind: LibraryPersonal, ID: userID}
}

// GroupLibrary returns the library of groupID.
func GroupLibrary(groupID int64) Library {
	return Library{Kind: LibraryGroup, ID: groupID}
}

// Valid reports whether the library has a known kind and a positive ID.
func (l Library) Valid() bool {
	return (l.Kind == LibraryPersonal || l.Kind == LibraryGroup) && l.ID > 0
}

// APIPath returns the resource prefix of the library on the remote API,
// e.g. "users/42" or "groups/7".
func (l Library) APIPath() string {
	switch l.Kind {
	case LibraryGroup:
		return "groups/" + strconv.FormatInt(l.ID, 10)
	default:
		return "users/" + strconv.FormatInt(l.ID, 10)
	}
}

func (l Library) String() string {
	return fmt.Sprintf("%s:%d", l.Kind, l.ID)
}

// LibraryInfo is the locally stored description of a library.
type LibraryInfo struct {
	Library
	Name    string `json:"name"`
	OwnerID int64  `json:"owner_id"`
}

// User is the local placeholder of a remote account. Users are autocreated
// the first time they are referenced (login, group ownership).
type User struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
