// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	getVersion = `
		SELECT version
		FROM versions
		WHERE kind = ? AND library_id = ? AND object_type = ?;`

	setVersion = `
		INSERT INTO versions (kind, library_id, object_type, version, updated_at)
		VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (kind, library_id, object_type) DO UPDATE SET
			version    = excluded.version,
			updated_at = excluded.updated_at;`

	listVersions = `
		SELECT object_type, version
		FROM versions
		WHERE kind = ? AND library_id = ?;`

	getUser = `
		SELECT user_id, name
		FROM users
		WHERE user_id = ?;`

	insertUser = `
		INSERT INTO users (user_id, name)
		VALUES (?, ?);`

	getLibrary = `
		SELECT kind, library_id, name, owner_id
		FROM libraries
		WHERE kind = ? AND library_id = ?;`

	insertLibrary = `
		INSERT INTO libraries (kind, library_id, name, owner_id)
		VALUES (?, ?, ?, ?);`

	updateLibraryName = `
		UPDATE libraries SET name = ?
		WHERE kind = ? AND library_id = ?;`

	listLibraries = `
		SELECT kind, library_id, name, owner_id
		FROM libraries
		ORDER BY kind DESC, library_id;`

	getRecord = `
		SELECT object_key, version, status, body, updated_at
		FROM records
		WHERE kind = ? AND library_id = ? AND object_type = ? AND object_key = ?;`

	listRecordStates = `
		SELECT object_key, version, status
		FROM records
		WHERE kind = ? AND library_id = ? AND object_type = ?;`

	listRecordsByStatus = `
		SELECT object_key, version, status, body, updated_at
		FROM records
		WHERE kind = ? AND library_id = ? AND object_type = ? AND status = ?
		ORDER BY updated_at, object_key;`

	insertRecord = `
		INSERT INTO records (kind, library_id, object_type, object_key, version, status, body, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP);`

	updateRecord = `
		UPDATE records SET
			version    = ?,
			status     = ?,
			body       = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE kind = ? AND library_id = ? AND object_type = ? AND object_key = ?;`

	upsertQueueEntry = `
		INSERT INTO deletion_queue (kind, library_id, object_type, object_key, version, queued_at)
		VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (kind, library_id, object_type, object_key) DO UPDATE SET
			version = excluded.version;`

	listQueueEntries = `
		SELECT kind, library_id, object_type, object_key, version, queued_at
		FROM deletion_queue
		WHERE kind = ? AND library_id = ? AND object_type = ?
		ORDER BY queued_at, object_key;`

	listAllQueueEntries = `
		SELECT kind, library_id, object_type, object_key, version, queued_at
		FROM deletion_queue
		ORDER BY kind DESC, library_id, object_type, queued_at, object_key;`
)

// Tables scoped by library; RemoveLibrary clears all of them.
var libraryScopedTables = []string{"deletion_queue", "records", "versions", "libraries"}
