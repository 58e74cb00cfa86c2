package internal

import (
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

// OpenDatabase opens a SQLite database in read-only mode. The IDE may hold
// the file open with an exclusive lock, in which case Ping fails and the
// caller degrades to an empty result.
func OpenDatabase(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, &StorageError{Path: path, Op: "open", Err: err}
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, &StorageError{Path: path, Op: "open", Err: err}
	}

	return db, nil
}

// QueryItemValue fetches the value for one exact key from the per-workspace
// ItemTable. A missing key is not an error; it returns ("", nil).
func QueryItemValue(db *sql.DB, key string) (string, error) {
	var value sql.NullString
	err := db.QueryRow("SELECT value FROM ItemTable WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("query %s failed: %w", key, err)
	}
	if !value.Valid {
		return "", nil
	}
	return value.String, nil
}

// QueryItemLike fetches the first ItemTable value whose key matches a LIKE
// pattern. A missing match returns ("", nil).
func QueryItemLike(db *sql.DB, pattern string) (string, error) {
	var value sql.NullString
	err := db.QueryRow("SELECT value FROM ItemTable WHERE key LIKE ? LIMIT 1", pattern).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("query pattern %s failed: %w", pattern, err)
	}
	if !value.Valid {
		return "", nil
	}
	return value.String, nil
}

// KeyValuePair is one row from the global cursorDiskKV table.
type KeyValuePair struct {
	Key   string
	Value string
}

// QueryCursorDiskKV queries the global cursorDiskKV table with a LIKE pattern.
func QueryCursorDiskKV(db *sql.DB, pattern string) ([]KeyValuePair, error) {
	rows, err := db.Query("SELECT key, value FROM cursorDiskKV WHERE key LIKE ? AND value IS NOT NULL", pattern)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	var pairs []KeyValuePair
	for rows.Next() {
		var pair KeyValuePair
		var value sql.NullString
		if err := rows.Scan(&pair.Key, &value); err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		if value.Valid {
			pair.Value = value.String
			pairs = append(pairs, pair)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return pairs, nil
}
