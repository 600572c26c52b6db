// Package pagination encodes opaque keyset cursors for listings ordered by
// entry date descending, then entry ID descending.
package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

const dateFormat = "2006-01-02"

// Cursor identifies the last entry returned on a page.
type Cursor struct {
	Date    string // YYYY-MM-DD
	EntryID string
}

// EncodeToken creates a base64 encoded token from a cursor.
func EncodeToken(c Cursor) string {
	tokenStr := fmt.Sprintf("%s|%s", c.Date, c.EntryID)
	return base64.RawURLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeToken parses a token produced by EncodeToken.
func DecodeToken(token string) (Cursor, error) {
	decodedBytes, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return Cursor{}, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}

	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 || parts[1] == "" {
		return Cursor{}, fmt.Errorf("invalid pagination token format (split)")
	}

	if _, err := time.Parse(dateFormat, parts[0]); err != nil {
		return Cursor{}, fmt.Errorf("invalid pagination token format (date parse): %w", err)
	}

	return Cursor{Date: parts[0], EntryID: parts[1]}, nil
}

// Follows reports whether an entry at (date, entryID) comes after c in
// date-descending, ID-descending order.
func (c Cursor) Follows(date, entryID string) bool {
	if date != c.Date {
		return date < c.Date
	}
	return entryID < c.EntryID
}
