package storage

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const cursorSeparator = "_"

// Cursor is the position of a record in the (created_at, id) descending order
// every listing query uses. The zero Cursor means the first page.
type Cursor struct {
	CreatedAt time.Time
	ID        uuid.UUID
}

// IsZero reports whether the cursor points at the first page.
func (c Cursor) IsZero() bool { return c.CreatedAt.IsZero() }

func (c Cursor) String() string {
	if c.IsZero() {
		return ""
	}

	return c.CreatedAt.UTC().Format(time.RFC3339Nano) + cursorSeparator + c.ID.String()
}

// Page groups one page of records together with an optional NextCursor used
// for pagination. Records are ordered by creation time, newest first, with the
// ID breaking ties.
type Page[T any] struct {
	// Items contains the current page of records.
	Items []T
	// NextCursor points at the last returned record. It is nil when there is
	// no next page.
	NextCursor *Cursor
}

// ParseCursor parses a cursor produced by Page.Cursor. An empty cursor yields
// the zero Cursor, which means the first page.
func ParseCursor(cursor string) (Cursor, error) {
	if cursor == "" {
		return Cursor{}, nil
	}

	at, ID, ok := strings.Cut(cursor, cursorSeparator)
	if !ok {
		return Cursor{}, errors.New("could not parse cursor: missing record id")
	}

	t, err := time.Parse(time.RFC3339Nano, at)
	if err != nil {
		return Cursor{}, fmt.Errorf("could not parse cursor: %w", err)
	}
	parsedID, err := uuid.Parse(ID)
	if err != nil {
		return Cursor{}, fmt.Errorf("could not parse cursor: %w", err)
	}

	return Cursor{CreatedAt: t, ID: parsedID}, nil
}

// Cursor formats the NextCursor of the page, or returns an empty string when
// there is no next page.
func (p Page[T]) Cursor() string {
	if p.NextCursor == nil {
		return ""
	}

	return p.NextCursor.String()
}
