package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Model holds the columns shared by every stored record.
type Model struct {
	ID       int64
	Metadata json.RawMessage
}

// EmptyMetadata is stored when a request omits the metadata key.
var EmptyMetadata = json.RawMessage(`""`)

// ID is a record id decoded from either a JSON number or a numeric string.
type ID int64

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}

	if len(b) > 1 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		b = []byte(s)
	}

	n, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %s: %w", b, err)
	}

	*id = ID(n)
	return nil
}

// ParseID parses a path segment into a positive record id.
func ParseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse id %q: %w", s, err)
	}

	if id <= 0 {
		return 0, fmt.Errorf("parse id %q: must be positive", s)
	}

	return id, nil
}
