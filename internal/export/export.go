// Package export models the JSON document produced by Telegram Desktop's
// "Export chat history" feature and loads it into memory in one pass.
package export

import (
	"encoding/json"
	"fmt"
	"os"
)

// Export is the top-level exported document: one chat and its full message
// history in original order.
type Export struct {
	Name     string    `json:"name"`
	ID       int64     `json:"id"`
	Messages []Message `json:"messages"`
}

// Message is a single raw record from the export. Service records carry a
// Type other than "message" and may have no date at all; both are normal and
// handled downstream by silent exclusion.
type Message struct {
	ID           int64      `json:"id"`
	DateUnixtime string     `json:"date_unixtime"`
	Type         string     `json:"type"`
	Reactions    []Reaction `json:"reactions"`
}

// Reaction carries the per-emoji count. The emoji itself is irrelevant here,
// only the count contributes to the leaderboard.
type Reaction struct {
	Count int `json:"count"`
}

// document mirrors Export for decoding, with a pointer ID so a missing id
// field can be told apart from a literal zero.
type document struct {
	Name     string    `json:"name"`
	ID       *int64    `json:"id"`
	Messages []Message `json:"messages"`
}

// Load reads and deserializes the export document at path. The file handle
// is held only for the duration of the decode. An unreadable file, an
// undecodable document, or a document without an id or messages field is a
// fatal structural error; per-record oddities are left for the processor to
// skip.
func Load(path string) (*Export, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open export file: %w", err)
	}
	defer f.Close()

	var doc document
	if err := json.NewDecoder(f).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse export file %q: %w", path, err)
	}

	if doc.ID == nil {
		return nil, fmt.Errorf("export file %q has no id field", path)
	}
	if doc.Messages == nil {
		return nil, fmt.Errorf("export file %q has no messages field", path)
	}

	return &Export{Name: doc.Name, ID: *doc.ID, Messages: doc.Messages}, nil
}
