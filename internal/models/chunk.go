// ABOUTME: Chunk is the minimal retrievable unit of corpus text
// ABOUTME: One chunk per transcript record; flat PDF text is not pre-chunked
package models

import (
	"fmt"
	"strings"
)

// UnknownSpeaker replaces a missing speaker field in transcript records.
const UnknownSpeaker = "Unknown"

// Chunk represents one retrievable piece of a corpus with its metadata.
// ID is the ordinal position within the corpus and is stable for the
// corpus's lifetime.
type Chunk struct {
	ID       int               `json:"id"`
	Text     string            `json:"text"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// TranscriptRecord is one row of a structured transcript table.
type TranscriptRecord struct {
	Speaker string
	Text    string
	Episode string
	Scene   string
}

// ChunkText renders the record into the canonical chunk text:
// "{speaker}: {text} [Episode: {e}, Scene: {s}]". A missing speaker
// becomes "Unknown"; missing dialogue stays empty.
func (r TranscriptRecord) ChunkText() string {
	speaker := strings.TrimSpace(r.Speaker)
	if speaker == "" {
		speaker = UnknownSpeaker
	}
	return fmt.Sprintf("%s: %s [Episode: %s, Scene: %s]", speaker, r.Text, r.Episode, r.Scene)
}
