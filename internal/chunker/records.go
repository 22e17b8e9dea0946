// ABOUTME: Record-based chunking for structured transcript tables
// ABOUTME: Emits one chunk per CSV row in record order with ordinal IDs
package chunker

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/nlp26/RAG/internal/models"
)

// ErrNoRecords is returned when a transcript source yields zero usable rows.
var ErrNoRecords = errors.New("no records extracted from transcript")

// CSV column names expected in transcript tables
const (
	colSpeaker = "who"
	colText    = "text"
	colEpisode = "Episode"
	colScene   = "scenenumber"
)

// ReadTranscriptCSV parses a transcript table from r. The header row maps
// the columns; rows are returned in file order.
func ReadTranscriptCSV(r io.Reader) ([]models.TranscriptRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}
	for _, required := range []string{colSpeaker, colText, colEpisode, colScene} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("transcript CSV missing column %q", required)
		}
	}

	var records []models.TranscriptRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}
		records = append(records, models.TranscriptRecord{
			Speaker: field(row, cols[colSpeaker]),
			Text:    field(row, cols[colText]),
			Episode: field(row, cols[colEpisode]),
			Scene:   field(row, cols[colScene]),
		})
	}

	return records, nil
}

// ReadTranscriptFile parses a transcript CSV from disk.
func ReadTranscriptFile(path string) ([]models.TranscriptRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open transcript: %w", err)
	}
	defer f.Close()
	return ReadTranscriptCSV(f)
}

// ChunkRecords converts transcript records into chunks, one per record,
// preserving record order as chunk ID order.
func ChunkRecords(records []models.TranscriptRecord) ([]models.Chunk, error) {
	if len(records) == 0 {
		return nil, ErrNoRecords
	}

	chunks := make([]models.Chunk, len(records))
	for i, rec := range records {
		chunks[i] = models.Chunk{
			ID:   i,
			Text: rec.ChunkText(),
			Metadata: map[string]string{
				"speaker": rec.Speaker,
				"episode": rec.Episode,
				"scene":   rec.Scene,
			},
		}
	}

	return chunks, nil
}

func field(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
