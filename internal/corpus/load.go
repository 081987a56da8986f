package corpus

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jonathan/skillmatch/internal/lexicon"
	"github.com/jonathan/skillmatch/internal/types"
)

// LoadCSV builds a corpus from CSV input: a header row followed by one
// document per row. Rows are either a single text column, which gets the
// next sequential 1-based id, or an explicit (id, text) pair. Explicit ids
// need not be dense; lookups always go through the id map. Blank rows are
// skipped. Skills are extracted exactly once per document, here.
func LoadCSV(r io.Reader, lex *lexicon.Lexicon) (*Corpus, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	c := New()
	nextID := int64(1)
	line := 0

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV line %d: %w", line+1, err)
		}
		line++

		// First row is the header.
		if line == 1 {
			continue
		}

		id, text, err := parseRecord(record, nextID)
		if err != nil {
			return nil, fmt.Errorf("invalid CSV line %d: %w", line, err)
		}
		if strings.TrimSpace(text) == "" {
			continue
		}

		doc := types.Document{
			ID:     id,
			Text:   text,
			Skills: lex.Extract(text),
		}
		if err := c.Insert(doc); err != nil {
			return nil, fmt.Errorf("CSV line %d: %w", line, err)
		}

		if id >= nextID {
			nextID = id + 1
		}
	}

	return c, nil
}

// LoadCSVFile is LoadCSV over a file on disk.
func LoadCSVFile(path string, lex *lexicon.Lexicon) (*Corpus, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus file %s: %w", path, err)
	}
	defer f.Close()

	c, err := LoadCSV(f, lex)
	if err != nil {
		return nil, fmt.Errorf("failed to load corpus from %s: %w", path, err)
	}
	return c, nil
}

// parseRecord maps a CSV record to (id, text). A leading integer column is
// treated as an explicit id; otherwise the whole record is the text and the
// sequential fallback id applies.
func parseRecord(record []string, fallbackID int64) (int64, string, error) {
	if len(record) == 0 {
		return fallbackID, "", nil
	}

	if len(record) >= 2 {
		if id, err := strconv.ParseInt(strings.TrimSpace(record[0]), 10, 64); err == nil {
			if id <= 0 {
				return 0, "", fmt.Errorf("document id must be positive, got %d", id)
			}
			return id, strings.Join(record[1:], ","), nil
		}
	}

	return fallbackID, strings.Join(record, ","), nil
}
