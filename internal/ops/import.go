package ops

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/donkronk/clipstack/internal/config"
	"github.com/donkronk/clipstack/internal/entry"
	"github.com/donkronk/clipstack/internal/errors"
)

// ImportInput contains parameters for the Import operation.
type ImportInput struct {
	Data   string // structured export payload
	Format Format // only FormatJSON is accepted
}

// ImportOutput contains the result of the Import operation.
type ImportOutput struct {
	Processed int `json:"processed"`
}

// importRecord is the minimal shape Import requires: a content field must be
// present. Every other exported field is ignored and recomputed by Add.
type importRecord struct {
	Content *string `json:"content"`
}

// Import feeds each record of a structured export back through Add with
// source=import. Records whose content turns out to be a duplicate or
// whitespace-only still count as processed; Add simply declines them.
func Import(database *sql.DB, cfg *config.Config, input ImportInput) (*ImportOutput, error) {
	if input.Format != FormatJSON {
		return nil, errors.NewUnsupportedFormat(string(input.Format))
	}

	var records []importRecord
	if err := json.Unmarshal([]byte(input.Data), &records); err != nil {
		return nil, errors.NewInvalidRequest(fmt.Sprintf("invalid JSON: %v", err))
	}

	processed := 0
	for _, record := range records {
		if record.Content == nil {
			continue
		}

		_, err := Add(database, cfg, AddInput{Content: *record.Content, Source: entry.SourceImport})
		if err != nil && !errors.Is(err, errors.ErrInvalidRequest) {
			return nil, err
		}
		processed++
	}

	return &ImportOutput{Processed: processed}, nil
}
