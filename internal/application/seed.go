package application

import (
	"encoding/json"
	"fmt"
	"io"

	"webdir/internal/domain"
)

// DecodeSeed reads a seed document of the form {"websites": [...]}
func DecodeSeed(r io.Reader) ([]domain.Entry, error) {
	var doc domain.SeedDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	if doc.Websites == nil {
		return nil, fmt.Errorf("decode seed: missing \"websites\" list")
	}
	return doc.Websites, nil
}
