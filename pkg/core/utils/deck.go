// Package utils holds the tolerant input-deck reader. Assessment decks are
// analyst-authored files, so the loader accepts YAML, strict JSON, and
// hand-edited near-JSON (comments, trailing commas, single quotes) via a
// repair pass before giving up.
package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	"github.com/google/uuid"
	hjson "github.com/hjson/hjson-go/v4"
	"gopkg.in/yaml.v2"

	"initiative_valuation/pkg/core/cases"
)

// LoadDeck reads an assessment deck from disk. The extension selects the
// parser: .yaml/.yml go through YAML, everything else through the lenient
// JSON path. Records missing an ID are assigned one so downstream joins
// always have a key.
func LoadDeck(path string) (*cases.AssessmentDeck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read deck %s: %w", path, err)
	}

	deck := &cases.AssessmentDeck{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, deck); err != nil {
			return nil, fmt.Errorf("failed to parse YAML deck %s: %w", path, err)
		}
	default:
		if err := ParseLenientJSON(string(data), deck); err != nil {
			return nil, fmt.Errorf("failed to parse deck %s: %w", path, err)
		}
	}

	assignIDs(deck)
	return deck, nil
}

// ParseLenientJSON unmarshals analyst-authored JSON into schema. The input
// is tried as-is first; on failure it runs through json-repair (unquoted
// keys, trailing commas, markdown fences) and finally through Hjson, which
// also tolerates comments and multiline strings.
func ParseLenientJSON(raw string, schema interface{}) error {
	if err := json.Unmarshal([]byte(raw), schema); err == nil {
		return nil
	}

	if repaired, err := jsonrepair.RepairJSON(raw); err == nil {
		if err := json.Unmarshal([]byte(repaired), schema); err == nil {
			return nil
		}
	}

	if err := hjson.Unmarshal([]byte(raw), schema); err != nil {
		return fmt.Errorf("input is not valid JSON, repairable JSON, or Hjson: %w", err)
	}
	return nil
}

// assignIDs backfills record identifiers and wires use-case IDs onto
// benefit records that reference a use case by name only.
func assignIDs(deck *cases.AssessmentDeck) {
	for i := range deck.FrictionPoints {
		if deck.FrictionPoints[i].ID == "" {
			deck.FrictionPoints[i].ID = uuid.NewString()
		}
	}

	byName := make(map[string]string, len(deck.UseCases))
	for i := range deck.UseCases {
		if deck.UseCases[i].ID == "" {
			deck.UseCases[i].ID = uuid.NewString()
		}
		byName[deck.UseCases[i].Name] = deck.UseCases[i].ID
	}

	for i := range deck.Benefits {
		if deck.Benefits[i].UseCaseID == "" {
			deck.Benefits[i].UseCaseID = byName[deck.Benefits[i].Name]
		}
	}
}
