package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"initiative_valuation/pkg/core/cases"
)

// DeckRepo stores raw assessment decks keyed by assessment name. Derived
// figures are never persisted; only the analyst-entered inputs the engine
// recomputes from.
type DeckRepo struct{}

// NewDeckRepo creates a new repository instance.
func NewDeckRepo() *DeckRepo {
	return &DeckRepo{}
}

// Schema assumption (migrations managed elsewhere):
//
//	CREATE TABLE IF NOT EXISTS assessment_decks (
//	  name TEXT PRIMARY KEY,
//	  snapshot_id UUID,
//	  deck_json JSONB,
//	  updated_at TIMESTAMPTZ
//	);

// Save upserts the deck under its assessment name and stamps a fresh
// snapshot ID so callers can tell recomputations apart.
func (r *DeckRepo) Save(ctx context.Context, deck *cases.AssessmentDeck) (string, error) {
	pool := GetPool()
	if pool == nil {
		return "", fmt.Errorf("database pool not initialized")
	}
	if deck.Name == "" {
		return "", fmt.Errorf("deck has no assessment name")
	}

	jsonData, err := json.Marshal(deck)
	if err != nil {
		return "", fmt.Errorf("failed to marshal deck: %w", err)
	}

	snapshotID := uuid.NewString()
	query := `
		INSERT INTO assessment_decks (name, snapshot_id, deck_json, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (name)
		DO UPDATE SET
			snapshot_id = EXCLUDED.snapshot_id,
			deck_json = EXCLUDED.deck_json,
			updated_at = EXCLUDED.updated_at;
	`
	if _, err := pool.Exec(ctx, query, deck.Name, snapshotID, jsonData, time.Now()); err != nil {
		return "", fmt.Errorf("failed to save deck: %w", err)
	}
	return snapshotID, nil
}

// Load retrieves the raw deck for an assessment name.
func (r *DeckRepo) Load(ctx context.Context, name string) (*cases.AssessmentDeck, error) {
	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}

	var jsonData []byte
	err := pool.QueryRow(ctx, `SELECT deck_json FROM assessment_decks WHERE name = $1`, name).Scan(&jsonData)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("no deck found for assessment %s", name)
		}
		return nil, fmt.Errorf("failed to load deck: %w", err)
	}

	deck := &cases.AssessmentDeck{}
	if err := json.Unmarshal(jsonData, deck); err != nil {
		return nil, fmt.Errorf("failed to unmarshal deck: %w", err)
	}
	return deck, nil
}

// List returns the stored assessment names, newest first.
func (r *DeckRepo) List(ctx context.Context) ([]string, error) {
	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}

	rows, err := pool.Query(ctx, `SELECT name FROM assessment_decks ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list decks: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan deck name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
