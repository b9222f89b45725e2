package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
)

// Storage keys. The snapshot and its date stamp are independent values
// that are always written and cleared together.
const (
	keyGameState = "gameState"
	keyGameDate  = "gameDate"
)

// SavedGame is the persisted session: a JSON-encoded snapshot plus the
// local calendar date it belongs to, in YYYY-MM-DD form.
type SavedGame struct {
	State json.RawMessage
	Date  string
}

// SavedGameRepo is the storage port for the saved session. The state
// machine never touches storage directly; screens call through this
// interface so tests can use the in-memory implementation.
type SavedGameRepo interface {
	// Load returns the saved game, or nil if either value is absent.
	Load(ctx context.Context) (*SavedGame, error)

	// Save writes the full snapshot and its date stamp.
	Save(ctx context.Context, sg *SavedGame) error

	// Clear removes both values.
	Clear(ctx context.Context) error
}

// savedGameRepo implements SavedGameRepo on the saved_game table.
type savedGameRepo struct {
	db *sql.DB
}

func (r *savedGameRepo) Load(ctx context.Context) (*SavedGame, error) {
	state, err := r.get(ctx, keyGameState)
	if err != nil {
		return nil, err
	}
	date, err := r.get(ctx, keyGameDate)
	if err != nil {
		return nil, err
	}
	if state == "" || date == "" {
		return nil, nil
	}
	return &SavedGame{State: json.RawMessage(state), Date: date}, nil
}

func (r *savedGameRepo) Save(ctx context.Context, sg *SavedGame) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	const upsert = `INSERT INTO saved_game (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	if _, err := tx.ExecContext(ctx, upsert, keyGameState, string(sg.State)); err != nil {
		return fmt.Errorf("save game state: %w", err)
	}
	if _, err := tx.ExecContext(ctx, upsert, keyGameDate, sg.Date); err != nil {
		return fmt.Errorf("save game date: %w", err)
	}
	return tx.Commit()
}

func (r *savedGameRepo) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM saved_game WHERE key IN (?, ?)`, keyGameState, keyGameDate)
	if err != nil {
		return fmt.Errorf("clear saved game: %w", err)
	}
	return nil
}

// get reads one key, returning "" when absent.
func (r *savedGameRepo) get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM saved_game WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", key, err)
	}
	return value, nil
}

// MemoryRepo is an in-memory SavedGameRepo for tests.
type MemoryRepo struct {
	mu sync.Mutex
	sg *SavedGame
}

var _ SavedGameRepo = (*MemoryRepo)(nil)

func (m *MemoryRepo) Load(context.Context) (*SavedGame, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sg == nil {
		return nil, nil
	}
	cp := *m.sg
	return &cp, nil
}

func (m *MemoryRepo) Save(_ context.Context, sg *SavedGame) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *sg
	m.sg = &cp
	return nil
}

func (m *MemoryRepo) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sg = nil
	return nil
}
