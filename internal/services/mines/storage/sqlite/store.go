// Package sqlite provides the SQLite-backed move audit log.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/MukundVashisht2003/Multiplayer-Minesweeper-Game/internal/platform/storage/sqlitemigrate"
	"github.com/MukundVashisht2003/Multiplayer-Minesweeper-Game/internal/services/mines/storage"
	"github.com/MukundVashisht2003/Multiplayer-Minesweeper-Game/internal/services/mines/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

const defaultListLimit = 100

// Store persists move events in SQLite.
type Store struct {
	sqlDB *sql.DB
}

var (
	_ storage.MoveEventStore  = (*Store)(nil)
	_ storage.MoveEventReader = (*Store)(nil)
)

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite audit store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(context.Background(), sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// AppendMoveEvent inserts one move event.
func (s *Store) AppendMoveEvent(ctx context.Context, evt storage.MoveEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(string(evt.Kind)) == "" {
		return fmt.Errorf("move kind is required")
	}
	occurredAt := evt.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = time.Now()
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO move_events (
		   occurred_at,
		   kind,
		   player_id,
		   x,
		   y,
		   success,
		   reason,
		   message,
		   request_id,
		   trace_id
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		toMillis(occurredAt),
		string(evt.Kind),
		evt.PlayerID,
		nullableInt(evt.X),
		nullableInt(evt.Y),
		evt.Success,
		evt.Reason,
		evt.Message,
		evt.RequestID,
		evt.TraceID,
	)
	if err != nil {
		return fmt.Errorf("insert move event: %w", err)
	}
	return nil
}

// ListMoveEvents returns up to limit events, oldest first.
func (s *Store) ListMoveEvents(ctx context.Context, limit int) ([]storage.MoveEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	if limit <= 0 {
		limit = defaultListLimit
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT id, occurred_at, kind, player_id, x, y, success, reason, message, request_id, trace_id
		   FROM move_events
		  ORDER BY id
		  LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list move events: %w", err)
	}
	defer rows.Close()

	var events []storage.MoveEvent
	for rows.Next() {
		var (
			evt        storage.MoveEvent
			occurredAt int64
			kind       string
			x, y       sql.NullInt64
		)
		if err := rows.Scan(
			&evt.ID,
			&occurredAt,
			&kind,
			&evt.PlayerID,
			&x,
			&y,
			&evt.Success,
			&evt.Reason,
			&evt.Message,
			&evt.RequestID,
			&evt.TraceID,
		); err != nil {
			return nil, fmt.Errorf("scan move event: %w", err)
		}
		evt.OccurredAt = fromMillis(occurredAt)
		evt.Kind = storage.MoveKind(kind)
		evt.X = intFromNull(x)
		evt.Y = intFromNull(y)
		events = append(events, evt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate move events: %w", err)
	}
	return events, nil
}

func nullableInt(value *int) any {
	if value == nil {
		return nil
	}
	return int64(*value)
}

func intFromNull(value sql.NullInt64) *int {
	if !value.Valid {
		return nil
	}
	v := int(value.Int64)
	return &v
}
