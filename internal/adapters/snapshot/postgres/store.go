package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"

	"tambo-herd/internal/domain/events"
	"tambo-herd/internal/domain/herd"
	"tambo-herd/internal/ports/snapshot"
)

// Open abre una conexión pool a Postgres usando pgx (database/sql).
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	// defaults razonables para MVP (ajustable luego)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// Store guarda la foto del tambo en una tabla documento: una fila por
// colección ('cows', 'events') más el candado, todas reescritas en la misma
// transacción con una revisión nueva. El contrato es clave-valor: nada del
// dominio se mapea a columnas.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// EnsureSchema crea la tabla si no existe (idempotente).
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS tambo_snapshot (
			name     TEXT PRIMARY KEY,
			doc      JSONB NOT NULL,
			revision UUID NOT NULL,
			saved_at TIMESTAMPTZ NOT NULL
		)
	`)
	return err
}

func (s *Store) Load(ctx context.Context) (snapshot.Snapshot, error) {
	snap := snapshot.Empty()
	found := false

	rows, err := s.db.QueryContext(ctx, `SELECT name, doc FROM tambo_snapshot`)
	if err != nil {
		return snapshot.Snapshot{}, fmt.Errorf("cargar snapshot: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		var doc []byte
		if err := rows.Scan(&name, &doc); err != nil {
			return snapshot.Snapshot{}, err
		}
		found = true

		switch name {
		case "cows":
			var as []herd.Animal
			if err := json.Unmarshal(doc, &as); err != nil {
				return snapshot.Snapshot{}, fmt.Errorf("snapshot corrupto (cows): %w", err)
			}
			snap.Animals = as
		case "events":
			var es []events.Event
			if err := json.Unmarshal(doc, &es); err != nil {
				return snapshot.Snapshot{}, fmt.Errorf("snapshot corrupto (events): %w", err)
			}
			snap.Events = es
		case "locked":
			var locked bool
			if err := json.Unmarshal(doc, &locked); err != nil {
				return snapshot.Snapshot{}, fmt.Errorf("snapshot corrupto (locked): %w", err)
			}
			snap.Locked = locked
		}
	}
	if err := rows.Err(); err != nil {
		return snapshot.Snapshot{}, err
	}

	if !found {
		return snapshot.Empty(), nil
	}
	return snap, nil
}

func (s *Store) Save(ctx context.Context, snap snapshot.Snapshot) error {
	cows, err := json.Marshal(snap.Animals)
	if err != nil {
		return err
	}
	evs, err := json.Marshal(snap.Events)
	if err != nil {
		return err
	}
	locked, err := json.Marshal(snap.Locked)
	if err != nil {
		return err
	}

	revision := uuid.NewString()
	now := time.Now()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for name, doc := range map[string][]byte{
		"cows":   cows,
		"events": evs,
		"locked": locked,
	} {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO tambo_snapshot (name, doc, revision, saved_at)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (name) DO UPDATE
			SET doc = EXCLUDED.doc, revision = EXCLUDED.revision, saved_at = EXCLUDED.saved_at
		`, name, doc, revision, now); err != nil {
			return fmt.Errorf("guardar snapshot (%s): %w", name, err)
		}
	}

	return tx.Commit()
}

// Revision devuelve la revisión del último guardado, para diagnósticos.
func (s *Store) Revision(ctx context.Context) (string, error) {
	var rev string
	err := s.db.QueryRowContext(ctx, `SELECT revision FROM tambo_snapshot LIMIT 1`).Scan(&rev)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return rev, err
}
