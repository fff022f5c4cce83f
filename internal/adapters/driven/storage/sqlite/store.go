package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/Itterum/ts-app/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/Itterum/ts-app/internal/core/domain"
	"github.com/Itterum/ts-app/internal/core/ports/driven"
)

// memoryDSN opens a private in-memory database.
const memoryDSN = ":memory:"

// Store owns the in-memory SQLite database shared by all entity kinds.
type Store struct {
	db *sql.DB
}

// NewStore opens an in-memory SQLite database and applies migrations.
func NewStore() (*Store, error) {
	db, err := sql.Open("sqlite", memoryDSN)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Every connection to :memory: is a separate database
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	s := &Store{db: db}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection, discarding its contents.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys fs.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if name := entry.Name(); strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// "001_entities.up.sql" -> 1
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// EntityStore implements driven.EntityStore for one entity kind.
type EntityStore[T domain.Entity] struct {
	store *Store
	kind  string
}

var _ driven.EntityStore[domain.Car] = (*EntityStore[domain.Car])(nil)

// NewEntityStore returns an EntityStore scoped to kind. Stores for
// different kinds share the database but never see each other's rows.
func NewEntityStore[T domain.Entity](store *Store, kind string) *EntityStore[T] {
	return &EntityStore[T]{store: store, kind: kind}
}

// Create stores or overwrites an entity.
func (s *EntityStore[T]) Create(ctx context.Context, entity T) (domain.Confirmation, error) {
	id := entity.GetID()
	if id == "" {
		return domain.Confirmation{}, domain.ErrMissingIdentifier
	}

	data, err := json.Marshal(entity)
	if err != nil {
		return domain.Confirmation{}, fmt.Errorf("marshalling entity: %w", err)
	}

	now := time.Now().UTC()
	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO entities (kind, id, data, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(kind, id) DO UPDATE SET
			data = excluded.data,
			updated_at = excluded.updated_at
	`, s.kind, id, string(data), now, now)
	if err != nil {
		return domain.Confirmation{}, fmt.Errorf("saving entity: %w", err)
	}

	return domain.Confirmation{Operation: domain.OpCreate, ID: id}, nil
}

// Read retrieves an entity by ID.
func (s *EntityStore[T]) Read(ctx context.Context, id string) (T, bool, error) {
	var zero T

	row := s.store.db.QueryRowContext(ctx,
		"SELECT data FROM entities WHERE kind = ? AND id = ?", s.kind, id)

	entity, err := scanEntity[T](row)
	if errors.Is(err, sql.ErrNoRows) {
		return zero, false, nil
	}
	if err != nil {
		return zero, false, err
	}
	return entity, true, nil
}

// Update merges patch into the stored entity within a single transaction.
func (s *EntityStore[T]) Update(ctx context.Context, id string, patch domain.Patch) (domain.Confirmation, error) {
	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Confirmation{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	row := tx.QueryRowContext(ctx,
		"SELECT data FROM entities WHERE kind = ? AND id = ?", s.kind, id)

	current, err := scanEntity[T](row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Confirmation{}, &domain.NotFoundError{ID: id}
	}
	if err != nil {
		return domain.Confirmation{}, err
	}

	merged, err := domain.Merge(current, patch)
	if err != nil {
		return domain.Confirmation{}, err
	}

	data, err := json.Marshal(merged)
	if err != nil {
		return domain.Confirmation{}, fmt.Errorf("marshalling entity: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		"UPDATE entities SET data = ?, updated_at = ? WHERE kind = ? AND id = ?",
		string(data), time.Now().UTC(), s.kind, id); err != nil {
		return domain.Confirmation{}, fmt.Errorf("updating entity: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return domain.Confirmation{}, fmt.Errorf("committing update: %w", err)
	}
	return domain.Confirmation{Operation: domain.OpUpdate, ID: id}, nil
}

// Delete removes an entity.
func (s *EntityStore[T]) Delete(ctx context.Context, id string) (domain.Confirmation, error) {
	res, err := s.store.db.ExecContext(ctx,
		"DELETE FROM entities WHERE kind = ? AND id = ?", s.kind, id)
	if err != nil {
		return domain.Confirmation{}, fmt.Errorf("deleting entity: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return domain.Confirmation{}, fmt.Errorf("checking deleted rows: %w", err)
	}
	if affected == 0 {
		return domain.Confirmation{}, &domain.NotFoundError{ID: id}
	}
	return domain.Confirmation{Operation: domain.OpDelete, ID: id}, nil
}

// List returns all entities of this kind ordered by ID.
func (s *EntityStore[T]) List(ctx context.Context) ([]T, error) {
	rows, err := s.store.db.QueryContext(ctx,
		"SELECT data FROM entities WHERE kind = ? ORDER BY id", s.kind)
	if err != nil {
		return nil, fmt.Errorf("querying entities: %w", err)
	}
	defer rows.Close()

	result := make([]T, 0)
	for rows.Next() {
		entity, err := scanEntity[T](rows)
		if err != nil {
			return nil, err
		}
		result = append(result, entity)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating entities: %w", err)
	}
	return result, nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanEntity decodes the JSON data column. sql.ErrNoRows is returned unwrapped.
func scanEntity[T domain.Entity](row scanner) (T, error) {
	var zero T

	var data string
	if err := row.Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return zero, err
		}
		return zero, fmt.Errorf("scanning entity: %w", err)
	}

	var entity T
	if err := json.Unmarshal([]byte(data), &entity); err != nil {
		return zero, fmt.Errorf("unmarshalling entity: %w", err)
	}
	return entity, nil
}
