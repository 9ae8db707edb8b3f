package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/sercha-importer/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/sercha-importer/internal/core/domain"
	"github.com/custodia-labs/sercha-importer/internal/core/ports/driven"
)

// timeLayout is fixed width so stored timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// Verify interface compliance.
var _ driven.ResultStore = (*Store)(nil)

// Store keeps import results in a SQLite database.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens or creates the database at path, creating parent
// directories as needed.
func NewStore(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty database path", domain.ErrInvalidInput)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// One connection serialises writers from concurrent imports.
	db.SetMaxOpenConns(1)

	s := &Store{db: db, path: path}
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// migrate applies numbered *.up.sql files newer than the recorded version.
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

	var current int
	if err := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations").Scan(&current); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			upFiles = append(upFiles, entry.Name())
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= current {
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

// metadataField is one metadata entry. A list keeps field order.
type metadataField struct {
	Field  string   `json:"field"`
	Values []string `json:"values"`
}

func encodeMetadata(md *domain.Metadata) (string, error) {
	fields := []metadataField{}
	if md != nil {
		for _, f := range md.Fields() {
			fields = append(fields, metadataField{Field: f, Values: md.GetAll(f)})
		}
	}
	data, err := json.Marshal(fields)
	if err != nil {
		return "", fmt.Errorf("marshalling metadata: %w", err)
	}
	return string(data), nil
}

func decodeMetadata(data string) (*domain.Metadata, error) {
	var fields []metadataField
	if err := json.Unmarshal([]byte(data), &fields); err != nil {
		return nil, fmt.Errorf("unmarshalling metadata: %w", err)
	}
	md := domain.NewMetadata()
	for _, f := range fields {
		md.Add(f.Field, f.Values...)
	}
	return md, nil
}

// Save stores or replaces a result.
func (s *Store) Save(ctx context.Context, r *domain.ImportResult) error {
	if r == nil || r.ID == "" {
		return fmt.Errorf("%w: result without id", domain.ErrInvalidInput)
	}

	metadataJSON, err := encodeMetadata(r.Metadata)
	if err != nil {
		return err
	}

	importedAt := r.ImportedAt
	if importedAt.IsZero() {
		importedAt = time.Now()
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO import_results (id, reference, accepted, rejected_by, metadata, content, imported_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			reference = excluded.reference,
			accepted = excluded.accepted,
			rejected_by = excluded.rejected_by,
			metadata = excluded.metadata,
			content = excluded.content,
			imported_at = excluded.imported_at
	`, r.ID, r.Reference, r.Accepted, r.RejectedBy, metadataJSON, r.Content,
		importedAt.UTC().Format(timeLayout))
	if err != nil {
		return fmt.Errorf("saving result: %w", err)
	}
	return nil
}

const selectResult = `
	SELECT id, reference, accepted, rejected_by, metadata, content, imported_at
	FROM import_results`

type scanner interface {
	Scan(dest ...any) error
}

func scanResult(row scanner) (*domain.ImportResult, error) {
	var r domain.ImportResult
	var metadataJSON, importedAt string
	if err := row.Scan(&r.ID, &r.Reference, &r.Accepted, &r.RejectedBy,
		&metadataJSON, &r.Content, &importedAt); err != nil {
		return nil, err
	}

	md, err := decodeMetadata(metadataJSON)
	if err != nil {
		return nil, err
	}
	r.Metadata = md

	t, err := time.Parse(timeLayout, importedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing imported_at: %w", err)
	}
	r.ImportedAt = t
	return &r, nil
}

// Get retrieves a result by ID.
func (s *Store) Get(ctx context.Context, id string) (*domain.ImportResult, error) {
	row := s.db.QueryRowContext(ctx, selectResult+" WHERE id = ?", id)
	r, err := scanResult(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning result: %w", err)
	}
	return r, nil
}

// List returns results matching q, newest first.
func (s *Store) List(ctx context.Context, q domain.ResultQuery) ([]*domain.ImportResult, error) {
	var where []string
	var args []any
	if q.Reference != "" {
		where = append(where, "reference = ?")
		args = append(args, q.Reference)
	}
	if q.RejectedOnly {
		where = append(where, "accepted = 0")
	}

	query := selectResult
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY imported_at DESC, id"
	if q.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, q.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying results: %w", err)
	}
	defer rows.Close()

	var results []*domain.ImportResult //nolint:prealloc // size unknown from query
	for rows.Next() {
		r, err := scanResult(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning result: %w", err)
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating results: %w", err)
	}
	return results, nil
}
