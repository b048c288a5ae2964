// Package server implements the compile-as-a-service HTTP API: a
// chi-routed, JWT-authenticated wrapper around the grammar compiler
// core, backed by a SQLite job store via database/sql over
// modernc.org/sqlite.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/pellham/nlgram/server/serr"
)

// Account is a service-account credential, bcrypt-hashed at rest.
type Account struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
}

// Job is one persisted compile run: the fixture compiled, the detector
// configuration used, and the resulting artifact and diagnostics.
type Job struct {
	ID          uuid.UUID
	Fixture     string
	ConfigJSON  string
	ArtifactB64 string
	Report      string
	CreatedAt   time.Time
}

// Store wraps the SQLite-backed accounts and compile_jobs tables.
type Store struct {
	db *sql.DB
}

// NewStore opens (creating if necessary) the SQLite database at dsn and
// ensures its schema exists.
func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, serr.New("opening sqlite store", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS accounts (
		id TEXT NOT NULL PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL
	);`); err != nil {
		return nil, serr.New("creating accounts table", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS compile_jobs (
		id TEXT NOT NULL PRIMARY KEY,
		fixture TEXT NOT NULL,
		config_json TEXT NOT NULL,
		artifact_b64 TEXT NOT NULL,
		report TEXT NOT NULL,
		created_at INTEGER NOT NULL
	);`); err != nil {
		return nil, serr.New("creating compile_jobs table", err)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// CreateAccount inserts a new service account, failing if the username
// is already taken.
func (s *Store) CreateAccount(ctx context.Context, username, passwordHash string) (Account, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return Account{}, serr.New("generating account id", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO accounts (id, username, password_hash) VALUES (?, ?, ?)`,
		id.String(), username, passwordHash)
	if err != nil {
		return Account{}, serr.New("creating account", err)
	}
	return Account{ID: id, Username: username, PasswordHash: passwordHash}, nil
}

// GetAccountByUsername fetches an account by its unique username.
func (s *Store) GetAccountByUsername(ctx context.Context, username string) (Account, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, username, password_hash FROM accounts WHERE username = ?`, username)

	var idStr string
	var a Account
	if err := row.Scan(&idStr, &a.Username, &a.PasswordHash); err != nil {
		if err == sql.ErrNoRows {
			return Account{}, fmt.Errorf("%w: no account named %q", serr.ErrNotFound, username)
		}
		return Account{}, serr.New("querying account", err)
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return Account{}, serr.New("parsing account id", err)
	}
	a.ID = id
	return a, nil
}

// SaveJob persists a completed compile job.
func (s *Store) SaveJob(ctx context.Context, j Job) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO compile_jobs (id, fixture, config_json, artifact_b64, report, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		j.ID.String(), j.Fixture, j.ConfigJSON, j.ArtifactB64, j.Report, j.CreatedAt.Unix())
	if err != nil {
		return serr.New("saving compile job", err)
	}
	return nil
}

// CreateSeedAccount bcrypt-hashes password and creates a service account
// for first-run setup, used by cmd/gramsvc's --seed-account flag.
func CreateSeedAccount(s *Store, username, password string) error {
	hash, err := hashPassword(password)
	if err != nil {
		return err
	}
	_, err = s.CreateAccount(context.Background(), username, hash)
	return err
}

// GetJob fetches a previously persisted compile job by ID.
func (s *Store) GetJob(ctx context.Context, id uuid.UUID) (Job, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, fixture, config_json, artifact_b64, report, created_at FROM compile_jobs WHERE id = ?`,
		id.String())

	var idStr string
	var createdAt int64
	var j Job
	if err := row.Scan(&idStr, &j.Fixture, &j.ConfigJSON, &j.ArtifactB64, &j.Report, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return Job{}, fmt.Errorf("%w: no compile job %s", serr.ErrNotFound, id)
		}
		return Job{}, serr.New("querying compile job", err)
	}
	j.ID = id
	j.CreatedAt = time.Unix(createdAt, 0)
	return j, nil
}
