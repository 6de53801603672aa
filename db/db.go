package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

type SocializeDB struct {
	DB  *sqlx.DB
	Log *zerolog.Logger
}

// NewSocializeDB opens and pings the database. An empty connStr falls back to
// the DATABASE_URL environment variable.
func NewSocializeDB(connStr string, log *zerolog.Logger) (*SocializeDB, error) {
	if connStr == "" {
		connStr = os.Getenv("DATABASE_URL")
	}
	if connStr == "" {
		log.Error().Msg("DATABASE_URL environment variable is not set")
		return nil, fmt.Errorf("DATABASE_URL environment variable is not set")
	}

	// Open the database connection
	db, err := sqlx.Open("postgres", connStr)
	if err != nil {
		log.Error().Err(err).Msg("Failed to open database connection")
		return nil, err
	}

	// Check we are actually connected
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = db.PingContext(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Database connection failed during ping")
		db.Close()
		return nil, err
	}

	return &SocializeDB{
		DB:  db,
		Log: log,
	}, nil
}

func (s *SocializeDB) Close() error {
	if err := s.DB.Close(); err != nil {
		return err
	}
	s.Log.Info().Msg("database connection closed")
	s.DB = nil

	return nil
}

// Migrate applies every pending migration embedded in the binary.
func (s *SocializeDB) Migrate(ctx context.Context) error {
	goose.SetBaseFS(migrationsFS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("error setting migration dialect: %w", err)
	}

	if err := goose.UpContext(ctx, s.DB.DB, "migrations"); err != nil {
		return fmt.Errorf("error running migrations: %w", err)
	}

	version, err := goose.GetDBVersionContext(ctx, s.DB.DB)
	if err != nil {
		return fmt.Errorf("error reading schema version: %w", err)
	}
	s.Log.Info().Int64("version", version).Msg("Database schema is up to date")
	return nil
}

// withTx runs fn inside a transaction, committing if fn returns nil.
func (s *SocializeDB) withTx(ctx context.Context, opts *sql.TxOptions, fn func(tx *sqlx.Tx) error) error {
	if s.DB == nil {
		return fmt.Errorf("database connection is not established")
	}

	tx, err := s.DB.BeginTxx(ctx, opts)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	defer func() {
		if rErr := tx.Rollback(); rErr != nil && rErr != sql.ErrTxDone {
			s.Log.Error().Err(rErr).Msg("error rolling back transaction")
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}
	return nil
}
