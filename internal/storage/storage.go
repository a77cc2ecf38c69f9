package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/hustler-ledger/ledger-server/internal/config"
)

type Storage struct {
	DB   *sql.DB
	exec bob.DB
}

// NewStorage opens the connection pool for the remote store and checks it is reachable.
func NewStorage(ctx context.Context, env *config.Config) (*Storage, error) {
	db, err := sql.Open("postgres", env.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(env.OperatorWorkers * 4)
	db.SetConnMaxIdleTime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Storage{
		DB:   db,
		exec: bob.NewDB(db),
	}, nil
}

// Read returns table access over the pool. Reads outside a write transaction see committed data only.
func (s *Storage) Read() *Reader {
	return NewReader(s.exec)
}

// Write begins a transaction and returns table access bound to it. The caller must Commit or Rollback.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.exec.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	return NewWriter(tx), nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}
