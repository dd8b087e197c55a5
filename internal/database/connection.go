package database

import (
	"context"
	"database/sql"
	"errors"
	"sync"

	"db-console-api/internal/repositories"

	"github.com/sirupsen/logrus"
)

// Session is the per-invocation unit of work: one pooled connection and
// one transaction on it. Close must be called on every exit path.
type Session struct {
	ctx     context.Context
	conn    *sql.Conn
	tx      *sql.Tx
	dialect Dialect
	logger  *logrus.Logger

	mu     sync.Mutex
	done   bool
	closed bool
}

var _ repositories.Transaction = (*Session)(nil)

// BeginSession acquires a connection from the pool and begins a transaction on it
func (d *DB) BeginSession(ctx context.Context) (*Session, error) {
	conn, err := d.db.Conn(ctx)
	if err != nil {
		d.logger.WithError(err).Error("Failed to acquire database connection")
		return nil, repositories.ConnectionError(err)
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		conn.Close()
		d.logger.WithError(err).Error("Failed to begin transaction")
		return nil, repositories.TransactionError("begin", err)
	}

	return &Session{
		ctx:     ctx,
		conn:    conn,
		tx:      tx,
		dialect: d.dialect,
		logger:  d.logger,
	}, nil
}

// Dialect returns the dialect statements must be rebound for
func (s *Session) Dialect() Dialect {
	return s.dialect
}

// Context returns the context the session was opened with
func (s *Session) Context() context.Context {
	return s.ctx
}

// ExecContext executes a statement inside the session's transaction
func (s *Session) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return s.tx.ExecContext(ctx, query, args...)
}

// QueryContext runs a query inside the session's transaction
func (s *Session) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return s.tx.QueryContext(ctx, query, args...)
}

// QueryRowContext runs a single-row query inside the session's transaction
func (s *Session) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return s.tx.QueryRowContext(ctx, query, args...)
}

// Commit commits the transaction
func (s *Session) Commit() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.done {
		return repositories.TransactionError("commit", sql.ErrTxDone)
	}
	s.done = true

	if err := s.tx.Commit(); err != nil {
		s.logger.WithError(err).Error("Failed to commit transaction")
		return repositories.TransactionError("commit", err)
	}
	return nil
}

// Rollback rolls back the transaction. Rolling back a finished transaction is a no-op.
func (s *Session) Rollback() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rollbackLocked()
}

func (s *Session) rollbackLocked() error {
	if s.done {
		return nil
	}
	s.done = true

	if err := s.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		s.logger.WithError(err).Error("Failed to rollback transaction")
		return repositories.TransactionError("rollback", err)
	}
	return nil
}

// Close rolls back an unfinished transaction and returns the connection to the pool.
// It is safe to call more than once.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	rollbackErr := s.rollbackLocked()
	if err := s.conn.Close(); err != nil {
		s.logger.WithError(err).Error("Failed to release database connection")
		return repositories.ConnectionError(err)
	}
	return rollbackErr
}
