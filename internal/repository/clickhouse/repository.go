// Package clickhouse journals accepted state updates and their messages
// for off-chain tooling. The authoritative rolling state lives in the
// state tracker; this journal only indexes what was committed.
package clickhouse

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	chdriver "github.com/ClickHouse/clickhouse-go/v2/lib/driver"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Metrics observes repository operations.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}

	// Conn is the slice of the ClickHouse driver connection the
	// repository uses, narrowed for mockability.
	Conn interface {
		Query(ctx context.Context, query string, args ...any) (Rows, error)
		PrepareBatch(ctx context.Context, query string) (Batch, error)
		Close() error
	}

	// Rows is the cursor subset used for reads.
	Rows interface {
		Next() bool
		Scan(dest ...any) error
		Err() error
		Close() error
	}

	// Batch is the batch subset used for inserts.
	Batch interface {
		Append(v ...any) error
		Send() error
	}
)

// Repository persists settlement journal rows in ClickHouse.
type Repository struct {
	conn    Conn
	metrics Metrics
}

// NewRepository opens a ClickHouse connection from the DSN.
func NewRepository(dsn string, metrics Metrics) (*Repository, error) {
	if dsn == "" {
		return nil, errors.New("clickhouse dsn is required")
	}

	options, err := clickhouse.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse clickhouse dsn: %w", err)
	}

	conn, err := clickhouse.Open(options)
	if err != nil {
		return nil, fmt.Errorf("open clickhouse connection: %w", err)
	}

	return &Repository{conn: driverConn{ch: conn}, metrics: metrics}, nil
}

// Close releases the underlying connection.
func (r *Repository) Close() error {
	return r.conn.Close()
}

// driverConn narrows the driver connection to the Conn interface.
type driverConn struct {
	ch chdriver.Conn
}

func (c driverConn) Query(ctx context.Context, query string, args ...any) (Rows, error) {
	return c.ch.Query(ctx, query, args...)
}

func (c driverConn) PrepareBatch(ctx context.Context, query string) (Batch, error) {
	return c.ch.PrepareBatch(ctx, query)
}

func (c driverConn) Close() error {
	return c.ch.Close()
}
