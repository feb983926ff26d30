package database

import "context"

// DB is the read-side surface the repositories need. The portal backend is
// a read-mostly collaborator: postings and profiles are written elsewhere.
type DB interface {
	Ping(ctx context.Context) error
	Close() error

	Query(ctx context.Context, query string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, query string, args ...any) Row
}

type Rows interface {
	Close()
	Next() bool
	Scan(dest ...any) error
	Err() error
}

type Row interface {
	Scan(dest ...any) error
}
