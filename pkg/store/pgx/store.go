package pgx

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// DBStorage implements store.Storage on a pgx connection pool.
type DBStorage struct {
	conn *pgxpool.Pool
}

// NewDBStorage creates a DBStorage on an existing pool. The pool is owned by
// the caller.
func NewDBStorage(conn *pgxpool.Pool) *DBStorage {
	return &DBStorage{
		conn: conn,
	}
}
