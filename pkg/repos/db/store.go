package db

import (
	"github.com/Nynra/pyserver-tools/pkg/sqlx"
)

// Store is the MySQL-backed implementation of the repo interfaces.
type Store struct {
	conn *sqlx.DB
}

func NewStore(conn *sqlx.DB) *Store {
	return &Store{
		conn: conn,
	}
}
