package database

import (
	"database/sql"
)

type PgCurrentlyRepository struct {
	conn *sql.DB
}

func NewPgCurrentlyRepository(dsn string) (*PgCurrentlyRepository, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return &PgCurrentlyRepository{conn: db}, nil
}

func (db *PgCurrentlyRepository) Ping() error {
	return db.conn.Ping()
}

func (db *PgCurrentlyRepository) Close() error {
	if db.conn != nil {
		return db.conn.Close()
	}
	return nil
}
