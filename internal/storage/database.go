package storage

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

// Database is the durable KV implementation, backed by a single sqlite
// table with one row per collection.
type Database struct {
	db *sql.DB
}

func NewDatabase(path string) (*Database, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	database := &Database{db: db}
	if err := database.initTables(); err != nil {
		db.Close()
		return nil, err
	}
	return database, nil
}

func (d *Database) initTables() error {
	_, err := d.db.Exec(`
        CREATE TABLE IF NOT EXISTS collections (
            key TEXT PRIMARY KEY,
            value TEXT NOT NULL
        )
    `)
	return err
}

func (d *Database) Get(key string) ([]byte, bool, error) {
	var value []byte
	err := d.db.QueryRow(`SELECT value FROM collections WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

func (d *Database) Set(key string, value []byte) error {
	_, err := d.db.Exec(`
        INSERT INTO collections (key, value) VALUES (?, ?)
        ON CONFLICT(key) DO UPDATE SET value = excluded.value
    `, key, value)
	return err
}

func (d *Database) Close() error {
	return d.db.Close()
}
