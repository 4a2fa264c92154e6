package overpass

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Cache stores raw interpreter responses keyed by query hash so that
// repeated runs against the same area can work offline. Use ":memory:"
// as the path under test.
type Cache struct {
	db *sql.DB
}

// OpenCache opens (and if needed creates) the response cache at path.
func OpenCache(path string) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("error opening cache database: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS responses (
		query_hash TEXT PRIMARY KEY,
		body       BLOB NOT NULL,
		fetched_at INTEGER NOT NULL
	);`)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error creating responses table: %w", err)
	}

	return &Cache{db: db}, nil
}

func (c *Cache) Close() error {
	return c.db.Close()
}

// Get returns the cached response body for query, if any.
func (c *Cache) Get(query string) ([]byte, bool) {
	row := c.db.QueryRow(`SELECT body FROM responses WHERE query_hash = ?`, hashQuery(query))
	var body []byte
	if err := row.Scan(&body); err != nil {
		return nil, false
	}
	return body, true
}

// Put stores (or replaces) the response body for query.
func (c *Cache) Put(query string, body []byte) error {
	_, err := c.db.Exec(`INSERT INTO responses (query_hash, body, fetched_at)
		VALUES (?, ?, ?)
		ON CONFLICT(query_hash) DO UPDATE SET
			body = excluded.body,
			fetched_at = excluded.fetched_at`,
		hashQuery(query), body, time.Now().Unix())
	return err
}

func hashQuery(query string) string {
	sum := sha256.Sum256([]byte(query))
	return hex.EncodeToString(sum[:])
}
