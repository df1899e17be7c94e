// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package bookmark persists the set of bookmarked study identifiers. The
// set lives under one fixed key as a JSON array, the durable analog of the
// browser's local-storage entry, held in a small SQLite kv table.
package bookmark

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/trialscout/pkg/types"
)

// storageKey is the fixed kv key holding the bookmark array.
const storageKey = "bookmarkedRfps"

// Store is a set of opaque identifiers with durable persistence. Every
// mutation is written through immediately; insertion order is preserved so
// the stored array round-trips stably.
type Store struct {
	db  *sql.DB
	ids []string
	set map[string]bool
}

// Open opens or creates the store at cfg.Path and seeds the set from the
// stored key. An absent or malformed stored value yields an empty set,
// never an error.
func Open(cfg types.BookmarkConfig) (*Store, error) {
	path := cfg.Path
	if path == "" {
		path = "trialscout.db"
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening bookmark store: %w", err)
	}

	if _, err := db.Exec(
		`CREATE TABLE IF NOT EXISTS kv (key TEXT PRIMARY KEY, value TEXT NOT NULL)`,
	); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating kv table: %w", err)
	}

	s := &Store{db: db, set: make(map[string]bool)}
	s.load()
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// load seeds the in-memory set from the stored key. Read or parse
// failures degrade to an empty set.
func (s *Store) load() {
	var raw string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, storageKey).Scan(&raw)
	if err != nil {
		return
	}

	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return
	}

	for _, id := range ids {
		if id == "" || s.set[id] {
			continue
		}
		s.ids = append(s.ids, id)
		s.set[id] = true
	}
}

// Toggle flips membership of id and persists the set before returning.
// It reports the new membership state.
func (s *Store) Toggle(id string) (bool, error) {
	if s.set[id] {
		delete(s.set, id)
		for i, existing := range s.ids {
			if existing == id {
				s.ids = append(s.ids[:i], s.ids[i+1:]...)
				break
			}
		}
	} else {
		s.set[id] = true
		s.ids = append(s.ids, id)
	}

	if err := s.persist(); err != nil {
		return s.set[id], err
	}
	return s.set[id], nil
}

// IsBookmarked reports membership of id.
func (s *Store) IsBookmarked(id string) bool {
	return s.set[id]
}

// List returns the bookmarked identifiers in insertion order.
func (s *Store) List() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

func (s *Store) persist() error {
	data, err := json.Marshal(s.ids)
	if err != nil {
		return fmt.Errorf("marshaling bookmarks: %w", err)
	}
	if _, err := s.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		storageKey, string(data),
	); err != nil {
		return fmt.Errorf("persisting bookmarks: %w", err)
	}
	return nil
}
