// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-feed-sync/internal/logger"
	"github.com/MKhiriev/go-feed-sync/migrations"
)

// DB wraps the account's sqlite connection and gates writes for the
// host-lifecycle suspend/resume protocol. Writers take the gate as
// readers of the RWMutex so many writes may overlap each other, while
// Suspend takes it exclusively: it blocks until every in-flight write
// finished and keeps new ones out until Resume.
type DB struct {
	*sql.DB
	logger *logger.Logger

	gate      sync.RWMutex
	mu        sync.Mutex
	suspended bool
}

// NewConnectSQLite opens (creating when necessary) the sqlite database
// at dsn, pings it and applies pending goose migrations.
func NewConnectSQLite(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	if dsn == "" {
		dsn = ":memory:"
	}
	if dsn != ":memory:" {
		if err := createLocalDBFileIfNotExists(dsn); err != nil {
			log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
			return nil, fmt.Errorf("error creating database file")
		}
	}

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB")
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		return nil, err
	}

	if err = migrations.Migrate(conn); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error migrating database")
		return nil, err
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	return &DB{DB: conn, logger: log}, nil
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		if dir := filepath.Dir(dbFile); dir != "." {
			if err = os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("error creating DB dir: %w", err)
			}
		}
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	// file already exists
	return nil
}

// beginWrite admits one write operation through the suspend gate. It
// returns a release func the writer must call when done, or
// ErrDatabaseSuspended while the database is suspended.
func (db *DB) beginWrite() (func(), error) {
	db.gate.RLock()

	// Suspend raises the flag before draining the gate, so checking the
	// flag only after RLock guarantees no write starts once Suspend has
	// returned: a late writer either sees the flag here or is drained.
	db.mu.Lock()
	suspended := db.suspended
	db.mu.Unlock()
	if suspended {
		db.gate.RUnlock()
		return nil, ErrDatabaseSuspended
	}
	return db.gate.RUnlock, nil
}

// Suspend blocks until all in-flight writes complete and stops admitting
// new ones. Safe to call repeatedly.
func (db *DB) Suspend() {
	db.mu.Lock()
	if db.suspended {
		db.mu.Unlock()
		return
	}
	db.suspended = true
	db.mu.Unlock()

	// Taking the gate exclusively drains every writer currently inside.
	db.gate.Lock()
	db.gate.Unlock()
	db.logger.Debug().Msg("database suspended")
}

// Resume re-admits writes after a Suspend.
func (db *DB) Resume() {
	db.mu.Lock()
	db.suspended = false
	db.mu.Unlock()
	db.logger.Debug().Msg("database resumed")
}
