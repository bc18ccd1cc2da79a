// Copyright (c) 2026 liuyuxun, 1225
// bigcalc - arbitrary-precision integer calculator
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/mysqldialect"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver (pgx)
	_ "modernc.org/sqlite"             // Pure Go SQLite driver
)

// New opens the history store for the given backend ("sqlite", "mysql" or
// "postgres"), creates the schema if needed and installs the result as the
// package default store.
func New(dbType, dsn string) (Store, error) {
	s, err := NewStoreFromDSN(dbType, dsn)
	if err != nil {
		return nil, err
	}
	store = s
	return s, nil
}

// NewStoreFromDSN opens a history store without touching the package
// default. Useful for one-off connections (export, migration, tests).
func NewStoreFromDSN(dbType, dsn string) (*BunStore, error) {
	var (
		sqldb *sql.DB
		bdb   *bun.DB
		err   error
	)
	switch dbType {
	case "sqlite":
		sqldb, err = sql.Open("sqlite", dsn)
		if err == nil {
			bdb = bun.NewDB(sqldb, sqlitedialect.New())
		}
	case "mysql":
		sqldb, err = sql.Open("mysql", dsn)
		if err == nil {
			bdb = bun.NewDB(sqldb, mysqldialect.New())
		}
	case "postgres":
		sqldb, err = sql.Open("pgx", dsn)
		if err == nil {
			bdb = bun.NewDB(sqldb, pgdialect.New())
		}
	default:
		return nil, fmt.Errorf("unsupported database type: %q", dbType)
	}
	if err != nil {
		return nil, fmt.Errorf("opening %s database: %w", dbType, err)
	}

	s := &BunStore{db: sqldb, bun: bdb}
	if err := s.createSchema(context.Background()); err != nil {
		_ = bdb.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}
