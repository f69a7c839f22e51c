// Copyright 2026 The svpost Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package export saves diagnostics into a SQLite database
package export

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/google/uuid"
	"github.com/svflow/svpost/out"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id        TEXT PRIMARY KEY,
	source    TEXT NOT NULL,
	key       TEXT NOT NULL,
	ninstants INTEGER NOT NULL,
	ncols     INTEGER NOT NULL,
	created   TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS diagnostics (
	run_id    TEXT NOT NULL REFERENCES runs(id),
	idx       INTEGER NOT NULL,
	t         REAL NOT NULL,
	h_max     REAL NOT NULL,
	eta_max   REAL NOT NULL,
	u_max_abs REAL NOT NULL,
	u_crest   REAL NOT NULL,
	h_crest   REAL NOT NULL,
	x_crest   REAL NOT NULL,
	nwet      INTEGER NOT NULL,
	PRIMARY KEY (run_id, idx)
);`

// Run identifies one exported post-processing run
type Run struct {
	ID        string
	Source    string
	Key       string
	Ninstants int
	Ncols     int
	Created   time.Time
}

// DB wraps a SQLite database with diagnostics
type DB struct {
	db *sql.DB
}

// Open opens (or creates) the database and makes sure the tables exist
func Open(ctx context.Context, filename string) (o *DB, err error) {
	if dir := filepath.Dir(filename); dir != "" {
		if err = os.MkdirAll(dir, 0755); err != nil {
			return nil, chk.Err("cannot create directory %q:\n%v", dir, err)
		}
	}
	db, err := sql.Open("sqlite", filename)
	if err != nil {
		return nil, chk.Err("cannot open database %q:\n%v", filename, err)
	}
	db.SetMaxOpenConns(1)
	if _, err = db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, chk.Err("cannot create tables in %q:\n%v", filename, err)
	}
	return &DB{db}, nil
}

// Close closes the database
func (o *DB) Close() error {
	return o.db.Close()
}

// Save saves the series of diagnostics as a new run within one transaction
//
//	Note: nothing is saved if any insertion fails
func (o *DB) Save(ctx context.Context, source, key string, ncols int, series *out.Series) (run Run, err error) {

	run = Run{
		ID:        uuid.New().String(),
		Source:    source,
		Key:       key,
		Ninstants: series.Len(),
		Ncols:     ncols,
		Created:   time.Now().UTC(),
	}

	tx, err := o.db.BeginTx(ctx, nil)
	if err != nil {
		return run, chk.Err("cannot begin transaction:\n%v", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	_, err = tx.ExecContext(ctx, `INSERT INTO runs (id, source, key, ninstants, ncols, created) VALUES (?, ?, ?, ?, ?, ?)`,
		run.ID, run.Source, run.Key, run.Ninstants, run.Ncols, run.Created.Format(time.RFC3339Nano))
	if err != nil {
		return run, chk.Err("cannot insert run:\n%v", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO diagnostics
		(run_id, idx, t, h_max, eta_max, u_max_abs, u_crest, h_crest, x_crest, nwet) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return run, chk.Err("cannot prepare insertion of diagnostics:\n%v", err)
	}
	defer stmt.Close()

	for i, r := range series.Recs {
		_, err = stmt.ExecContext(ctx, run.ID, i, series.Times[i], r.Hmax, r.EtaMax, r.UmaxAbs, r.Ucrest, r.Hcrest, r.Xcrest, r.Nwet)
		if err != nil {
			return run, chk.Err("cannot insert diagnostics of instant %d:\n%v", i, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return run, chk.Err("cannot commit transaction:\n%v", err)
	}
	return
}

// Runs returns all runs in the order they were created
func (o *DB) Runs(ctx context.Context) (runs []Run, err error) {
	rows, err := o.db.QueryContext(ctx, `SELECT id, source, key, ninstants, ncols, created FROM runs ORDER BY created, id`)
	if err != nil {
		return nil, chk.Err("cannot query runs:\n%v", err)
	}
	defer rows.Close()
	for rows.Next() {
		var r Run
		var created string
		if err = rows.Scan(&r.ID, &r.Source, &r.Key, &r.Ninstants, &r.Ncols, &created); err != nil {
			return nil, chk.Err("cannot scan run:\n%v", err)
		}
		r.Created, _ = time.Parse(time.RFC3339Nano, created)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Series reads back the series of diagnostics of a run
func (o *DB) Series(ctx context.Context, runID string) (series *out.Series, err error) {
	rows, err := o.db.QueryContext(ctx, `SELECT t, h_max, eta_max, u_max_abs, u_crest, h_crest, x_crest, nwet
		FROM diagnostics WHERE run_id = ? ORDER BY idx`, runID)
	if err != nil {
		return nil, chk.Err("cannot query diagnostics of run %q:\n%v", runID, err)
	}
	defer rows.Close()
	series = new(out.Series)
	for rows.Next() {
		var t float64
		var r out.Record
		if err = rows.Scan(&t, &r.Hmax, &r.EtaMax, &r.UmaxAbs, &r.Ucrest, &r.Hcrest, &r.Xcrest, &r.Nwet); err != nil {
			return nil, chk.Err("cannot scan diagnostics:\n%v", err)
		}
		series.Times = append(series.Times, t)
		series.Recs = append(series.Recs, r)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	if series.Len() == 0 {
		return nil, chk.Err("run %q has no diagnostics", runID)
	}
	return
}
