package export

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/standardbeagle/thar/internal/cluster"
	"github.com/standardbeagle/thar/internal/taxonomy"
)

// The table layout follows the voter roll database the surnames usually come
// from, so the result can be attached to it.
var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS main_ethnic_category (
		MID INTEGER PRIMARY KEY,
		Mname TEXT NOT NULL,
		description TEXT,
		created_at TEXT,
		updated_at TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS sub_ethnic_category (
		SID INTEGER PRIMARY KEY,
		MID INTEGER NOT NULL REFERENCES main_ethnic_category(MID),
		Sname TEXT NOT NULL,
		description TEXT,
		created_at TEXT,
		updated_at TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS lastnames (
		id INTEGER PRIMARY KEY,
		SID INTEGER NOT NULL REFERENCES sub_ethnic_category(SID),
		lastname TEXT NOT NULL,
		root TEXT,
		root_np TEXT,
		variants_en TEXT,
		variants_np TEXT,
		is_ambiguous INTEGER NOT NULL DEFAULT 0,
		confidence TEXT,
		notes TEXT,
		created_at TEXT,
		updated_at TEXT
	)`,
}

// SQLite writes the category tables and one lastnames row per cluster to the
// database at path. Existing rows in those tables are replaced.
func SQLite(ctx context.Context, path string, clusters []cluster.Cluster, tax *taxonomy.Taxonomy) error {
	if tax == nil {
		tax = taxonomy.Default()
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return err
	}
	defer db.Close()
	db.SetMaxOpenConns(1)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, stmt := range sqliteSchema {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	for _, table := range []string{"lastnames", "sub_ethnic_category", "main_ethnic_category"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	now := time.Now().UTC().Format(time.RFC3339)
	if err := insertCategories(ctx, tx, tax, now); err != nil {
		return err
	}
	if err := insertLastnames(ctx, tx, clusters, now); err != nil {
		return err
	}
	return tx.Commit()
}

func insertCategories(ctx context.Context, tx *sql.Tx, tax *taxonomy.Taxonomy, now string) error {
	mainStmt, err := tx.PrepareContext(ctx,
		"INSERT INTO main_ethnic_category(MID, Mname, created_at, updated_at) VALUES (?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer mainStmt.Close()
	for _, m := range tax.MainCategories() {
		if _, err := mainStmt.ExecContext(ctx, m.ID, m.Name, now, now); err != nil {
			return fmt.Errorf("failed to insert main category %d: %w", m.ID, err)
		}
	}

	subStmt, err := tx.PrepareContext(ctx,
		"INSERT INTO sub_ethnic_category(SID, MID, Sname, created_at, updated_at) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer subStmt.Close()
	for _, s := range tax.SubCategories() {
		if _, err := subStmt.ExecContext(ctx, s.ID, s.MainID, s.Name, now, now); err != nil {
			return fmt.Errorf("failed to insert sub category %d: %w", s.ID, err)
		}
	}
	return nil
}

func insertLastnames(ctx context.Context, tx *sql.Tx, clusters []cluster.Cluster, now string) error {
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO lastnames(
		id, SID, lastname, root, root_np, variants_en, variants_np, is_ambiguous, confidence, notes, created_at, updated_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, c := range clusters {
		ambiguous := 0
		if c.Confidence != cluster.High {
			ambiguous = 1
		}
		_, err := stmt.ExecContext(ctx,
			c.ID, c.SubID, c.CanonicalEnglish, strings.ToLower(c.CanonicalEnglish), c.Devanagari,
			strings.Join(c.Variations, ", "), c.Devanagari, ambiguous, string(c.Confidence), c.Notes, now, now)
		if err != nil {
			return fmt.Errorf("failed to insert cluster %d: %w", c.ID, err)
		}
	}
	return nil
}
