// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package brand persists brand profiles in a local SQLite database. The
// generation pipeline consumes profiles only through their BrandContext
// view; nothing downstream depends on this package's storage format.
package brand

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/content-engine/pkg/types"
)

const dbFile = "profiles.db"

// ErrNotFound reports a lookup for a profile that does not exist.
var ErrNotFound = errors.New("brand profile not found")

// now is overridden in tests to pin timestamps.
var now = time.Now

// Profile is a stored brand record with bookkeeping timestamps.
type Profile struct {
	types.BrandContext `yaml:",inline"`

	CreatedAt string `json:"created_at" yaml:"created_at"`
	UpdatedAt string `json:"updated_at" yaml:"updated_at"`
}

// Store manages the brand profile SQLite database.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the profile database at dir/profiles.db,
// creating the schema if it does not exist.
func NewStore(cfg types.BrandStoreConfig) (*Store, error) {
	dir := cfg.Dir
	if dir == "" {
		dir = "brands"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating brand directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS brand_profiles (
			name            TEXT PRIMARY KEY,
			target_audience TEXT NOT NULL DEFAULT '',
			tone            TEXT NOT NULL DEFAULT '',
			industry        TEXT NOT NULL DEFAULT '',
			key_values      TEXT NOT NULL DEFAULT '',
			created_at      TEXT NOT NULL,
			updated_at      TEXT NOT NULL
		)`)
	return err
}

// Save upserts a profile keyed by brand name. The creation timestamp of an
// existing row is preserved.
func (s *Store) Save(ctx context.Context, bc types.BrandContext) error {
	if strings.TrimSpace(bc.BrandName) == "" {
		return errors.New("brand name is required")
	}
	if bc.BrandTone != "" && !bc.BrandTone.Valid() {
		return fmt.Errorf("invalid brand tone %q", bc.BrandTone)
	}

	ts := now().Format(time.RFC3339)
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO brand_profiles (name, target_audience, tone, industry, key_values, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			target_audience = excluded.target_audience,
			tone            = excluded.tone,
			industry        = excluded.industry,
			key_values      = excluded.key_values,
			updated_at      = excluded.updated_at`,
		bc.BrandName, bc.TargetAudience, string(bc.BrandTone), bc.Industry, bc.KeyValues, ts, ts)
	if err != nil {
		return fmt.Errorf("saving profile %q: %w", bc.BrandName, err)
	}
	return nil
}

// Get returns the profile for a brand name, or ErrNotFound.
func (s *Store) Get(ctx context.Context, name string) (*Profile, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT name, target_audience, tone, industry, key_values, created_at, updated_at
		FROM brand_profiles WHERE name = ?`, name)

	p, err := scanProfile(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("loading profile %q: %w", name, err)
	}
	return p, nil
}

// List returns all profiles ordered by brand name.
func (s *Store) List(ctx context.Context) ([]Profile, error) {
	return s.queryProfiles(ctx, `
		SELECT name, target_audience, tone, industry, key_values, created_at, updated_at
		FROM brand_profiles ORDER BY name`)
}

// Delete removes a profile. It reports whether a row existed.
func (s *Store) Delete(ctx context.Context, name string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM brand_profiles WHERE name = ?`, name)
	if err != nil {
		return false, fmt.Errorf("deleting profile %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Search returns profiles whose name, industry, or key values contain the
// query, case-insensitively, ordered by name.
func (s *Store) Search(ctx context.Context, query string) ([]Profile, error) {
	pattern := "%" + strings.ToLower(query) + "%"
	return s.queryProfiles(ctx, `
		SELECT name, target_audience, tone, industry, key_values, created_at, updated_at
		FROM brand_profiles
		WHERE lower(name) LIKE ? OR lower(industry) LIKE ? OR lower(key_values) LIKE ?
		ORDER BY name`, pattern, pattern, pattern)
}

// Summary returns a one-line " | "-joined view of a profile.
func (s *Store) Summary(ctx context.Context, name string) (string, error) {
	p, err := s.Get(ctx, name)
	if err != nil {
		return "", err
	}

	parts := []string{"Brand: " + p.BrandName}
	if p.TargetAudience != "" {
		parts = append(parts, "Audience: "+p.TargetAudience)
	}
	if p.BrandTone != "" {
		parts = append(parts, "Tone: "+string(p.BrandTone))
	}
	if p.Industry != "" {
		parts = append(parts, "Industry: "+p.Industry)
	}
	if p.KeyValues != "" {
		parts = append(parts, "Values: "+p.KeyValues)
	}
	return strings.Join(parts, " | "), nil
}

// ExportJSON renders every profile as an indented JSON object keyed by
// brand name.
func (s *Store) ExportJSON(ctx context.Context) ([]byte, error) {
	profiles, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	byName := make(map[string]Profile, len(profiles))
	for _, p := range profiles {
		byName[p.BrandName] = p
	}
	return json.MarshalIndent(byName, "", "  ")
}

// ImportJSON loads profiles from an ExportJSON payload. Existing profiles
// are skipped unless overwrite is set. Returns the number imported.
func (s *Store) ImportJSON(ctx context.Context, data []byte, overwrite bool) (int, error) {
	var imported map[string]Profile
	if err := json.Unmarshal(data, &imported); err != nil {
		return 0, fmt.Errorf("invalid profile JSON: %w", err)
	}

	count := 0
	for name, p := range imported {
		if p.BrandName == "" {
			p.BrandName = name
		}
		if !overwrite {
			if _, err := s.Get(ctx, p.BrandName); err == nil {
				continue
			} else if !errors.Is(err, ErrNotFound) {
				return count, err
			}
		}
		if err := s.Save(ctx, p.BrandContext); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

func (s *Store) queryProfiles(ctx context.Context, query string, args ...any) ([]Profile, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying profiles: %w", err)
	}
	defer rows.Close()

	var profiles []Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, *p)
	}
	return profiles, rows.Err()
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanProfile(row scanner) (*Profile, error) {
	var p Profile
	var tone string
	if err := row.Scan(&p.BrandName, &p.TargetAudience, &tone, &p.Industry, &p.KeyValues, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	p.BrandTone = types.BrandTone(tone)
	return &p, nil
}
