package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strconv"
)

// Preference keys as stored in the preferences table.
const (
	KeyDarkMode        = "darkMode"
	KeyZoom            = "zoom"
	KeyDividerPosition = "dividerPosition"
	KeyMaximized       = "maximized"
	KeyWindowWidth     = "windowWidth"
	KeyWindowHeight    = "windowHeight"

	recentKeyPrefix = "recentFile"
	maxRecentKeys   = 10
)

// Preferences is the user state carried between sessions.
type Preferences struct {
	DarkMode        bool
	Zoom            float64 // [0.5, 3.0]
	DividerPosition float64 // [0, 1], share of the width given to the sidebar
	Maximized       bool
	WindowWidth     float64 // only meaningful when not maximized
	WindowHeight    float64
	RecentFiles     []string // newest first
}

// DefaultPreferences returns the values used when nothing is stored.
func DefaultPreferences() Preferences {
	return Preferences{
		DarkMode:        false,
		Zoom:            1.0,
		DividerPosition: 0.2,
		Maximized:       true,
		WindowWidth:     1400,
		WindowHeight:    900,
	}
}

// RecentKey returns the key of the i-th recent file.
func RecentKey(i int) string {
	return recentKeyPrefix + strconv.Itoa(i)
}

// PrefStore is a string key-value store backed by SQLite.
type PrefStore struct {
	db *sql.DB
}

// NewPrefStore creates a preference store using the given database.
func NewPrefStore(db *DB) *PrefStore {
	return &PrefStore{db: db.conn}
}

// get returns the value of key and whether it was set.
func (ps *PrefStore) get(key string) (string, bool, error) {
	var value string
	err := ps.db.QueryRow(`SELECT value FROM preferences WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading preference %s: %w", key, err)
	}
	return value, true, nil
}

// All returns every stored preference.
func (ps *PrefStore) All() (map[string]string, error) {
	rows, err := ps.db.Query(`SELECT key, value FROM preferences`)
	if err != nil {
		return nil, fmt.Errorf("reading preferences: %w", err)
	}
	defer rows.Close()

	values := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("scanning preference: %w", err)
		}
		values[k] = v
	}
	return values, rows.Err()
}

type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

func put(db execer, key, value string) error {
	_, err := db.Exec(
		`INSERT INTO preferences (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = datetime('now')`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("writing preference %s: %w", key, err)
	}
	return nil
}

// Load reads the stored preferences. Missing or malformed values fall back
// to defaults and recent files for which exists reports false are dropped.
// A nil exists checks the local filesystem.
func (ps *PrefStore) Load(exists func(path string) bool) (Preferences, error) {
	if exists == nil {
		exists = fileExists
	}

	prefs := DefaultPreferences()
	values, err := ps.All()
	if err != nil {
		return prefs, err
	}

	prefs.DarkMode = parseBool(values, KeyDarkMode, prefs.DarkMode)
	prefs.Zoom = clamp(parseFloat(values, KeyZoom, prefs.Zoom), 0.5, 3.0)
	prefs.DividerPosition = clamp(parseFloat(values, KeyDividerPosition, prefs.DividerPosition), 0, 1)
	prefs.Maximized = parseBool(values, KeyMaximized, prefs.Maximized)
	prefs.WindowWidth = parseFloat(values, KeyWindowWidth, prefs.WindowWidth)
	prefs.WindowHeight = parseFloat(values, KeyWindowHeight, prefs.WindowHeight)

	for i := 0; i < maxRecentKeys; i++ {
		path, ok := values[RecentKey(i)]
		if !ok || path == "" || !exists(path) {
			continue
		}
		prefs.RecentFiles = append(prefs.RecentFiles, path)
	}

	return prefs, nil
}

// Save writes p in one transaction. Window dimensions are only written
// when the window is not maximized, and recent-file keys beyond the
// current list are removed.
func (ps *PrefStore) Save(p Preferences) error {
	tx, err := ps.db.Begin()
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	values := [][2]string{
		{KeyDarkMode, strconv.FormatBool(p.DarkMode)},
		{KeyZoom, formatFloat(clamp(p.Zoom, 0.5, 3.0))},
		{KeyDividerPosition, formatFloat(clamp(p.DividerPosition, 0, 1))},
		{KeyMaximized, strconv.FormatBool(p.Maximized)},
	}
	if !p.Maximized {
		values = append(values,
			[2]string{KeyWindowWidth, formatFloat(p.WindowWidth)},
			[2]string{KeyWindowHeight, formatFloat(p.WindowHeight)},
		)
	}
	for i := 0; i < len(p.RecentFiles) && i < maxRecentKeys; i++ {
		values = append(values, [2]string{RecentKey(i), p.RecentFiles[i]})
	}

	for _, kv := range values {
		if err := put(tx, kv[0], kv[1]); err != nil {
			return err
		}
	}
	for i := len(p.RecentFiles); i < maxRecentKeys; i++ {
		if _, err := tx.Exec(`DELETE FROM preferences WHERE key = ?`, RecentKey(i)); err != nil {
			return fmt.Errorf("clearing %s: %w", RecentKey(i), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing preferences: %w", err)
	}
	return nil
}

func parseBool(values map[string]string, key string, def bool) bool {
	v, ok := values[key]
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func parseFloat(values map[string]string, key string, def float64) float64 {
	v, ok := values[key]
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func clamp(v, lo, hi float64) float64 {
	return min(max(v, lo), hi)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
