// Package cache persists classification verdicts between runs so large
// workspaces skip re-inspection of unchanged packages. Entries are
// keyed by package path, type name and a fingerprint of the package's
// sources; a stale fingerprint simply misses.
package cache

import (
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/funvibe/funbuf/internal/inspect"
)

const schema = `
CREATE TABLE IF NOT EXISTS verdicts (
	pkg         TEXT NOT NULL,
	typ         TEXT NOT NULL,
	fingerprint TEXT NOT NULL,
	capability  INTEGER NOT NULL,
	view        INTEGER NOT NULL,
	iterator    TEXT NOT NULL,
	PRIMARY KEY (pkg, typ, fingerprint)
);
`

// Cache is a SQLite-backed store of classification verdicts. It is the
// persistent implementation of inspect.VerdictStore.
type Cache struct {
	db *sql.DB
}

var _ inspect.VerdictStore = (*Cache)(nil)

// Open opens (creating if needed) the cache database at path.
func Open(path string) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening cache %s: %w", path, err)
	}
	// The driver serializes writers; one connection avoids lock
	// contention entirely for this access pattern.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing cache %s: %w", path, err)
	}
	return &Cache{db: db}, nil
}

func (c *Cache) Close() error {
	return c.db.Close()
}

// Get looks up the verdict for one type at the given fingerprint.
// The second return value reports whether the entry was present.
func (c *Cache) Get(pkg, typ, fingerprint string) (inspect.Verdict, bool, error) {
	row := c.db.QueryRow(
		`SELECT capability, view, iterator FROM verdicts WHERE pkg = ? AND typ = ? AND fingerprint = ?`,
		pkg, typ, fingerprint,
	)
	v := inspect.Verdict{Pkg: pkg, Name: typ}
	var capability int
	var isView bool
	if err := row.Scan(&capability, &isView, &v.Iterator); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return inspect.Verdict{}, false, nil
		}
		return inspect.Verdict{}, false, fmt.Errorf("reading cache entry %s.%s: %w", pkg, typ, err)
	}
	v.Capability = inspect.Capability(capability)
	v.View = isView
	return v, true, nil
}

// Put stores one verdict, replacing any previous entry for the same
// key. Entries for older fingerprints are dropped so the cache does not
// grow with every edit.
func (c *Cache) Put(fingerprint string, v inspect.Verdict) error {
	tx, err := c.db.Begin()
	if err != nil {
		return fmt.Errorf("storing cache entry %s: %w", v.FullName(), err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`DELETE FROM verdicts WHERE pkg = ? AND typ = ? AND fingerprint != ?`,
		v.Pkg, v.Name, fingerprint,
	); err != nil {
		return fmt.Errorf("pruning cache entries %s: %w", v.FullName(), err)
	}
	if _, err := tx.Exec(
		`INSERT OR REPLACE INTO verdicts (pkg, typ, fingerprint, capability, view, iterator) VALUES (?, ?, ?, ?, ?, ?)`,
		v.Pkg, v.Name, fingerprint, int(v.Capability), v.View, v.Iterator,
	); err != nil {
		return fmt.Errorf("storing cache entry %s: %w", v.FullName(), err)
	}
	return tx.Commit()
}

// PutPackage stores every verdict of a package report.
func (c *Cache) PutPackage(pr *inspect.PackageReport) error {
	for _, v := range pr.Verdicts {
		if err := c.Put(pr.Fingerprint, v); err != nil {
			return err
		}
	}
	return nil
}
