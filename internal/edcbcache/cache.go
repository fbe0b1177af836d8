// Package edcbcache persists the last-known-good results of the three
// most expensive enumeration calls (EnumService, EnumReserve2,
// EnumRecInfoBasic2) to a local SQLite file, so a caller can serve
// stale-but-available data across a brief EpgTimerSrv outage instead of
// surfacing edcb.ErrNoResult to its own callers.
package edcbcache

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"

	_ "modernc.org/sqlite"

	"github.com/edcb-go/ctrlcmd/edcb"
)

const schema = `
CREATE TABLE IF NOT EXISTS services (
	onid INTEGER NOT NULL,
	tsid INTEGER NOT NULL,
	sid INTEGER NOT NULL,
	data TEXT NOT NULL,
	PRIMARY KEY (onid, tsid, sid)
);
CREATE TABLE IF NOT EXISTS reserves (
	reserve_id INTEGER PRIMARY KEY,
	data TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS rec_info (
	id INTEGER PRIMARY KEY,
	data TEXT NOT NULL
);
`

// Cache wraps a sqlite-backed store of the three enumeration snapshots.
type Cache struct {
	db *sql.DB
}

// Open opens (creating if necessary) the sqlite file at path and ensures
// its schema exists.
func Open(path string) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("edcbcache: open: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("edcbcache: migrate: %w", err)
	}
	return &Cache{db: db}, nil
}

// Close releases the underlying database handle.
func (c *Cache) Close() error {
	return c.db.Close()
}

// SaveServices replaces the cached EnumService snapshot.
func (c *Cache) SaveServices(ctx context.Context, services []edcb.ServiceInfo) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM services"); err != nil {
		return err
	}
	stmt, err := tx.PrepareContext(ctx, "INSERT INTO services (onid, tsid, sid, data) VALUES (?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, s := range services {
		data, err := json.Marshal(s)
		if err != nil {
			return err
		}
		if _, err := stmt.ExecContext(ctx, s.ONID, s.TSID, s.SID, string(data)); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	log.Printf("edcbcache: saved %d services", len(services))
	return nil
}

// LoadServices returns the last saved EnumService snapshot.
func (c *Cache) LoadServices(ctx context.Context) ([]edcb.ServiceInfo, error) {
	rows, err := c.db.QueryContext(ctx, "SELECT data FROM services ORDER BY onid, tsid, sid")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []edcb.ServiceInfo
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		var s edcb.ServiceInfo
		if err := json.Unmarshal([]byte(data), &s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// SaveReserves replaces the cached EnumReserve2 snapshot.
func (c *Cache) SaveReserves(ctx context.Context, reserves []edcb.ReserveData) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM reserves"); err != nil {
		return err
	}
	stmt, err := tx.PrepareContext(ctx, "INSERT INTO reserves (reserve_id, data) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, r := range reserves {
		data, err := json.Marshal(r)
		if err != nil {
			return err
		}
		if _, err := stmt.ExecContext(ctx, r.ReserveID, string(data)); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	log.Printf("edcbcache: saved %d reserves", len(reserves))
	return nil
}

// LoadReserves returns the last saved EnumReserve2 snapshot.
func (c *Cache) LoadReserves(ctx context.Context) ([]edcb.ReserveData, error) {
	rows, err := c.db.QueryContext(ctx, "SELECT data FROM reserves ORDER BY reserve_id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []edcb.ReserveData
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		var r edcb.ReserveData
		if err := json.Unmarshal([]byte(data), &r); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// SaveRecInfo replaces the cached EnumRecInfoBasic2 snapshot.
func (c *Cache) SaveRecInfo(ctx context.Context, recs []edcb.RecFileInfo) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM rec_info"); err != nil {
		return err
	}
	stmt, err := tx.PrepareContext(ctx, "INSERT INTO rec_info (id, data) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, rec := range recs {
		data, err := json.Marshal(rec)
		if err != nil {
			return err
		}
		if _, err := stmt.ExecContext(ctx, rec.ID, string(data)); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	log.Printf("edcbcache: saved %d rec_info entries", len(recs))
	return nil
}

// LoadRecInfo returns the last saved EnumRecInfoBasic2 snapshot.
func (c *Cache) LoadRecInfo(ctx context.Context) ([]edcb.RecFileInfo, error) {
	rows, err := c.db.QueryContext(ctx, "SELECT data FROM rec_info ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []edcb.RecFileInfo
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		var rec edcb.RecFileInfo
		if err := json.Unmarshal([]byte(data), &rec); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
