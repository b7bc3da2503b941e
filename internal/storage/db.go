package storage

import (
	"database/sql"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"acsgen/internal"
	"acsgen/internal/util"
)

type DB struct {
	conn *sql.DB
}

func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := conn.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		_ = conn.Close()
		return nil, err
	}

	db := &DB{conn: conn}
	if err := db.init(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return db, nil
}

func (d *DB) Close() error {
	return d.conn.Close()
}

func (d *DB) init() error {
	schema := `
CREATE TABLE IF NOT EXISTS variables (
  groupId TEXT NOT NULL,
  variableId TEXT NOT NULL,
  label TEXT NOT NULL,
  path TEXT NOT NULL,
  updatedAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
  PRIMARY KEY (groupId, variableId)
);
CREATE INDEX IF NOT EXISTS idx_variables_groupId ON variables(groupId);
`

	_, err := d.conn.Exec(schema)
	return err
}

// UpsertVariables stores extracted records keyed by (groupId, variableId),
// replacing label and path on conflict. Returns the number of records
// written.
func (d *DB) UpsertVariables(records []internal.VariableRecord) (int, error) {
	tx, err := d.conn.Begin()
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(`
INSERT INTO variables (groupId, variableId, label, path)
VALUES (?, ?, ?, ?)
ON CONFLICT(groupId, variableId) DO UPDATE SET
  label=excluded.label,
  path=excluded.path,
  updatedAt=CURRENT_TIMESTAMP
`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	count := 0
	for _, rec := range records {
		group, variable, err := rec.Split()
		if err != nil {
			return count, err
		}
		if _, err := stmt.Exec(group, variable, rec.Label, util.ToNamePath(rec.Label)); err != nil {
			return count, err
		}
		count++
	}

	return count, tx.Commit()
}

func (d *DB) ListVariables() ([]internal.StoredVariable, error) {
	rows, err := d.conn.Query(`
SELECT groupId, variableId, label, path, updatedAt
FROM variables ORDER BY groupId, variableId`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []internal.StoredVariable
	for rows.Next() {
		var v internal.StoredVariable
		if err := rows.Scan(&v.GroupID, &v.VariableID, &v.Label, &v.Path, &v.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, rows.Err()
}
