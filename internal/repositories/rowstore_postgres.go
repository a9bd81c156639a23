package repositories

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/skosovan/data-analyzer/internal/logger"
)

// PostgresTable implements Table on a relational rows table. It deliberately
// keeps the remote-sheet contract — whole-table read, row append, clear and
// rewrite — so the account store behaves identically on either backend,
// including the lost-update hazard of ReplaceAll, which runs its DELETE and
// INSERTs outside a transaction.
type PostgresTable struct {
	db    *sqlx.DB
	sheet string
}

// NewPostgresTable creates a table backend bound to one logical sheet name.
func NewPostgresTable(db *sqlx.DB, sheet string) *PostgresTable {
	return &PostgresTable{db: db, sheet: sheet}
}

// Schema is the expected shape of the backing table:
//
//	CREATE TABLE IF NOT EXISTS sheet_rows (
//	    sheet TEXT        NOT NULL,
//	    pos   BIGSERIAL   PRIMARY KEY,
//	    cells JSONB       NOT NULL
//	);

// ReadAll returns every row of the sheet in insertion order.
func (t *PostgresTable) ReadAll(ctx context.Context) ([][]string, error) {
	const query = `
		SELECT cells
		FROM sheet_rows
		WHERE sheet = $1
		ORDER BY pos
	`

	var raw [][]byte
	err := t.db.SelectContext(ctx, &raw, query, t.sheet)

	logger.Log.Infow("rowstore read",
		"query", strings.Join(strings.Fields(query), " "),
		"sheet", t.sheet,
		"rows", len(raw),
		"error", err,
	)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(raw))
	for _, cells := range raw {
		var row []string
		if err := json.Unmarshal(cells, &row); err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Append inserts one row after the current last row of the sheet.
func (t *PostgresTable) Append(ctx context.Context, row []string) error {
	const query = `
		INSERT INTO sheet_rows (sheet, cells)
		VALUES ($1, $2)
	`

	cells, err := json.Marshal(row)
	if err != nil {
		return err
	}

	_, err = t.db.ExecContext(ctx, query, t.sheet, cells)

	logger.Log.Infow("rowstore append",
		"query", strings.Join(strings.Fields(query), " "),
		"sheet", t.sheet,
		"error", err,
	)
	return err
}

// ReplaceAll deletes the sheet's rows and inserts the given ones.
func (t *PostgresTable) ReplaceAll(ctx context.Context, rows [][]string) error {
	const deleteQuery = `DELETE FROM sheet_rows WHERE sheet = $1`
	const insertQuery = `INSERT INTO sheet_rows (sheet, cells) VALUES ($1, $2)`

	_, err := t.db.ExecContext(ctx, deleteQuery, t.sheet)

	logger.Log.Infow("rowstore clear",
		"query", deleteQuery,
		"sheet", t.sheet,
		"error", err,
	)
	if err != nil {
		return err
	}

	for _, row := range rows {
		cells, err := json.Marshal(row)
		if err != nil {
			return err
		}
		if _, err := t.db.ExecContext(ctx, insertQuery, t.sheet, cells); err != nil {
			logger.Log.Errorw("rowstore rewrite failed mid-way",
				"sheet", t.sheet,
				"error", err,
			)
			return err
		}
	}
	return nil
}
