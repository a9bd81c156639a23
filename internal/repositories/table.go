package repositories

import "context"

// Table is the full contract of the remote record store: whole-table reads,
// per-row appends, and a clear-and-rewrite of everything. There is no
// row-addressed update or delete and no transaction, so every mutation built
// on ReplaceAll carries a cross-process lost-update hazard.
type Table interface {
	ReadAll(ctx context.Context) ([][]string, error)
	Append(ctx context.Context, row []string) error
	ReplaceAll(ctx context.Context, rows [][]string) error
}

// ensureHeader appends the header row to a still-empty table. Reads treat
// row 0 as the header, so the first data row must never land at position 0.
func ensureHeader(ctx context.Context, table Table, header []string) error {
	rows, err := table.ReadAll(ctx)
	if err != nil {
		return err
	}
	if len(rows) > 0 {
		return nil
	}
	return table.Append(ctx, append([]string(nil), header...))
}
