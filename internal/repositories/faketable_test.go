package repositories_test

import (
	"context"
	"sync"
)

// memTable is an in-memory stand-in for the remote row store. It mimics the
// store's contract exactly: whole-table reads, per-row appends, and a
// clear-then-rewrite ReplaceAll, with no row-level locking across calls.
type memTable struct {
	mu   sync.Mutex
	rows [][]string
	err  error
}

func newMemTable(rows ...[]string) *memTable {
	return &memTable{rows: rows}
}

func (t *memTable) ReadAll(ctx context.Context) ([][]string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.err != nil {
		return nil, t.err
	}
	out := make([][]string, len(t.rows))
	for i, row := range t.rows {
		out[i] = append([]string(nil), row...)
	}
	return out, nil
}

func (t *memTable) Append(ctx context.Context, row []string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.err != nil {
		return t.err
	}
	t.rows = append(t.rows, append([]string(nil), row...))
	return nil
}

func (t *memTable) ReplaceAll(ctx context.Context, rows [][]string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.err != nil {
		return t.err
	}
	t.rows = make([][]string, len(rows))
	for i, row := range rows {
		t.rows[i] = append([]string(nil), row...)
	}
	return nil
}

func (t *memTable) fail(err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.err = err
}

func (t *memTable) snapshot() [][]string {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([][]string, len(t.rows))
	for i, row := range t.rows {
		out[i] = append([]string(nil), row...)
	}
	return out
}
