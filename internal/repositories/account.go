package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/skosovan/data-analyzer/internal/logger"
	"github.com/skosovan/data-analyzer/internal/models"
)

// ErrStoreUnavailable marks a failure of the remote record store itself
// (connectivity, auth, quota). It is never conflated with an empty table or
// a missing row: callers must treat it as "no accounts known", not "zero
// accounts exist".
var ErrStoreUnavailable = errors.New("record store unavailable")

// accountHeader is the header row of the account table.
var accountHeader = []string{"username", "password_hash", "role"}

func accountFromRow(row []string) (models.Account, bool) {
	if len(row) < 2 || row[0] == "" {
		return models.Account{}, false
	}
	acct := models.Account{
		Username:     row[0],
		PasswordHash: row[1],
		Role:         models.RoleUser,
	}
	// Rows written before the role column was added have two cells.
	if len(row) > 2 && row[2] != "" {
		acct.Role = row[2]
	}
	return acct, true
}

func accountToRow(acct models.Account) []string {
	return []string{acct.Username, acct.PasswordHash, acct.Role}
}

// AccountReadRepository reads accounts from the remote table.
type AccountReadRepository struct {
	table Table
}

// NewAccountReadRepository creates a read repository over a table.
func NewAccountReadRepository(table Table) *AccountReadRepository {
	return &AccountReadRepository{table: table}
}

// List returns every account keyed by username. When concurrent appends have
// produced duplicate rows for one username, the first row wins; duplicates
// are reported so the caller can reject further registrations.
func (r *AccountReadRepository) List(ctx context.Context) (map[string]models.Account, error) {
	rows, err := r.table.ReadAll(ctx)
	if err != nil {
		logger.Log.Errorw("failed to read account table", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	accounts := make(map[string]models.Account)
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		acct, ok := accountFromRow(row)
		if !ok {
			continue
		}
		if _, dup := accounts[acct.Username]; dup {
			logger.Log.Warnw("duplicate account row, first row wins", "username", acct.Username)
			continue
		}
		accounts[acct.Username] = acct
	}
	return accounts, nil
}

// Find returns the account for a username, or nil when no row matches.
func (r *AccountReadRepository) Find(ctx context.Context, username string) (*models.Account, error) {
	accounts, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	if acct, ok := accounts[username]; ok {
		return &acct, nil
	}
	return nil, nil
}

// AccountWriteRepository mutates the remote account table. Append is the only
// per-row primitive the store offers; Delete and Update are implemented as
// read-everything, patch in memory, clear, rewrite. A write from another
// process landing between the read and the rewrite is silently lost.
type AccountWriteRepository struct {
	table Table
}

// NewAccountWriteRepository creates a write repository over a table.
func NewAccountWriteRepository(table Table) *AccountWriteRepository {
	return &AccountWriteRepository{table: table}
}

// Append adds one account row. It does not check for duplicates; two
// concurrent appends of the same username leave two rows, which the read
// side detects on the next List.
func (r *AccountWriteRepository) Append(ctx context.Context, acct models.Account) error {
	if err := ensureHeader(ctx, r.table, accountHeader); err != nil {
		logger.Log.Errorw("failed to provision account table header", "error", err)
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if err := r.table.Append(ctx, accountToRow(acct)); err != nil {
		logger.Log.Errorw("failed to append account row", "username", acct.Username, "error", err)
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// Update replaces the stored hash (and role, if set) for a username.
// Returns false when no row matched.
func (r *AccountWriteRepository) Update(ctx context.Context, acct models.Account) (bool, error) {
	rows, err := r.table.ReadAll(ctx)
	if err != nil {
		logger.Log.Errorw("failed to read account table", "error", err)
		return false, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	found := false
	out := [][]string{accountHeader}
	for i, row := range rows {
		if i == 0 {
			continue
		}
		existing, ok := accountFromRow(row)
		if !ok {
			continue
		}
		if existing.Username == acct.Username {
			found = true
			existing.PasswordHash = acct.PasswordHash
			if acct.Role != "" {
				existing.Role = acct.Role
			}
		}
		out = append(out, accountToRow(existing))
	}
	if !found {
		return false, nil
	}

	if err := r.table.ReplaceAll(ctx, out); err != nil {
		logger.Log.Errorw("failed to rewrite account table", "username", acct.Username, "error", err)
		return false, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return true, nil
}

// Delete removes every row for a username. Returns false when no row matched.
func (r *AccountWriteRepository) Delete(ctx context.Context, username string) (bool, error) {
	rows, err := r.table.ReadAll(ctx)
	if err != nil {
		logger.Log.Errorw("failed to read account table", "error", err)
		return false, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	found := false
	out := [][]string{accountHeader}
	for i, row := range rows {
		if i == 0 {
			continue
		}
		acct, ok := accountFromRow(row)
		if !ok {
			continue
		}
		if acct.Username == username {
			found = true
			continue
		}
		out = append(out, accountToRow(acct))
	}
	if !found {
		return false, nil
	}

	if err := r.table.ReplaceAll(ctx, out); err != nil {
		logger.Log.Errorw("failed to rewrite account table", "username", username, "error", err)
		return false, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return true, nil
}
