package repositories_test

import (
	"context"
	"errors"
	"testing"

	"github.com/skosovan/data-analyzer/internal/models"
	"github.com/skosovan/data-analyzer/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var accountHeader = []string{"username", "password_hash", "role"}

func TestAccountReadRepository_List(t *testing.T) {
	table := newMemTable(
		accountHeader,
		[]string{"alice", "hash-a", "user"},
		[]string{"admin", "hash-admin", "admin"},
		[]string{"", "orphan", "user"},
		[]string{"short"},
	)
	repo := repositories.NewAccountReadRepository(table)

	accounts, err := repo.List(context.Background())
	require.NoError(t, err)

	assert.Len(t, accounts, 2)
	assert.Equal(t, "hash-a", accounts["alice"].PasswordHash)
	assert.Equal(t, models.RoleUser, accounts["alice"].Role)
	assert.Equal(t, models.RoleAdmin, accounts["admin"].Role)
}

func TestAccountReadRepository_List_LegacyTwoCellRow(t *testing.T) {
	table := newMemTable(
		accountHeader,
		[]string{"legacy", "hash-l"},
	)
	repo := repositories.NewAccountReadRepository(table)

	accounts, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, accounts["legacy"].Role)
}

func TestAccountReadRepository_List_DuplicateFirstRowWins(t *testing.T) {
	// Two rows for one username is exactly what two racing registrations
	// leave behind: Append has no duplicate check.
	table := newMemTable(
		accountHeader,
		[]string{"alice", "first-hash", "user"},
		[]string{"alice", "second-hash", "user"},
	)
	repo := repositories.NewAccountReadRepository(table)

	accounts, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, accounts, 1)
	assert.Equal(t, "first-hash", accounts["alice"].PasswordHash)
}

func TestAccountReadRepository_List_StoreUnavailable(t *testing.T) {
	table := newMemTable(accountHeader)
	table.fail(errors.New("quota exceeded"))
	repo := repositories.NewAccountReadRepository(table)

	_, err := repo.List(context.Background())
	assert.ErrorIs(t, err, repositories.ErrStoreUnavailable)
}

func TestAccountReadRepository_Find(t *testing.T) {
	table := newMemTable(
		accountHeader,
		[]string{"alice", "hash-a", "user"},
	)
	repo := repositories.NewAccountReadRepository(table)

	acct, err := repo.Find(context.Background(), "alice")
	require.NoError(t, err)
	require.NotNil(t, acct)
	assert.Equal(t, "alice", acct.Username)

	missing, err := repo.Find(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestAccountWriteRepository_Append(t *testing.T) {
	table := newMemTable(accountHeader)
	repo := repositories.NewAccountWriteRepository(table)

	err := repo.Append(context.Background(), models.Account{
		Username:     "alice",
		PasswordHash: "hash-a",
		Role:         models.RoleUser,
	})
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		accountHeader,
		{"alice", "hash-a", "user"},
	}, table.snapshot())
}

// A fresh backing table has no header row; the first Append must provision
// one, or every read would swallow the first account as the header. Before
// this, bootstrapping the admin on an empty Postgres table left an account
// that could never be found again.
func TestAccountRepositories_EmptyTableFirstAppendVisible(t *testing.T) {
	table := newMemTable()
	writer := repositories.NewAccountWriteRepository(table)
	reader := repositories.NewAccountReadRepository(table)
	ctx := context.Background()

	require.NoError(t, writer.Append(ctx, models.Account{
		Username:     "admin",
		PasswordHash: "hash-admin",
		Role:         models.RoleAdmin,
	}))

	acct, err := reader.Find(ctx, "admin")
	require.NoError(t, err)
	require.NotNil(t, acct)
	assert.Equal(t, models.RoleAdmin, acct.Role)

	// Header once, then the data row; a second append must not re-add it.
	require.NoError(t, writer.Append(ctx, models.Account{
		Username: "alice", PasswordHash: "hash-a", Role: models.RoleUser,
	}))
	assert.Equal(t, [][]string{
		accountHeader,
		{"admin", "hash-admin", "admin"},
		{"alice", "hash-a", "user"},
	}, table.snapshot())
}

func TestAccountWriteRepository_Update(t *testing.T) {
	table := newMemTable(
		accountHeader,
		[]string{"alice", "old-hash", "user"},
		[]string{"bob", "hash-b", "user"},
	)
	repo := repositories.NewAccountWriteRepository(table)

	found, err := repo.Update(context.Background(), models.Account{
		Username:     "alice",
		PasswordHash: "new-hash",
	})
	require.NoError(t, err)
	assert.True(t, found)

	rows := table.snapshot()
	assert.Equal(t, []string{"alice", "new-hash", "user"}, rows[1])
	assert.Equal(t, []string{"bob", "hash-b", "user"}, rows[2])

	found, err = repo.Update(context.Background(), models.Account{Username: "nobody", PasswordHash: "x"})
	require.NoError(t, err)
	assert.False(t, found)
}

func TestAccountWriteRepository_Delete(t *testing.T) {
	table := newMemTable(
		accountHeader,
		[]string{"alice", "hash-a", "user"},
		[]string{"bob", "hash-b", "user"},
	)
	repo := repositories.NewAccountWriteRepository(table)

	found, err := repo.Delete(context.Background(), "alice")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, [][]string{
		accountHeader,
		{"bob", "hash-b", "user"},
	}, table.snapshot())

	found, err = repo.Delete(context.Background(), "alice")
	require.NoError(t, err)
	assert.False(t, found)
}

// A delete that overlaps a registration loses the registration: the delete
// reads the table before the new row lands, then rewrites the table from its
// stale copy. The store offers no primitive to prevent this.
func TestAccountWriteRepository_Delete_LosesConcurrentAppend(t *testing.T) {
	table := newMemTable(
		accountHeader,
		[]string{"alice", "hash-a", "user"},
		[]string{"bob", "hash-b", "user"},
	)
	repo := repositories.NewAccountWriteRepository(table)
	ctx := context.Background()

	// Stale read, as the deleting request would see it.
	stale, err := table.ReadAll(ctx)
	require.NoError(t, err)

	// Another request registers carol between the read and the rewrite.
	require.NoError(t, repo.Append(ctx, models.Account{
		Username: "carol", PasswordHash: "hash-c", Role: models.RoleUser,
	}))

	// The delete finishes from its stale copy: bob is removed, and carol's
	// row is wiped out with him.
	out := [][]string{accountHeader}
	for i, row := range stale {
		if i == 0 || row[0] == "bob" {
			continue
		}
		out = append(out, row)
	}
	require.NoError(t, table.ReplaceAll(ctx, out))

	reader := repositories.NewAccountReadRepository(table)
	accounts, err := reader.List(ctx)
	require.NoError(t, err)
	assert.Contains(t, accounts, "alice")
	assert.NotContains(t, accounts, "bob")
	assert.NotContains(t, accounts, "carol", "append landing mid-rewrite is silently lost")
}
