package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/etec-portal-api/internal/models"
	"github.com/noah-isme/etec-portal-api/internal/store"
)

func newAccountRepo() *AccountRepository {
	return NewAccountRepository(store.NewGateway(store.NewMemStore()))
}

func studentJane() models.Account {
	return models.Account{
		ID: "jane@x.com", Email: "jane@x.com", RegNo: "ET-0001",
		Role: models.RoleStudent, Name: "Jane", Password: "pw1",
		Stream: "Science", Medium: "English",
	}
}

func TestSaveAndFindByEmail(t *testing.T) {
	repo := newAccountRepo()
	ctx := context.Background()

	jane := studentJane()
	require.NoError(t, repo.Save(ctx, jane))

	got, err := repo.Find(ctx, "jane@x.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, jane, *got)

	// Email lookup is case-insensitive.
	got, err = repo.Find(ctx, "JANE@X.COM")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, jane, *got)
}

func TestFindByRegNo(t *testing.T) {
	repo := newAccountRepo()
	ctx := context.Background()
	require.NoError(t, repo.Save(ctx, studentJane()))

	for _, id := range []string{"ET-0001", "et-0001", " et-0001 "} {
		got, err := repo.Find(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, got, "lookup %q", id)
		assert.Equal(t, "jane@x.com", got.Email)
	}
}

func TestFindMissing(t *testing.T) {
	repo := newAccountRepo()

	got, err := repo.Find(context.Background(), "nobody@x.com")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSaveOverwrites(t *testing.T) {
	repo := newAccountRepo()
	ctx := context.Background()

	jane := studentJane()
	require.NoError(t, repo.Save(ctx, jane))

	jane.Name = "Jane D."
	jane.Stream = ""
	require.NoError(t, repo.Save(ctx, jane))

	got, err := repo.Find(ctx, "jane@x.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Jane D.", got.Name)
	// Full overwrite, not a merge.
	assert.Empty(t, got.Stream)
}

func TestSeedAdminIfMissing(t *testing.T) {
	repo := newAccountRepo()
	ctx := context.Background()

	seed := models.Account{Email: "Admin@etec.lk", Name: "E-Tec Admin", Password: "admin123"}
	require.NoError(t, repo.SeedAdminIfMissing(ctx, seed))

	accounts, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, models.RoleAdmin, accounts[0].Role)
	assert.Equal(t, "admin@etec.lk", accounts[0].Email)

	// Second call changes nothing.
	require.NoError(t, repo.SeedAdminIfMissing(ctx, seed))
	accounts, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, accounts, 1)
}

func TestSeedAdminSkipsWhenAdminExists(t *testing.T) {
	repo := newAccountRepo()
	ctx := context.Background()

	existing := models.Account{ID: "boss@x.com", Email: "boss@x.com", Role: models.RoleAdmin, Name: "Boss", Password: "pw"}
	require.NoError(t, repo.Save(ctx, existing))

	require.NoError(t, repo.SeedAdminIfMissing(ctx, models.Account{Email: "admin@etec.lk", Password: "admin123"}))

	accounts, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, accounts, 1)
	assert.Equal(t, "boss@x.com", accounts[0].Email)
}
