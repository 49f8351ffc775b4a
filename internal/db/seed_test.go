package db_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/salon-booking/internal/db"
	"github.com/BruksfildServices01/salon-booking/internal/infra/memory"
)

func TestSeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	repos := db.SeedRepos{Users: store, Catalog: store, Templates: store}
	admin := db.SeedAdmin{Username: "admin", Password: "admin123"}

	require.NoError(t, db.Seed(ctx, repos, admin))
	require.NoError(t, db.Seed(ctx, repos, admin))

	cats, _ := store.ListCategories(ctx)
	svcs, _ := store.ListServices(ctx)
	tmpls, _ := store.ListTemplates(ctx)
	assert.Len(t, cats, 2)
	assert.Len(t, svcs, 3)
	assert.Len(t, tmpls, 3)

	u, err := store.GetUserByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.True(t, u.IsAdmin)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("admin123")))

	nailArt, err := store.GetService(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Nail Art", nailArt.Name)
	assert.Equal(t, 35.0, nailArt.Price)
	assert.Equal(t, 60, nailArt.Duration)
}
