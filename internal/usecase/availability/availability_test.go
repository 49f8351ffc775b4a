package availability

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-booking/internal/cache"
	"github.com/BruksfildServices01/salon-booking/internal/domain"
	"github.com/BruksfildServices01/salon-booking/internal/infra/memory"
	"github.com/BruksfildServices01/salon-booking/internal/models"
)

func lisbon(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Lisbon")
	require.NoError(t, err)
	return loc
}

func TestGetDefaultsToAvailable(t *testing.T) {
	loc := lisbon(t)
	get := NewGetAvailability(memory.NewStore(), nil, loc, nil)

	av, err := get.Execute(context.Background(), time.Date(2025, 12, 25, 15, 0, 0, 0, loc))

	require.NoError(t, err)
	assert.True(t, av.IsAvailable)
	assert.Zero(t, av.ID)
	assert.Equal(t, time.Date(2025, 12, 25, 0, 0, 0, 0, loc), av.Date)
}

func TestSetThenOverwriteKeepsSingleRecord(t *testing.T) {
	ctx := context.Background()
	loc := lisbon(t)
	store := memory.NewStore()
	set := NewSetAvailability(store, nil, nil, nil, loc, nil)
	get := NewGetAvailability(store, nil, loc, nil)

	av, created, err := set.Execute(ctx, time.Date(2025, 12, 25, 9, 0, 0, 0, loc), false, nil)
	require.NoError(t, err)
	assert.True(t, created)
	assert.False(t, av.IsAvailable)

	got, err := get.Execute(ctx, time.Date(2025, 12, 25, 18, 30, 0, 0, loc))
	require.NoError(t, err)
	assert.False(t, got.IsAvailable)

	av2, created, err := set.Execute(ctx, time.Date(2025, 12, 25, 23, 0, 0, 0, loc), true, nil)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, av.ID, av2.ID)

	got, err = get.Execute(ctx, time.Date(2025, 12, 25, 0, 0, 0, 0, loc))
	require.NoError(t, err)
	assert.True(t, got.IsAvailable)

	all, err := get.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestCacheIsInvalidatedOnSet(t *testing.T) {
	ctx := context.Background()
	loc := lisbon(t)
	store := memory.NewStore()
	mr := miniredis.RunT(t)
	client := cache.NewRedisClient(mr.Addr(), "")
	t.Cleanup(func() { _ = client.Close() })
	c := cache.NewAvailabilityCache(client, time.Minute)

	get := NewGetAvailability(store, c, loc, nil)
	set := NewSetAvailability(store, c, nil, nil, loc, nil)
	day := time.Date(2025, 12, 25, 0, 0, 0, 0, loc)

	av, err := get.Execute(ctx, day)
	require.NoError(t, err)
	assert.True(t, av.IsAvailable)
	assert.True(t, mr.Exists("availability:2025-12-25"))

	_, _, err = set.Execute(ctx, day, false, nil)
	require.NoError(t, err)
	assert.False(t, mr.Exists("availability:2025-12-25"))

	av, err = get.Execute(ctx, day)
	require.NoError(t, err)
	assert.False(t, av.IsAvailable)
}

func TestCacheOutageFallsBackToRepository(t *testing.T) {
	ctx := context.Background()
	loc := lisbon(t)
	mr := miniredis.RunT(t)
	client := cache.NewRedisClient(mr.Addr(), "")
	t.Cleanup(func() { _ = client.Close() })
	mr.Close()

	get := NewGetAvailability(memory.NewStore(), cache.NewAvailabilityCache(client, time.Minute), loc, nil)

	av, err := get.Execute(ctx, time.Date(2025, 12, 25, 0, 0, 0, 0, loc))
	require.NoError(t, err)
	assert.True(t, av.IsAvailable)
}

func TestCacheKeyUsesSalonDayForUTCRecords(t *testing.T) {
	ctx := context.Background()
	loc := lisbon(t)
	store := memory.NewStore()
	june10 := time.Date(2025, 6, 10, 0, 0, 0, 0, loc)

	// postgres devolve o timestamptz em UTC: 2025-06-09 23:00
	require.NoError(t, store.CreateAvailability(ctx, &models.Availability{Date: june10.UTC(), IsAvailable: false}))

	mr := miniredis.RunT(t)
	client := cache.NewRedisClient(mr.Addr(), "")
	t.Cleanup(func() { _ = client.Close() })
	get := NewGetAvailability(store, cache.NewAvailabilityCache(client, time.Minute), loc, nil)

	av, err := get.Execute(ctx, june10)
	require.NoError(t, err)
	assert.False(t, av.IsAvailable)
	assert.Equal(t, june10, av.Date)
	assert.Equal(t, []string{"availability:2025-06-10"}, mr.Keys())

	prev, err := get.Execute(ctx, time.Date(2025, 6, 9, 12, 0, 0, 0, loc))
	require.NoError(t, err)
	assert.True(t, prev.IsAvailable)

	again, err := get.Execute(ctx, june10)
	require.NoError(t, err)
	assert.False(t, again.IsAvailable)
}

// staleReadStore simula a escrita concorrente: a primeira leitura do dia
// não enxerga o registro que outra requisição acabou de criar.
type staleReadStore struct {
	*memory.Store
	misses int
}

func (s *staleReadStore) GetAvailabilityByDay(ctx context.Context, day time.Time) (*models.Availability, error) {
	if s.misses > 0 {
		s.misses--
		return nil, domain.NotFound("availability")
	}
	return s.Store.GetAvailabilityByDay(ctx, day)
}

func TestConcurrentFirstWriteUpdatesExistingDay(t *testing.T) {
	ctx := context.Background()
	loc := lisbon(t)
	day := time.Date(2025, 6, 10, 0, 0, 0, 0, loc)

	store := &staleReadStore{Store: memory.NewStore(), misses: 1}
	first := &models.Availability{Date: day, IsAvailable: true}
	require.NoError(t, store.Store.CreateAvailability(ctx, first))

	set := NewSetAvailability(store, nil, nil, nil, loc, nil)

	av, created, err := set.Execute(ctx, day, false, nil)

	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, av.ID)
	assert.False(t, av.IsAvailable)

	all, err := store.ListAvailability(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.False(t, all[0].IsAvailable)
}
