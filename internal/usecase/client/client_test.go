package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-booking/internal/domain"
	domainClient "github.com/BruksfildServices01/salon-booking/internal/domain/client"
	"github.com/BruksfildServices01/salon-booking/internal/infra/memory"
)

func TestCreateClientRejectsDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	uc := NewCreateClient(store, nil)

	c, err := uc.Execute(ctx, CreateClientInput{Name: " Ana Silva ", Email: "ana@example.com", Phone: "912345678"})
	require.NoError(t, err)
	assert.NotZero(t, c.ID)
	assert.Equal(t, "Ana Silva", c.Name)

	_, err = uc.Execute(ctx, CreateClientInput{Name: "Outra", Email: "ANA@example.com"})
	assert.ErrorIs(t, err, domainClient.ErrEmailTaken)
}

func TestUpdateClientPartial(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	created, err := NewCreateClient(store, nil).Execute(ctx, CreateClientInput{Name: "Ana", Email: "ana@example.com", Phone: "912345678"})
	require.NoError(t, err)
	_, err = NewCreateClient(store, nil).Execute(ctx, CreateClientInput{Name: "Rita", Email: "rita@example.com"})
	require.NoError(t, err)

	uc := NewUpdateClient(store)

	phone := "965555555"
	got, err := uc.Execute(ctx, created.ID, UpdateClientInput{Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.Name)
	assert.Equal(t, "965555555", got.Phone)

	taken := "rita@example.com"
	_, err = uc.Execute(ctx, created.ID, UpdateClientInput{Email: &taken})
	assert.ErrorIs(t, err, domainClient.ErrEmailTaken)

	_, err = uc.Execute(ctx, 404, UpdateClientInput{Phone: &phone})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListClientsSearch(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	create := NewCreateClient(store, nil)
	_, _ = create.Execute(ctx, CreateClientInput{Name: "Ana Silva", Email: "ana@example.com", Phone: "912345678"})
	_, _ = create.Execute(ctx, CreateClientInput{Name: "Rita Costa", Email: "rita@example.com", Phone: "933333333"})

	uc := NewListClients(store)

	all, err := uc.Execute(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	byName, err := uc.Execute(ctx, "  SILVA ")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "Ana Silva", byName[0].Name)

	byPhone, err := uc.Execute(ctx, "9333")
	require.NoError(t, err)
	require.Len(t, byPhone, 1)
	assert.Equal(t, "Rita Costa", byPhone[0].Name)
}
