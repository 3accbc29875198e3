package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cspzone/docs-service/internal/model"
)

func TestResolveClient(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	first, err := env.clients.ResolveClient(ctx, model.ClientDescriptor{
		Name:  "Acme Trading",
		Email: "  Owner@Acme.ae ",
		Phone: "+971 4 000 0000",
	})
	require.NoError(t, err)
	assert.Equal(t, model.ResolveActionCreated, first.Action)
	assert.NotZero(t, first.ID)

	second, err := env.clients.ResolveClient(ctx, model.ClientDescriptor{
		Name:             "Acme Trading LLC",
		Email:            "owner@acme.ae",
		Jurisdiction:     "Dubai Mainland",
		BusinessActivity: "General Trading",
	})
	require.NoError(t, err)
	assert.Equal(t, model.ResolveActionUpdated, second.Action)
	assert.Equal(t, first.ID, second.ID)

	client, err := env.clients.FindClientByEmail(ctx, "OWNER@acme.ae")
	require.NoError(t, err)
	require.NotNil(t, client)
	assert.Equal(t, "owner@acme.ae", client.Email)
	assert.Equal(t, "Acme Trading LLC", client.Name)
	assert.Equal(t, "Dubai Mainland", client.Jurisdiction)

	clients, err := env.clients.ListClients(ctx)
	require.NoError(t, err)
	assert.Len(t, clients, 1)
}

func TestResolveClientRequiresEmail(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.clients.ResolveClient(context.Background(), model.ClientDescriptor{Name: "No Mail", Email: "  "})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
	assert.Equal(t, KindValidation, KindOf(err))
}

func TestClientLookupsWhenAbsent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	client, err := env.clients.FindClientByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, client)

	client, err = env.clients.GetClient(ctx, 404)
	require.NoError(t, err)
	assert.Nil(t, client)

	clients, err := env.clients.ListClients(ctx)
	require.NoError(t, err)
	assert.NotNil(t, clients)
	assert.Empty(t, clients)
}

func TestResolveClientConcurrentSameEmail(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	const callers = 8
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		ids     = make(map[int64]struct{})
		actions = make(map[model.ResolveAction]int)
	)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := env.clients.ResolveClient(ctx, model.ClientDescriptor{
				Name:  "Acme Trading",
				Email: "owner@acme.ae",
			})
			if !assert.NoError(t, err) {
				return
			}
			mu.Lock()
			ids[result.ID] = struct{}{}
			actions[result.Action]++
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, ids, 1)
	assert.Equal(t, 1, actions[model.ResolveActionCreated])
	assert.Equal(t, callers-1, actions[model.ResolveActionUpdated])
}
