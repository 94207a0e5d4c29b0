package service

import (
	"context"
	"sort"
	"sync"
	"testing"

	"address-api/internal/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryStore is a map-backed AddressRepository used to exercise the
// services together without a database.
type memoryStore struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]models.Address
}

func newMemoryStore() *memoryStore {
	return &memoryStore{rows: map[int64]models.Address{}}
}

func (s *memoryStore) ListAddresses(_ context.Context) ([]models.Address, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Address, 0, len(s.rows))
	for _, addr := range s.rows {
		out = append(out, addr)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *memoryStore) GetAddress(_ context.Context, id int64) (*models.Address, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	addr, ok := s.rows[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &addr, nil
}

func (s *memoryStore) CreateAddress(_ context.Context, addr *models.Address) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	addr.ID = s.nextID
	s.rows[addr.ID] = *addr
	return nil
}

func (s *memoryStore) UpdateAddress(_ context.Context, addr models.Address) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[addr.ID]; !ok {
		return models.ErrNotFound
	}
	s.rows[addr.ID] = addr
	return nil
}

func (s *memoryStore) DeleteAddress(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[id]; !ok {
		return models.ErrNotFound
	}
	delete(s.rows, id)
	return nil
}

type nopRecorder struct{}

func (nopRecorder) ObserveProximityQuery(int, int) {}

func TestServices_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore()
	addresses := NewAddressService(store, zerolog.Nop())
	proximity := NewProximityService(store, nopRecorder{}, zerolog.Nop())

	created, err := addresses.CreateAddress(ctx, models.Address{
		Latitude: 1.5, Longitude: 1.35, Name: "Barber shop", Description: strPtr("Barber shop for men"),
	})
	require.NoError(t, err)
	_, err = addresses.CreateAddress(ctx, models.Address{Latitude: 1.5, Longitude: 50, Name: "Hotel Grand"})
	require.NoError(t, err)

	_, err = addresses.CreateAddress(ctx, models.Address{Latitude: 91, Longitude: 1.3145, Name: "Nowhere"})
	require.ErrorIs(t, err, models.ErrValidation)

	all, err := addresses.ListAddresses(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)

	count := 0
	for _, addr := range all {
		if addr.Name == "Barber shop" && addr.Latitude == 1.5 && addr.Longitude == 1.35 {
			count++
			assert.Equal(t, *created, addr)
		}
	}
	assert.Equal(t, 1, count)

	near, err := proximity.FindWithin(ctx, models.Coordinate{Latitude: 1.5, Longitude: 1.3}, 30)
	require.NoError(t, err)
	assert.Equal(t, []models.Address{*created}, near)

	before, err := addresses.ListAddresses(ctx)
	require.NoError(t, err)
	_, err = addresses.UpdateAddress(ctx, models.AddressUpdate{ID: 1111, NewName: models.Some("New store")})
	require.ErrorIs(t, err, models.ErrNotFound)
	after, err := addresses.ListAddresses(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	require.ErrorIs(t, addresses.DeleteAddress(ctx, 11111), models.ErrNotFound)

	_, err = addresses.UpdateAddress(ctx, models.AddressUpdate{ID: created.ID, NewLatitude: models.Some(40.0)})
	require.NoError(t, err)
	near, err = proximity.FindWithin(ctx, models.Coordinate{Latitude: 1.5, Longitude: 1.3}, 30)
	require.NoError(t, err)
	assert.Empty(t, near)

	require.NoError(t, addresses.DeleteAddress(ctx, created.ID))
	all, err = addresses.ListAddresses(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
