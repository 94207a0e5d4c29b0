package service

import (
	"context"

	"address-api/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockAddressRepository is a mock implementation of the AddressRepository interface
type MockAddressRepository struct {
	mock.Mock
}

func (m *MockAddressRepository) ListAddresses(ctx context.Context) ([]models.Address, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Address), args.Error(1)
}

func (m *MockAddressRepository) GetAddress(ctx context.Context, id int64) (*models.Address, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*models.Address), args.Error(1)
}

func (m *MockAddressRepository) CreateAddress(ctx context.Context, addr *models.Address) error {
	args := m.Called(ctx, addr)
	return args.Error(0)
}

func (m *MockAddressRepository) UpdateAddress(ctx context.Context, addr models.Address) error {
	args := m.Called(ctx, addr)
	return args.Error(0)
}

func (m *MockAddressRepository) DeleteAddress(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockProximityRecorder is a mock implementation of the ProximityRecorder interface
type MockProximityRecorder struct {
	mock.Mock
}

func (m *MockProximityRecorder) ObserveProximityQuery(scanned, matched int) {
	m.Called(scanned, matched)
}

func strPtr(s string) *string { return &s }
