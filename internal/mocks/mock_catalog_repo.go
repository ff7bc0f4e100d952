package mocks

import (
	"context"

	"github.com/filmtix/ticketing/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockCatalogRepo struct {
	mock.Mock
	domain.CatalogRepository
}

func (m *MockCatalogRepo) GetPremiereOverview(ctx context.Context, premiereID int64) (*domain.PremiereOverview, error) {
	args := m.Called(ctx, premiereID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PremiereOverview), args.Error(1)
}

func (m *MockCatalogRepo) GetConcessionItemsByCinema(ctx context.Context, cinemaID int64) ([]domain.ConcessionItem, error) {
	args := m.Called(ctx, cinemaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ConcessionItem), args.Error(1)
}
