package mocks

import (
	"context"

	"github.com/filmtix/ticketing/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockAccountRepo struct {
	mock.Mock
	domain.AccountRepository
}

func (m *MockAccountRepo) GetById(ctx context.Context, id int64) (*domain.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
