package mocks

import (
	"context"

	"github.com/filmtix/ticketing/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockTicketRepo struct {
	mock.Mock
	domain.TicketRepository
}

func (m *MockTicketRepo) Create(ctx context.Context, order domain.TicketOrder) (*domain.TicketDetail, error) {
	args := m.Called(ctx, order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TicketDetail), args.Error(1)
}

func (m *MockTicketRepo) Cancel(ctx context.Context, ticketID, accountID int64) (*domain.TicketDetail, error) {
	args := m.Called(ctx, ticketID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TicketDetail), args.Error(1)
}

func (m *MockTicketRepo) GetByIdAndAccountId(ctx context.Context, ticketID, accountID int64) (*domain.TicketDetail, error) {
	args := m.Called(ctx, ticketID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TicketDetail), args.Error(1)
}

func (m *MockTicketRepo) GetSummariesByAccountId(
	ctx context.Context,
	accountID int64,
	filters domain.TicketFilters) ([]domain.TicketSummary, *domain.Metadata, error) {

	args := m.Called(ctx, accountID, filters)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]domain.TicketSummary), args.Get(1).(*domain.Metadata), args.Error(2)
}
