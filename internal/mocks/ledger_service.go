package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rewear/exchange/internal/service"
)

type LedgerService struct {
	mock.Mock
}

func (l *LedgerService) Apply(ctx context.Context, entry service.LedgerEntry) error {
	args := l.Called(ctx, entry)
	return args.Error(0)
}
