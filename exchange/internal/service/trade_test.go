package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/book-exchange/exchange/internal/errs"
	"github.com/Astemirdum/book-exchange/exchange/internal/model"
	"github.com/Astemirdum/book-exchange/exchange/internal/service"
	service_mocks "github.com/Astemirdum/book-exchange/exchange/internal/service/mocks"
)

func TestTradeService_FindPossibleTrades(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	userID := uuid.New()
	trades := []model.PossibleTrade{{OfferedBookID: uuid.New(), WantedBookID: uuid.New(), TradePartner: model.User{Name: "Bob"}}}

	c := gomock.NewController(t)
	repo := service_mocks.NewMockTradeRepository(c)
	svc := service.NewTradeService(repo, zap.NewNop())

	repo.EXPECT().FindPossibleTrades(ctx, userID).Return(trades, nil)
	got, err := svc.FindPossibleTrades(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, trades, got)

	repo.EXPECT().FindPossibleTrades(ctx, userID).Return(nil, errs.Internal(errors.New("broken pipe")))
	_, err = svc.FindPossibleTrades(ctx, userID)
	require.Equal(t, "internal storage error", errs.Message(err))
}
