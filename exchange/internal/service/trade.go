package service

import (
	"context"

	"github.com/Astemirdum/book-exchange/exchange/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TradeService struct {
	log    *zap.Logger
	trades TradeRepository
}

func NewTradeService(trades TradeRepository, log *zap.Logger) *TradeService {
	return &TradeService{
		log:    log.Named("trades"),
		trades: trades,
	}
}

func (s *TradeService) FindPossibleTrades(ctx context.Context, userID uuid.UUID) ([]model.PossibleTrade, error) {
	trades, err := s.trades.FindPossibleTrades(ctx, userID)
	if err != nil {
		return nil, err
	}
	s.log.Debug("possible trades", zap.Stringer("user_id", userID), zap.Int("count", len(trades)))
	return trades, nil
}
