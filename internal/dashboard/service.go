package dashboard

import (
	"context"
	"time"

	"tambar-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	GetStats(ctx context.Context) (*Stats, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// overridable in tests
var timeNow = time.Now

func (s *service) GetStats(ctx context.Context) (*Stats, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "GetStats"),
	)

	products, lowStock, orders, pending, customers, messages, err := s.repo.Counts(ctx)
	if err != nil {
		log.Error("failed to load dashboard counts", zap.Error(err))
		return nil, err
	}

	now := timeNow()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	todaySales, err := s.repo.Revenue(ctx, midnight)
	if err != nil {
		log.Error("failed to load today's revenue", zap.Error(err))
		return nil, err
	}

	monthlySales, err := s.repo.Revenue(ctx, monthStart)
	if err != nil {
		log.Error("failed to load monthly revenue", zap.Error(err))
		return nil, err
	}

	return &Stats{
		TotalProducts:    products,
		LowStockAlerts:   lowStock,
		TotalOrders:      orders,
		PendingOrders:    pending,
		TodaySales:       todaySales,
		MonthlySales:     monthlySales,
		TotalCustomers:   customers,
		WhatsAppMessages: messages,
	}, nil
}
