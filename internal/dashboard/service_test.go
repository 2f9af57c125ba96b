package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Counts(ctx context.Context) (int, int, int, int, int, int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Int(1), args.Int(2), args.Int(3), args.Int(4), args.Int(5), args.Error(6)
}

func (m *MockRepository) Revenue(ctx context.Context, since time.Time) (float64, error) {
	args := m.Called(ctx, since)
	return args.Get(0).(float64), args.Error(1)
}

func TestService_GetStats(t *testing.T) {
	ctx := context.Background()

	t.Run("Aggregates counts and revenue windows", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		fixed := time.Date(2025, 6, 15, 18, 30, 0, 0, time.Local)
		timeNow = func() time.Time { return fixed }
		defer func() { timeNow = time.Now }()

		midnight := time.Date(2025, 6, 15, 0, 0, 0, 0, time.Local)
		monthStart := time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local)

		repo.On("Counts", ctx).Return(8, 3, 20, 5, 4, 12, nil)
		repo.On("Revenue", ctx, midnight).Return(250.5, nil)
		repo.On("Revenue", ctx, monthStart).Return(4800.0, nil)

		stats, err := svc.GetStats(ctx)
		require.NoError(t, err)

		assert.Equal(t, 8, stats.TotalProducts)
		assert.Equal(t, 3, stats.LowStockAlerts)
		assert.Equal(t, 20, stats.TotalOrders)
		assert.Equal(t, 5, stats.PendingOrders)
		assert.InDelta(t, 250.5, stats.TodaySales, 1e-9)
		assert.InDelta(t, 4800.0, stats.MonthlySales, 1e-9)
		assert.Equal(t, 4, stats.TotalCustomers)
		assert.Equal(t, 12, stats.WhatsAppMessages)
		repo.AssertExpectations(t)
	})

	t.Run("Counts failure propagates", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("Counts", ctx).Return(0, 0, 0, 0, 0, 0, errors.New("db down"))

		_, err := svc.GetStats(ctx)
		assert.Error(t, err)
	})
}
