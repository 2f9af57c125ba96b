package product

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// --- Mocks ---

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context) ([]Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Product), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id string) (*Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockRepository) FindByName(ctx context.Context, fragment string) (*Product, error) {
	args := m.Called(ctx, fragment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, p *Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockRepository) Update(ctx context.Context, p *Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockRepository) LowStock(ctx context.Context) ([]Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Product), args.Error(1)
}

// --- Tests ---

func validInput() NewProductInput {
	return NewProductInput{
		Name:      "Cerveza Pilsener 330ml",
		CostPrice: 3.50,
		SalePrice: 6.00,
		Stock:     48,
		Category:  CategoryBeers,
	}
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success computes margin and defaults min stock", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("Create", ctx, mock.AnythingOfType("*product.Product")).Return(nil)

		p, err := svc.Create(ctx, validInput())

		assert.NoError(t, err)
		assert.NotEmpty(t, p.ID)
		assert.InDelta(t, 71.43, p.Margin, 0.01)
		assert.Equal(t, defaultMinStock, p.MinStock)
		assert.False(t, p.CreatedAt.IsZero())
		repo.AssertExpectations(t)
	})

	t.Run("Empty name rejected", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		input := validInput()
		input.Name = "  "

		_, err := svc.Create(ctx, input)
		assert.ErrorIs(t, err, ErrEmptyName)
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("Negative price rejected", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		input := validInput()
		input.SalePrice = -1

		_, err := svc.Create(ctx, input)
		assert.ErrorIs(t, err, ErrInvalidPrice)
	})

	t.Run("Negative stock rejected", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		input := validInput()
		input.Stock = -1

		_, err := svc.Create(ctx, input)
		assert.ErrorIs(t, err, ErrInvalidStock)
	})

	t.Run("Unknown category rejected", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		input := validInput()
		input.Category = "gaseosas"

		_, err := svc.Create(ctx, input)
		assert.ErrorIs(t, err, ErrInvalidCategory)
	})

	t.Run("Repository failure propagates", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("Create", ctx, mock.Anything).Return(errors.New("db down"))

		_, err := svc.Create(ctx, validInput())
		assert.Error(t, err)
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("Success keeps id and recomputes margin", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		existing := &Product{ID: "p1", Name: "Old"}
		repo.On("GetByID", ctx, "p1").Return(existing, nil)
		repo.On("Update", ctx, mock.MatchedBy(func(p *Product) bool {
			return p.ID == "p1"
		})).Return(nil)

		input := validInput()
		input.CostPrice = 8.0
		input.SalePrice = 12.0

		p, err := svc.Update(ctx, "p1", input)

		assert.NoError(t, err)
		assert.Equal(t, "p1", p.ID)
		assert.InDelta(t, 50.0, p.Margin, 1e-9)
		repo.AssertExpectations(t)
	})

	t.Run("Missing product", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetByID", ctx, "ghost").Return(nil, ErrProductNotFound)

		_, err := svc.Update(ctx, "ghost", validInput())
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestService_LowStock(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	svc := NewService(repo)

	low := []Product{{ID: "p1", Stock: 2, MinStock: 10}}
	repo.On("LowStock", ctx).Return(low, nil)

	got, err := svc.LowStock(ctx)
	assert.NoError(t, err)
	assert.Equal(t, low, got)
}
