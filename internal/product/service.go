package product

import (
	"context"
	"strings"
	"time"

	"tambar-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	List(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id string) (*Product, error)
	Create(ctx context.Context, input NewProductInput) (*Product, error)
	Update(ctx context.Context, id string, input NewProductInput) (*Product, error)
	LowStock(ctx context.Context) ([]Product, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

const defaultMinStock = 10

func validateInput(input *NewProductInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return ErrEmptyName
	}
	if input.CostPrice < 0 || input.SalePrice < 0 {
		return ErrInvalidPrice
	}
	if input.Stock < 0 {
		return ErrInvalidStock
	}
	if input.MinStock != nil && *input.MinStock < 0 {
		return ErrInvalidStock
	}
	if _, err := ParseCategory(string(input.Category)); err != nil {
		return err
	}
	return nil
}

func fromInput(input NewProductInput) *Product {
	minStock := defaultMinStock
	if input.MinStock != nil {
		minStock = *input.MinStock
	}

	return &Product{
		Name:        input.Name,
		Description: input.Description,
		CostPrice:   input.CostPrice,
		SalePrice:   input.SalePrice,
		Margin:      CalculateMargin(input.CostPrice, input.SalePrice),
		Stock:       input.Stock,
		MinStock:    minStock,
		Supplier:    input.Supplier,
		ExpiryDate:  input.ExpiryDate,
		Category:    input.Category,
		ImageURL:    input.ImageURL,
	}
}

func (s *service) List(ctx context.Context) ([]Product, error) {
	return s.repo.List(ctx)
}

func (s *service) GetByID(ctx context.Context, id string) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Create(ctx context.Context, input NewProductInput) (*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateProduct"),
	)

	if err := validateInput(&input); err != nil {
		log.Warn("invalid product input", zap.Error(err))
		return nil, err
	}

	p := fromInput(input)
	p.ID = uuid.New().String()
	p.CreatedAt = time.Now().UTC()

	if err := s.repo.Create(ctx, p); err != nil {
		log.Error("failed to create product", zap.Error(err))
		return nil, err
	}

	log.Info("product created",
		zap.String("product_id", p.ID),
		zap.String("name", p.Name),
		zap.Float64("margin", p.Margin),
	)

	return p, nil
}

func (s *service) Update(ctx context.Context, id string, input NewProductInput) (*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "UpdateProduct"),
		zap.String("product_id", id),
	)

	if err := validateInput(&input); err != nil {
		log.Warn("invalid product input", zap.Error(err))
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	p := fromInput(input)
	p.ID = existing.ID
	p.CreatedAt = existing.CreatedAt

	if err := s.repo.Update(ctx, p); err != nil {
		log.Error("failed to update product", zap.Error(err))
		return nil, err
	}

	log.Info("product updated", zap.String("name", p.Name))
	return p, nil
}

func (s *service) LowStock(ctx context.Context) ([]Product, error) {
	return s.repo.LowStock(ctx)
}
