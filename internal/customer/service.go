package customer

import (
	"context"
	"strings"
	"time"

	"tambar-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	List(ctx context.Context) ([]Customer, error)
	GetByID(ctx context.Context, id string) (*Customer, error)
	Create(ctx context.Context, input NewCustomerInput) (*Customer, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]Customer, error) {
	return s.repo.List(ctx)
}

func (s *service) GetByID(ctx context.Context, id string) (*Customer, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Create(ctx context.Context, input NewCustomerInput) (*Customer, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateCustomer"),
	)

	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrEmptyName
	}
	if strings.TrimSpace(input.Phone) == "" {
		return nil, ErrEmptyPhone
	}

	c := &Customer{
		ID:                uuid.New().String(),
		Name:              input.Name,
		Phone:             input.Phone,
		Email:             input.Email,
		Address:           input.Address,
		PreferredProducts: []string{},
		CreatedAt:         time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, c); err != nil {
		log.Error("failed to create customer", zap.Error(err))
		return nil, err
	}

	log.Info("customer created",
		zap.String("customer_id", c.ID),
		zap.String("phone", c.Phone),
	)

	return c, nil
}
