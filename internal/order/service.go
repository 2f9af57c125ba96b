package order

import (
	"context"
	"errors"
	"time"

	"tambar-be/internal/customer"
	"tambar-be/internal/logger"
	"tambar-be/internal/metrics"
	"tambar-be/internal/product"

	"go.uber.org/zap"
)

type Service interface {
	CreateOrder(ctx context.Context, input NewOrderInput) (*Order, error)
	GetOrders(ctx context.Context) ([]*Order, error)
	GetOrderDetail(ctx context.Context, orderID string) (*Order, error)
	UpdateOrderStatus(ctx context.Context, orderID string, status OrderStatus) (*Order, error)
}

type service struct {
	repo         Repository
	productRepo  product.Repository
	customerRepo customer.Repository
}

func NewService(repo Repository, productRepo product.Repository, customerRepo customer.Repository) Service {
	return &service{
		repo:         repo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
	}
}

func (s *service) CreateOrder(ctx context.Context, input NewOrderInput) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateOrder"),
		zap.String("customer_id", input.CustomerID),
		zap.Int("item_count", len(input.Items)),
	)

	log.Info("create order started")

	// 1. Resolve customer
	cust, err := s.customerRepo.GetByID(ctx, input.CustomerID)
	if err != nil {
		log.Warn("customer lookup failed", zap.Error(err))
		return nil, err
	}

	// 2. Resolve products
	products := make(map[string]*product.Product, len(input.Items))
	for _, req := range input.Items {
		if _, seen := products[req.ProductID]; seen {
			continue
		}
		p, err := s.productRepo.GetByID(ctx, req.ProductID)
		if err != nil {
			log.Warn("product lookup failed",
				zap.String("product_id", req.ProductID),
				zap.Error(err),
			)
			return nil, err
		}
		products[req.ProductID] = p
	}

	// 3. Price against the resolved snapshot
	o, muts, err := PriceOrder(cust, products, input)
	if err != nil {
		log.Warn("order rejected", zap.Error(err))
		recordRejection(err)
		return nil, err
	}

	log.Debug("order priced",
		zap.Float64("subtotal", o.Subtotal),
		zap.Float64("iva", o.IVA),
		zap.Float64("it", o.IT),
		zap.Float64("total", o.Total),
		zap.Int("loyalty_points", muts.Accrual.LoyaltyPoints),
	)

	// 4. Persist order + mutations atomically
	if err := s.repo.CreateOrderTx(ctx, o, muts); err != nil {
		log.Error("failed to persist order", zap.Error(err))
		recordRejection(err)
		return nil, err
	}

	if metrics.OrdersCreatedTotal != nil {
		metrics.OrdersCreatedTotal.Inc()
	}
	log.Info("order created",
		zap.String("order_id", o.ID),
		zap.Float64("total", o.Total),
	)

	return o, nil
}

func recordRejection(err error) {
	if metrics.OrdersRejectedTotal == nil {
		return
	}

	reason := "storage"
	switch {
	case errors.Is(err, ErrInsufficientStock):
		reason = "insufficient_stock"
	case errors.Is(err, ErrInvalidQuantity):
		reason = "invalid_quantity"
	case errors.Is(err, ErrEmptyOrder):
		reason = "empty_order"
	case errors.Is(err, product.ErrProductNotFound):
		reason = "product_not_found"
	case errors.Is(err, customer.ErrCustomerNotFound):
		reason = "customer_not_found"
	}
	metrics.OrdersRejectedTotal.WithLabelValues(reason).Inc()
}

func (s *service) GetOrders(ctx context.Context) ([]*Order, error) {
	return s.repo.List(ctx)
}

func (s *service) GetOrderDetail(ctx context.Context, orderID string) (*Order, error) {
	return s.repo.GetByID(ctx, orderID)
}

func (s *service) UpdateOrderStatus(ctx context.Context, orderID string, status OrderStatus) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "UpdateOrderStatus"),
		zap.String("order_id", orderID),
		zap.String("new_status", string(status)),
	)

	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := ValidateTransition(o.Status, status); err != nil {
		log.Warn("illegal status transition",
			zap.String("from", string(o.Status)),
		)
		return nil, err
	}

	var deliveredAt *time.Time
	if status == StatusDelivered {
		now := time.Now().UTC()
		deliveredAt = &now
	}

	if err := s.repo.UpdateStatus(ctx, orderID, status, deliveredAt); err != nil {
		log.Error("failed to update order status", zap.Error(err))
		return nil, err
	}

	o.Status = status
	o.DeliveredAt = deliveredAt

	log.Info("order status updated")
	return o, nil
}
