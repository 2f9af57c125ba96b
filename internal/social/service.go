package social

import (
	"context"
	"errors"
	"strings"
	"time"

	"tambar-be/internal/logger"
	"tambar-be/internal/metrics"
	"tambar-be/internal/product"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const recentPostLimit = 100

var ErrEmptyPlatform = errors.New("platform cannot be empty")

type Service interface {
	// CreateAd generates ad copy, with product details when a product id is
	// given, and stores the resulting post.
	CreateAd(ctx context.Context, platform string, productID *string) (*Post, error)

	ListPosts(ctx context.Context) ([]Post, error)
}

type service struct {
	repo        Repository
	productRepo product.Repository
}

func NewService(repo Repository, productRepo product.Repository) Service {
	return &service{repo: repo, productRepo: productRepo}
}

func (s *service) CreateAd(ctx context.Context, platform string, productID *string) (*Post, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateAd"),
		zap.String("platform", platform),
	)

	if strings.TrimSpace(platform) == "" {
		return nil, ErrEmptyPlatform
	}

	content := RenderGenericAd()
	var imageURL *string

	if productID != nil {
		p, err := s.productRepo.GetByID(ctx, *productID)
		if err != nil {
			log.Warn("product lookup failed", zap.String("product_id", *productID), zap.Error(err))
			return nil, err
		}
		content = RenderProductAd(p)
		imageURL = p.ImageURL
	}

	post := &Post{
		ID:        uuid.New().String(),
		Platform:  platform,
		Content:   content,
		ImageURL:  imageURL,
		ProductID: productID,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, post); err != nil {
		log.Error("failed to store post", zap.Error(err))
		return nil, err
	}

	if metrics.AdsGeneratedTotal != nil {
		metrics.AdsGeneratedTotal.WithLabelValues(platform).Inc()
	}
	log.Info("ad created", zap.String("post_id", post.ID))

	return post, nil
}

func (s *service) ListPosts(ctx context.Context) ([]Post, error) {
	return s.repo.ListRecent(ctx, recentPostLimit)
}
