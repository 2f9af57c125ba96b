package social

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"tambar-be/internal/metrics"
)

type Repository interface {
	Insert(ctx context.Context, p *Post) error
	ListRecent(ctx context.Context, limit int) ([]Post, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Insert(ctx context.Context, p *Post) error {
	defer metrics.TrackDBOperation("post_insert")(time.Now())

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO social_media_posts (
			id, platform, content, image_url, product_id,
			likes, shares, comments, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		p.ID, p.Platform, p.Content, p.ImageURL, p.ProductID,
		p.Engagement.Likes, p.Engagement.Shares, p.Engagement.Comments, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert post: %w", err)
	}

	return nil
}

func (r *repository) ListRecent(ctx context.Context, limit int) ([]Post, error) {
	defer metrics.TrackDBOperation("post_list")(time.Now())

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, platform, content, image_url, product_id,
		       likes, shares, comments, created_at
		FROM social_media_posts
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	var posts []Post
	for rows.Next() {
		var p Post
		if err := rows.Scan(
			&p.ID, &p.Platform, &p.Content, &p.ImageURL, &p.ProductID,
			&p.Engagement.Likes, &p.Engagement.Shares, &p.Engagement.Comments, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan post row: %w", err)
		}
		posts = append(posts, p)
	}

	return posts, rows.Err()
}
