package whatsapp

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"tambar-be/internal/metrics"
)

type Repository interface {
	Insert(ctx context.Context, m *Message) error
	ListRecent(ctx context.Context, limit int) ([]Message, error)
	Count(ctx context.Context) (int, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Insert(ctx context.Context, m *Message) error {
	defer metrics.TrackDBOperation("message_insert")(time.Now())

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO whatsapp_messages (
			id, phone, message, is_incoming, response, command, processed, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		m.ID, m.Phone, m.Message, m.IsIncoming, m.Response, m.Command, m.Processed, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert message: %w", err)
	}

	if metrics.MessagesProcessedTotal != nil {
		metrics.MessagesProcessedTotal.Inc()
	}
	return nil
}

func (r *repository) ListRecent(ctx context.Context, limit int) ([]Message, error) {
	defer metrics.TrackDBOperation("message_list")(time.Now())

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, phone, message, is_incoming, response, command, processed, created_at
		FROM whatsapp_messages
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer rows.Close()

	var messages []Message
	for rows.Next() {
		var m Message
		if err := rows.Scan(
			&m.ID, &m.Phone, &m.Message, &m.IsIncoming,
			&m.Response, &m.Command, &m.Processed, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan message row: %w", err)
		}
		messages = append(messages, m)
	}

	return messages, rows.Err()
}

func (r *repository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM whatsapp_messages`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count messages: %w", err)
	}
	return count, nil
}
