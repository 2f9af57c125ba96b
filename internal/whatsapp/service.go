package whatsapp

import (
	"context"
	"time"

	"tambar-be/internal/logger"
	"tambar-be/internal/metrics"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const recentMessageLimit = 50

type Service interface {
	// Process interprets an incoming text, stores the interaction and
	// returns the stored record.
	Process(ctx context.Context, phone, message string) (*Message, error)

	// Send records an outgoing message.
	Send(ctx context.Context, phone, message string) (*Message, error)

	ListMessages(ctx context.Context) ([]Message, error)
}

type service struct {
	repo        Repository
	interpreter *Interpreter
}

func NewService(repo Repository, interpreter *Interpreter) Service {
	return &service{repo: repo, interpreter: interpreter}
}

func (s *service) Process(ctx context.Context, phone, message string) (*Message, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "ProcessMessage"),
		zap.String("phone", phone),
	)

	response, command, err := s.interpreter.Interpret(ctx, message)
	if err != nil {
		log.Error("failed to interpret message", zap.Error(err))
		return nil, err
	}

	m := &Message{
		ID:         uuid.New().String(),
		Phone:      phone,
		Message:    message,
		IsIncoming: true,
		Response:   &response,
		Processed:  true,
		CreatedAt:  time.Now().UTC(),
	}
	if command != "" {
		m.Command = &command
	}

	if err := s.repo.Insert(ctx, m); err != nil {
		log.Error("failed to store message", zap.Error(err))
		return nil, err
	}

	metrics.RecordCommand(command)
	log.Info("message processed", zap.String("command", command))

	return m, nil
}

func (s *service) Send(ctx context.Context, phone, message string) (*Message, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "SendMessage"),
		zap.String("phone", phone),
	)

	m := &Message{
		ID:         uuid.New().String(),
		Phone:      phone,
		Message:    message,
		IsIncoming: false,
		Processed:  true,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, m); err != nil {
		log.Error("failed to store outgoing message", zap.Error(err))
		return nil, err
	}

	log.Info("message sent")
	return m, nil
}

func (s *service) ListMessages(ctx context.Context) ([]Message, error) {
	return s.repo.ListRecent(ctx, recentMessageLimit)
}
