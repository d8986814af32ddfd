package service

import (
	"context"
	"time"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/biblioteca-service/internal/errs"
	"github.com/Astemirdum/biblioteca-service/internal/repository"
	"github.com/Astemirdum/biblioteca-service/pkg/auth"
	cb "github.com/Astemirdum/biblioteca-service/pkg/circuit_breaker"
)

type Service struct {
	log      *zap.Logger
	repo     repository.Repository
	producer sarama.SyncProducer
	breaker  cb.CircuitBreaker
}

// NewService wires the business logic. producer may be nil; activity fan-out
// is skipped then.
func NewService(repo repository.Repository, producer sarama.SyncProducer, log *zap.Logger) *Service {
	return &Service{
		log:      log,
		repo:     repo,
		producer: producer,
		breaker:  cb.New(20, 30*time.Second, 0.5, 5),
	}
}

// actorFrom resolves the authenticated actor, falling back to the system
// actor for unauthenticated operations.
func actorFrom(ctx context.Context) (string, *int) {
	if actor, ok := auth.ActorFromContext(ctx); ok {
		id := actor.ID
		return actor.Name, &id
	}
	return auth.SystemActor, nil
}

func validationErr(format string, args ...any) error {
	return errors.Wrapf(errs.ErrValidation, format, args...)
}

// parseDate accepts calendar dates in YYYY-MM-DD form.
func parseDate(s string) (time.Time, error) {
	return time.Parse(time.DateOnly, s)
}

func checkDate(field, s string) error {
	if s == "" {
		return nil
	}
	if _, err := parseDate(s); err != nil {
		return validationErr("%s must be a YYYY-MM-DD date", field)
	}
	return nil
}
