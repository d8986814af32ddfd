package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/Astemirdum/biblioteca-service/internal/model"
	"github.com/Astemirdum/biblioteca-service/pkg/auth"
	"github.com/Astemirdum/biblioteca-service/pkg/kafka"
)

// RecordActivity appends an audit entry and fans it out to Kafka. The fan-out
// is best-effort; the entry in the store is the authoritative record.
func (s *Service) RecordActivity(ctx context.Context, activity model.Activity) error {
	now := time.Now().UTC()
	activity.Timestamp = now
	activity.CreatedAt = now
	if activity.UserName == "" {
		activity.UserName = auth.SystemActor
	}
	if err := s.repo.CreateActivity(ctx, activity); err != nil {
		return err
	}
	s.publishActivity(activity)
	return nil
}

// logActivity is the call-site contract for audit entries: a failure is
// reported and swallowed so it never aborts the triggering operation.
func (s *Service) logActivity(ctx context.Context, activity model.Activity) {
	if err := s.RecordActivity(ctx, activity); err != nil {
		s.log.Warn("record activity",
			zap.String("type", string(activity.Type)), zap.Error(err))
	}
}

func (s *Service) publishActivity(activity model.Activity) {
	if s.producer == nil {
		return
	}
	err := s.breaker.Call(func() error {
		data, err := json.Marshal(kafka.EventActivity{
			Type:        string(activity.Type),
			Description: activity.Description,
			Metadata:    activity.Metadata,
			UserID:      activity.UserID,
			UserName:    activity.UserName,
			Timestamp:   activity.Timestamp,
		})
		if err != nil {
			return err
		}
		msg := &sarama.ProducerMessage{Topic: kafka.ActivitiesTopic, Value: sarama.ByteEncoder(data)}
		_, _, err = s.producer.SendMessage(msg)
		return err
	})
	if err != nil {
		s.log.Warn("activity fan-out", zap.Error(err))
	}
}

// IngestActivity stores an activity event arriving from the activities topic.
// No fan-out here, or consumed events would loop back to the topic.
func (s *Service) IngestActivity(ctx context.Context, event kafka.EventActivity) error {
	return s.repo.CreateActivity(ctx, model.Activity{
		Type:        model.ActivityType(event.Type),
		Description: event.Description,
		Metadata:    event.Metadata,
		UserID:      event.UserID,
		UserName:    event.UserName,
		Timestamp:   event.Timestamp,
		CreatedAt:   time.Now().UTC(),
	})
}

func (s *Service) RecentActivities(ctx context.Context, limit int) ([]model.Activity, error) {
	return s.repo.RecentActivities(ctx, limit)
}

func (s *Service) ActivitiesByType(ctx context.Context, typ model.ActivityType, limit int) ([]model.Activity, error) {
	return s.repo.ActivitiesByType(ctx, typ, limit)
}

func (s *Service) ActivitiesByUser(ctx context.Context, userID, limit int) ([]model.Activity, error) {
	return s.repo.ActivitiesByUser(ctx, userID, limit)
}
