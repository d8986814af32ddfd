package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/Astemirdum/biblioteca-service/internal/model"
)

var activityColumns = []string{"id", "type", "description", "metadata", "user_id", "user_name", "timestamp", "created_at"}

func (r *repository) CreateActivity(ctx context.Context, activity model.Activity) error {
	if activity.ID == uuid.Nil {
		activity.ID = uuid.New()
	}
	query, args, err := qb.Insert(activitiesTableName).
		Columns(activityColumns...).
		Values(activity.ID, activity.Type, activity.Description, activity.Metadata,
			activity.UserID, activity.UserName, activity.Timestamp, activity.CreatedAt).
		ToSql()
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, query, args...)
	return err
}

func (r *repository) RecentActivities(ctx context.Context, limit int) ([]model.Activity, error) {
	return r.listActivities(ctx, sq.Eq{}, limit)
}

func (r *repository) ActivitiesByType(ctx context.Context, typ model.ActivityType, limit int) ([]model.Activity, error) {
	return r.listActivities(ctx, sq.Eq{"type": typ}, limit)
}

func (r *repository) ActivitiesByUser(ctx context.Context, userID, limit int) ([]model.Activity, error) {
	return r.listActivities(ctx, sq.Eq{"user_id": userID}, limit)
}

func (r *repository) listActivities(ctx context.Context, where sq.Eq, limit int) ([]model.Activity, error) {
	b := qb.Select(activityColumns...).
		From(activitiesTableName).
		OrderBy("timestamp desc").
		Limit(uint64(limit))
	if len(where) > 0 {
		b = b.Where(where)
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	items := make([]model.Activity, 0)
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}
