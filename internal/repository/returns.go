package repository

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/biblioteca-service/internal/errs"
	"github.com/Astemirdum/biblioteca-service/internal/model"
)

const returnColumns = `id, user_name, book_title, borrow_date, return_date, actual_return_date, condition, notes, fine, is_late, days_late`

func (r *repository) CreateReturn(ctx context.Context, ret model.Return) (model.Return, error) {
	q := fmt.Sprintf(`insert into %[1]s
	(id, user_name, book_title, borrow_date, return_date, actual_return_date, condition, notes, fine, is_late, days_late)
	values ((select coalesce(max(id), 0) + 1 from %[1]s), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	returning `+returnColumns, returnsTableName)

	var created model.Return
	if err := r.db.GetContext(ctx, &created, q,
		ret.UserName, ret.BookTitle, ret.BorrowDate, ret.ReturnDate, ret.ActualReturnDate,
		ret.Condition, ret.Notes, ret.Fine, ret.IsLate, ret.DaysLate); err != nil {
		r.log.Error("CreateReturn", zap.String("q", q), zap.Error(err))
		return model.Return{}, err
	}
	return created, nil
}

func (r *repository) GetReturn(ctx context.Context, id int) (model.Return, error) {
	q := fmt.Sprintf(`select %s from %s where id = $1`, returnColumns, returnsTableName)
	var ret model.Return
	if err := r.db.GetContext(ctx, &ret, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Return{}, errs.ErrNotFound
		}
		return model.Return{}, err
	}
	return ret, nil
}

func (r *repository) ListReturns(ctx context.Context) ([]model.Return, error) {
	q := fmt.Sprintf(`select %s from %s order by id`, returnColumns, returnsTableName)
	items := make([]model.Return, 0)
	if err := r.db.SelectContext(ctx, &items, q); err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateReturn writes the full merged record; the caller has already applied
// partial fields and recomputed the derived ones.
func (r *repository) UpdateReturn(ctx context.Context, ret model.Return) (model.Return, error) {
	query, args, err := qb.Update(returnsTableName).
		SetMap(map[string]interface{}{
			"user_name":          ret.UserName,
			"book_title":         ret.BookTitle,
			"borrow_date":        ret.BorrowDate,
			"return_date":        ret.ReturnDate,
			"actual_return_date": ret.ActualReturnDate,
			"condition":          ret.Condition,
			"notes":              ret.Notes,
			"fine":               ret.Fine,
			"is_late":            ret.IsLate,
			"days_late":          ret.DaysLate,
		}).
		Where(sq.Eq{"id": ret.ID}).
		Suffix("returning " + returnColumns).
		ToSql()
	if err != nil {
		return model.Return{}, err
	}
	var updated model.Return
	if err := r.db.GetContext(ctx, &updated, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Return{}, errs.ErrNotFound
		}
		r.log.Error("UpdateReturn", zap.String("q", query), zap.Any("args", args))
		return model.Return{}, err
	}
	return updated, nil
}

func (r *repository) DeleteReturn(ctx context.Context, id int) error {
	query, args, err := qb.Delete(returnsTableName).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return errs.ErrNotFound
	}
	return nil
}
