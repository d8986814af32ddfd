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

const loanColumns = `id, user_name, book_title, borrow_date, return_date, status`

// CreateLoan assigns id = max existing + 1 (1 for an empty table) inside the
// insert itself, so concurrent creates cannot allocate the same id.
func (r *repository) CreateLoan(ctx context.Context, loan model.Loan) (model.Loan, error) {
	q := fmt.Sprintf(`insert into %[1]s (id, user_name, book_title, borrow_date, return_date, status)
	values ((select coalesce(max(id), 0) + 1 from %[1]s), $1, $2, $3, $4, $5)
	returning `+loanColumns, loansTableName)

	var created model.Loan
	if err := r.db.GetContext(ctx, &created, q,
		loan.UserName, loan.BookTitle, loan.BorrowDate, loan.ReturnDate, loan.Status); err != nil {
		r.log.Error("CreateLoan", zap.String("q", q), zap.Error(err))
		return model.Loan{}, err
	}
	return created, nil
}

func (r *repository) GetLoan(ctx context.Context, id int) (model.Loan, error) {
	query, args, err := qb.Select("id", "user_name", "book_title", "borrow_date", "return_date", "status").
		From(loansTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.Loan{}, err
	}
	var loan model.Loan
	if err := r.db.GetContext(ctx, &loan, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Loan{}, errs.ErrNotFound
		}
		return model.Loan{}, err
	}
	return loan, nil
}

func (r *repository) ListLoans(ctx context.Context) ([]model.Loan, error) {
	query, args, err := qb.Select("id", "user_name", "book_title", "borrow_date", "return_date", "status").
		From(loansTableName).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}
	items := make([]model.Loan, 0)
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateLoan applies only the non-nil fields. An id that matches no row is
// errs.ErrNotFound; a write that leaves values unchanged still returns the
// row and is a success.
func (r *repository) UpdateLoan(ctx context.Context, id int, req model.UpdateLoanRequest) (model.Loan, error) {
	if req.Empty() {
		return r.GetLoan(ctx, id)
	}

	b := qb.Update(loansTableName).Where(sq.Eq{"id": id})
	if req.UserName != nil {
		b = b.Set("user_name", *req.UserName)
	}
	if req.BookTitle != nil {
		b = b.Set("book_title", *req.BookTitle)
	}
	if req.BorrowDate != nil {
		b = b.Set("borrow_date", *req.BorrowDate)
	}
	if req.ReturnDate != nil {
		b = b.Set("return_date", *req.ReturnDate)
	}
	if req.Status != nil {
		b = b.Set("status", *req.Status)
	}

	query, args, err := b.Suffix("returning " + loanColumns).ToSql()
	if err != nil {
		return model.Loan{}, err
	}
	var loan model.Loan
	if err := r.db.GetContext(ctx, &loan, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Loan{}, errs.ErrNotFound
		}
		r.log.Error("UpdateLoan", zap.String("q", query), zap.Any("args", args))
		return model.Loan{}, err
	}
	return loan, nil
}

func (r *repository) DeleteLoan(ctx context.Context, id int) error {
	query, args, err := qb.Delete(loansTableName).Where(sq.Eq{"id": id}).ToSql()
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
