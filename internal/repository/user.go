package repository

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"

	"github.com/Astemirdum/biblioteca-service/internal/errs"
	"github.com/Astemirdum/biblioteca-service/internal/model"
)

const userColumns = `id, name, last_name, phone, email, birth_date, gender, role, password, created_at`

func (r *repository) CreateUser(ctx context.Context, user model.User) (model.User, error) {
	q := fmt.Sprintf(`insert into %[1]s
	(id, name, last_name, phone, email, birth_date, gender, role, password, created_at)
	values ((select coalesce(max(id), 0) + 1 from %[1]s), $1, $2, $3, $4, $5, $6, $7, $8, $9)
	returning `+userColumns, usersTableName)

	var created model.User
	err := r.db.GetContext(ctx, &created, q,
		user.Name, user.LastName, user.Phone, user.Email, user.BirthDate,
		user.Gender, user.Role, user.Password, user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return model.User{}, errs.ErrConflict
		}
		return model.User{}, err
	}
	return created, nil
}

func (r *repository) GetUser(ctx context.Context, id int) (model.User, error) {
	return r.getUser(ctx, sq.Eq{"id": id})
}

func (r *repository) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	return r.getUser(ctx, sq.Eq{"email": email})
}

func (r *repository) getUser(ctx context.Context, where sq.Eq) (model.User, error) {
	query, args, err := qb.Select("id", "name", "last_name", "phone", "email", "birth_date", "gender", "role", "password", "created_at").
		From(usersTableName).
		Where(where).
		ToSql()
	if err != nil {
		return model.User{}, err
	}
	var user model.User
	if err := r.db.GetContext(ctx, &user, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, errs.ErrNotFound
		}
		return model.User{}, err
	}
	return user, nil
}

func (r *repository) ListUsers(ctx context.Context) ([]model.User, error) {
	q := fmt.Sprintf(`select %s from %s order by id`, userColumns, usersTableName)
	items := make([]model.User, 0)
	if err := r.db.SelectContext(ctx, &items, q); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) UpdateUser(ctx context.Context, id int, req model.UpdateUserRequest) (model.User, error) {
	b := qb.Update(usersTableName).Where(sq.Eq{"id": id})
	set := false
	if req.Name != nil {
		b, set = b.Set("name", *req.Name), true
	}
	if req.LastName != nil {
		b, set = b.Set("last_name", *req.LastName), true
	}
	if req.Phone != nil {
		b, set = b.Set("phone", *req.Phone), true
	}
	if req.BirthDate != nil {
		b, set = b.Set("birth_date", *req.BirthDate), true
	}
	if req.Gender != nil {
		b, set = b.Set("gender", *req.Gender), true
	}
	if req.Role != nil {
		b, set = b.Set("role", *req.Role), true
	}
	if !set {
		return r.GetUser(ctx, id)
	}

	query, args, err := b.Suffix("returning " + userColumns).ToSql()
	if err != nil {
		return model.User{}, err
	}
	var user model.User
	if err := r.db.GetContext(ctx, &user, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, errs.ErrNotFound
		}
		return model.User{}, err
	}
	return user, nil
}

func (r *repository) DeleteUser(ctx context.Context, id int) error {
	query, args, err := qb.Delete(usersTableName).Where(sq.Eq{"id": id}).ToSql()
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
