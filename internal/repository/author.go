package repository

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/Astemirdum/biblioteca-service/internal/errs"
	"github.com/Astemirdum/biblioteca-service/internal/model"
)

const authorColumns = `id, name, last_name, bio, birth_date, nationality, awards, website, published_books, image, books, genres`

func (r *repository) CreateAuthor(ctx context.Context, author model.Author) (model.Author, error) {
	q := fmt.Sprintf(`insert into %[1]s
	(id, name, last_name, bio, birth_date, nationality, awards, website, published_books, image, books, genres)
	values ((select coalesce(max(id), 0) + 1 from %[1]s), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	returning `+authorColumns, authorsTableName)

	var created model.Author
	if err := r.db.GetContext(ctx, &created, q,
		author.Name, author.LastName, author.Bio, author.BirthDate, author.Nationality,
		author.Awards, author.Website, author.PublishedBooks, author.Image,
		author.Books, author.Genres); err != nil {
		return model.Author{}, err
	}
	return created, nil
}

func (r *repository) GetAuthor(ctx context.Context, id int) (model.Author, error) {
	q := fmt.Sprintf(`select %s from %s where id = $1`, authorColumns, authorsTableName)
	var author model.Author
	if err := r.db.GetContext(ctx, &author, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Author{}, errs.ErrNotFound
		}
		return model.Author{}, err
	}
	return author, nil
}

func (r *repository) ListAuthors(ctx context.Context) ([]model.Author, error) {
	q := fmt.Sprintf(`select %s from %s order by id`, authorColumns, authorsTableName)
	items := make([]model.Author, 0)
	if err := r.db.SelectContext(ctx, &items, q); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) UpdateAuthor(ctx context.Context, id int, req model.UpdateAuthorRequest) (model.Author, error) {
	b := qb.Update(authorsTableName).Where(sq.Eq{"id": id})
	set := false
	if req.Name != nil {
		b, set = b.Set("name", *req.Name), true
	}
	if req.LastName != nil {
		b, set = b.Set("last_name", *req.LastName), true
	}
	if req.Bio != nil {
		b, set = b.Set("bio", *req.Bio), true
	}
	if req.BirthDate != nil {
		b, set = b.Set("birth_date", *req.BirthDate), true
	}
	if req.Nationality != nil {
		b, set = b.Set("nationality", *req.Nationality), true
	}
	if req.Awards != nil {
		b, set = b.Set("awards", *req.Awards), true
	}
	if req.Website != nil {
		b, set = b.Set("website", *req.Website), true
	}
	if req.PublishedBooks != nil {
		b, set = b.Set("published_books", *req.PublishedBooks), true
	}
	if req.Image != nil {
		b, set = b.Set("image", *req.Image), true
	}
	if req.Books != nil {
		b, set = b.Set("books", *req.Books), true
	}
	if req.Genres != nil {
		b, set = b.Set("genres", *req.Genres), true
	}
	if !set {
		return r.GetAuthor(ctx, id)
	}

	query, args, err := b.Suffix("returning " + authorColumns).ToSql()
	if err != nil {
		return model.Author{}, err
	}
	var author model.Author
	if err := r.db.GetContext(ctx, &author, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Author{}, errs.ErrNotFound
		}
		return model.Author{}, err
	}
	return author, nil
}

func (r *repository) DeleteAuthor(ctx context.Context, id int) error {
	query, args, err := qb.Delete(authorsTableName).Where(sq.Eq{"id": id}).ToSql()
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
