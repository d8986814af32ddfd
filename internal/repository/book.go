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

const bookColumns = `id, title, author, year, publisher, isbn, pages, language, publication_date, category, description, available_copies, image`

func (r *repository) CreateBook(ctx context.Context, book model.Book) (model.Book, error) {
	q := fmt.Sprintf(`insert into %[1]s
	(id, title, author, year, publisher, isbn, pages, language, publication_date, category, description, available_copies, image)
	values ((select coalesce(max(id), 0) + 1 from %[1]s), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	returning `+bookColumns, booksTableName)

	var created model.Book
	if err := r.db.GetContext(ctx, &created, q,
		book.Title, book.Author, book.Year, book.Publisher, book.ISBN, book.Pages,
		book.Language, book.PublicationDate, book.Category, book.Description,
		book.AvailableCopies, book.Image); err != nil {
		return model.Book{}, err
	}
	return created, nil
}

func (r *repository) GetBook(ctx context.Context, id int) (model.Book, error) {
	q := fmt.Sprintf(`select %s from %s where id = $1`, bookColumns, booksTableName)
	var book model.Book
	if err := r.db.GetContext(ctx, &book, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		return model.Book{}, err
	}
	return book, nil
}

func (r *repository) ListBooks(ctx context.Context) ([]model.Book, error) {
	q := fmt.Sprintf(`select %s from %s order by id`, bookColumns, booksTableName)
	items := make([]model.Book, 0)
	if err := r.db.SelectContext(ctx, &items, q); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) UpdateBook(ctx context.Context, id int, req model.UpdateBookRequest) (model.Book, error) {
	b := qb.Update(booksTableName).Where(sq.Eq{"id": id})
	set := false
	if req.Title != nil {
		b, set = b.Set("title", *req.Title), true
	}
	if req.Author != nil {
		b, set = b.Set("author", *req.Author), true
	}
	if req.Year != nil {
		b, set = b.Set("year", *req.Year), true
	}
	if req.Publisher != nil {
		b, set = b.Set("publisher", *req.Publisher), true
	}
	if req.ISBN != nil {
		b, set = b.Set("isbn", *req.ISBN), true
	}
	if req.Pages != nil {
		b, set = b.Set("pages", *req.Pages), true
	}
	if req.Language != nil {
		b, set = b.Set("language", *req.Language), true
	}
	if req.PublicationDate != nil {
		b, set = b.Set("publication_date", *req.PublicationDate), true
	}
	if req.Category != nil {
		b, set = b.Set("category", *req.Category), true
	}
	if req.Description != nil {
		b, set = b.Set("description", *req.Description), true
	}
	if req.AvailableCopies != nil {
		b, set = b.Set("available_copies", *req.AvailableCopies), true
	}
	if req.Image != nil {
		b, set = b.Set("image", *req.Image), true
	}
	if !set {
		return r.GetBook(ctx, id)
	}

	query, args, err := b.Suffix("returning " + bookColumns).ToSql()
	if err != nil {
		return model.Book{}, err
	}
	var book model.Book
	if err := r.db.GetContext(ctx, &book, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		return model.Book{}, err
	}
	return book, nil
}

func (r *repository) DeleteBook(ctx context.Context, id int) error {
	query, args, err := qb.Delete(booksTableName).Where(sq.Eq{"id": id}).ToSql()
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
