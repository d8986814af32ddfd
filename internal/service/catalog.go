package service

import (
	"context"
	"strings"

	"github.com/Astemirdum/biblioteca-service/internal/model"
)

// Catalog: books and authors. Creates log their activity best-effort, the
// rest is plain CRUD over the repository.

func (s *Service) CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error) {
	book, err := s.repo.CreateBook(ctx, model.Book{
		Title:           req.Title,
		Author:          req.Author,
		Year:            req.Year,
		Publisher:       req.Publisher,
		ISBN:            req.ISBN,
		Pages:           req.Pages,
		Language:        req.Language,
		PublicationDate: req.PublicationDate,
		Category:        req.Category,
		Description:     req.Description,
		AvailableCopies: req.AvailableCopies,
		Image:           req.Image,
	})
	if err != nil {
		return model.Book{}, err
	}
	actorName, actorID := actorFrom(ctx)
	s.logActivity(ctx, model.BookAddedActivity(book.Title, book.Author, actorName, actorID))
	return book, nil
}

func (s *Service) GetBook(ctx context.Context, id int) (model.Book, error) {
	return s.repo.GetBook(ctx, id)
}

func (s *Service) ListBooks(ctx context.Context) ([]model.Book, error) {
	return s.repo.ListBooks(ctx)
}

func (s *Service) UpdateBook(ctx context.Context, id int, req model.UpdateBookRequest) (model.Book, error) {
	return s.repo.UpdateBook(ctx, id, req)
}

func (s *Service) DeleteBook(ctx context.Context, id int) error {
	return s.repo.DeleteBook(ctx, id)
}

func (s *Service) CreateAuthor(ctx context.Context, req model.CreateAuthorRequest) (model.Author, error) {
	author, err := s.repo.CreateAuthor(ctx, model.Author{
		Name:           req.Name,
		LastName:       req.LastName,
		Bio:            req.Bio,
		BirthDate:      req.BirthDate,
		Nationality:    req.Nationality,
		Awards:         req.Awards,
		Website:        req.Website,
		PublishedBooks: req.PublishedBooks,
		Image:          req.Image,
		Books:          req.Books,
		Genres:         req.Genres,
	})
	if err != nil {
		return model.Author{}, err
	}
	actorName, actorID := actorFrom(ctx)
	fullName := strings.TrimSpace(author.Name + " " + author.LastName)
	s.logActivity(ctx, model.AuthorAddedActivity(fullName, actorName, actorID))
	return author, nil
}

func (s *Service) GetAuthor(ctx context.Context, id int) (model.Author, error) {
	return s.repo.GetAuthor(ctx, id)
}

func (s *Service) ListAuthors(ctx context.Context) ([]model.Author, error) {
	return s.repo.ListAuthors(ctx)
}

func (s *Service) UpdateAuthor(ctx context.Context, id int, req model.UpdateAuthorRequest) (model.Author, error) {
	return s.repo.UpdateAuthor(ctx, id, req)
}

func (s *Service) DeleteAuthor(ctx context.Context, id int) error {
	return s.repo.DeleteAuthor(ctx, id)
}

// Users. Creation happens through Register only.

func (s *Service) GetUser(ctx context.Context, id int) (model.User, error) {
	return s.repo.GetUser(ctx, id)
}

func (s *Service) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.repo.ListUsers(ctx)
}

func (s *Service) UpdateUser(ctx context.Context, id int, req model.UpdateUserRequest) (model.User, error) {
	return s.repo.UpdateUser(ctx, id, req)
}

func (s *Service) DeleteUser(ctx context.Context, id int) error {
	return s.repo.DeleteUser(ctx, id)
}
