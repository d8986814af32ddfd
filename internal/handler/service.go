package handler

import (
	"context"

	"github.com/Astemirdum/biblioteca-service/internal/model"
	"github.com/Astemirdum/biblioteca-service/internal/service"
	"github.com/Astemirdum/biblioteca-service/pkg/kafka"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type AuthService interface {
	Register(ctx context.Context, req model.RegisterRequest) (model.AuthResponse, error)
	Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error)
	Profile(ctx context.Context, userID int) (model.User, error)
}

type LoanService interface {
	CreateLoan(ctx context.Context, req model.CreateLoanRequest) (model.Loan, error)
	GetLoan(ctx context.Context, id int) (model.Loan, error)
	ListLoans(ctx context.Context) ([]model.Loan, error)
	UpdateLoan(ctx context.Context, id int, req model.UpdateLoanRequest) (model.Loan, error)
	DeleteLoan(ctx context.Context, id int) error
}

type ReturnService interface {
	CreateReturn(ctx context.Context, req model.CreateReturnRequest) (model.Return, error)
	GetReturn(ctx context.Context, id int) (model.Return, error)
	ListReturns(ctx context.Context) ([]model.Return, error)
	UpdateReturn(ctx context.Context, id int, req model.UpdateReturnRequest) (model.Return, error)
	DeleteReturn(ctx context.Context, id int) error
}

type ActivityService interface {
	RecentActivities(ctx context.Context, limit int) ([]model.Activity, error)
	ActivitiesByType(ctx context.Context, typ model.ActivityType, limit int) ([]model.Activity, error)
	ActivitiesByUser(ctx context.Context, userID, limit int) ([]model.Activity, error)
	IngestActivity(ctx context.Context, event kafka.EventActivity) error
}

type CatalogService interface {
	CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error)
	GetBook(ctx context.Context, id int) (model.Book, error)
	ListBooks(ctx context.Context) ([]model.Book, error)
	UpdateBook(ctx context.Context, id int, req model.UpdateBookRequest) (model.Book, error)
	DeleteBook(ctx context.Context, id int) error

	CreateAuthor(ctx context.Context, req model.CreateAuthorRequest) (model.Author, error)
	GetAuthor(ctx context.Context, id int) (model.Author, error)
	ListAuthors(ctx context.Context) ([]model.Author, error)
	UpdateAuthor(ctx context.Context, id int, req model.UpdateAuthorRequest) (model.Author, error)
	DeleteAuthor(ctx context.Context, id int) error

	GetUser(ctx context.Context, id int) (model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	UpdateUser(ctx context.Context, id int, req model.UpdateUserRequest) (model.User, error)
	DeleteUser(ctx context.Context, id int) error
}

// BibliotecaService is what the HTTP layer consumes.
type BibliotecaService interface {
	AuthService
	LoanService
	ReturnService
	ActivityService
	CatalogService
}

var _ BibliotecaService = (*service.Service)(nil)
