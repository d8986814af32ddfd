package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/Astemirdum/biblioteca-service/internal/model"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type Repository interface {
	CreateLoan(ctx context.Context, loan model.Loan) (model.Loan, error)
	GetLoan(ctx context.Context, id int) (model.Loan, error)
	ListLoans(ctx context.Context) ([]model.Loan, error)
	UpdateLoan(ctx context.Context, id int, req model.UpdateLoanRequest) (model.Loan, error)
	DeleteLoan(ctx context.Context, id int) error

	CreateReturn(ctx context.Context, ret model.Return) (model.Return, error)
	GetReturn(ctx context.Context, id int) (model.Return, error)
	ListReturns(ctx context.Context) ([]model.Return, error)
	UpdateReturn(ctx context.Context, ret model.Return) (model.Return, error)
	DeleteReturn(ctx context.Context, id int) error

	CreateActivity(ctx context.Context, activity model.Activity) error
	RecentActivities(ctx context.Context, limit int) ([]model.Activity, error)
	ActivitiesByType(ctx context.Context, typ model.ActivityType, limit int) ([]model.Activity, error)
	ActivitiesByUser(ctx context.Context, userID, limit int) ([]model.Activity, error)

	CreateUser(ctx context.Context, user model.User) (model.User, error)
	GetUser(ctx context.Context, id int) (model.User, error)
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	UpdateUser(ctx context.Context, id int, req model.UpdateUserRequest) (model.User, error)
	DeleteUser(ctx context.Context, id int) error

	CreateBook(ctx context.Context, book model.Book) (model.Book, error)
	GetBook(ctx context.Context, id int) (model.Book, error)
	ListBooks(ctx context.Context) ([]model.Book, error)
	UpdateBook(ctx context.Context, id int, req model.UpdateBookRequest) (model.Book, error)
	DeleteBook(ctx context.Context, id int) error

	CreateAuthor(ctx context.Context, author model.Author) (model.Author, error)
	GetAuthor(ctx context.Context, id int) (model.Author, error)
	ListAuthors(ctx context.Context) ([]model.Author, error)
	UpdateAuthor(ctx context.Context, id int, req model.UpdateAuthorRequest) (model.Author, error)
	DeleteAuthor(ctx context.Context, id int) error
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	loansTableName      = `loans`
	returnsTableName    = `returns`
	activitiesTableName = `activities`
	usersTableName      = `users`
	booksTableName      = `books`
	authorsTableName    = `authors`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
