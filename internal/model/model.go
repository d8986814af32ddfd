package model

import (
	"time"

	"github.com/google/uuid"
)

type LoanStatus string

const (
	StatusBorrowed LoanStatus = "borrowed"
	StatusReturned LoanStatus = "returned"
)

// Condition grades the physical state of a returned copy.
type Condition string

const (
	ConditionExcellent Condition = "Excelente"
	ConditionVeryGood  Condition = "Muy Bueno"
	ConditionGood      Condition = "Bueno"
	ConditionFair      Condition = "Regular"
	ConditionBad       Condition = "Malo"
	ConditionDamaged   Condition = "Dañado"
)

// DailyFineRate is charged per whole day of lateness, in currency-agnostic
// integer units.
const DailyFineRate = 1500

// Loan is a book lent to a user. Borrower and book are matched by display
// name, as the catalog predates stable references. Dates are calendar days
// in YYYY-MM-DD form; an empty ReturnDate means no due date was recorded.
type Loan struct {
	ID         int        `json:"id" db:"id"`
	UserName   string     `json:"userName" db:"user_name"`
	BookTitle  string     `json:"bookTitle" db:"book_title"`
	BorrowDate string     `json:"borrowDate" db:"borrow_date"`
	ReturnDate string     `json:"returnDate" db:"return_date"`
	Status     LoanStatus `json:"status" db:"status"`
}

// Open reports whether the loan has not been closed yet.
func (l Loan) Open() bool {
	return l.Status == StatusBorrowed || l.ReturnDate == ""
}

// Return records the physical act of giving a book back. IsLate, DaysLate
// and Fine are derived at write time and stored materialized.
type Return struct {
	ID               int       `json:"id" db:"id"`
	UserName         string    `json:"userName" db:"user_name"`
	BookTitle        string    `json:"bookTitle" db:"book_title"`
	BorrowDate       string    `json:"borrowDate" db:"borrow_date"`
	ReturnDate       string    `json:"returnDate" db:"return_date"`
	ActualReturnDate string    `json:"actualReturnDate" db:"actual_return_date"`
	Condition        Condition `json:"condition" db:"condition"`
	Notes            string    `json:"notes" db:"notes"`
	Fine             int64     `json:"fine" db:"fine"`
	IsLate           bool      `json:"isLate" db:"is_late"`
	DaysLate         int       `json:"daysLate" db:"days_late"`
}

type ActivityType string

const (
	ActivityUserRegistered ActivityType = "user_registered"
	ActivityBookAdded      ActivityType = "book_added"
	ActivityLoanCreated    ActivityType = "loan_created"
	ActivityLoanReturned   ActivityType = "loan_returned"
	ActivityAuthorAdded    ActivityType = "author_added"
)

// Activity is an append-only audit entry for a significant system event.
type Activity struct {
	ID          uuid.UUID    `json:"id" db:"id"`
	Type        ActivityType `json:"type" db:"type"`
	Description string       `json:"description" db:"description"`
	Metadata    Metadata     `json:"metadata" db:"metadata"`
	UserID      *int         `json:"userId" db:"user_id"`
	UserName    string       `json:"userName" db:"user_name"`
	Timestamp   time.Time    `json:"timestamp" db:"timestamp"`
	CreatedAt   time.Time    `json:"createdAt" db:"created_at"`
}

type User struct {
	ID        int    `json:"id" db:"id"`
	Name      string `json:"name" db:"name"`
	LastName  string `json:"lastName" db:"last_name"`
	Phone     string `json:"phone" db:"phone"`
	Email     string `json:"email" db:"email"`
	BirthDate string `json:"birthDate" db:"birth_date"`
	Gender    string `json:"gender" db:"gender"`
	Role      string `json:"role" db:"role"`
	Password  string `json:"-" db:"password"`
	CreatedAt string `json:"createdAt" db:"created_at"`
}

type Book struct {
	ID              int    `json:"id" db:"id"`
	Title           string `json:"title" db:"title"`
	Author          string `json:"author" db:"author"`
	Year            int    `json:"year" db:"year"`
	Publisher       string `json:"publisher" db:"publisher"`
	ISBN            string `json:"isbn" db:"isbn"`
	Pages           int    `json:"pages" db:"pages"`
	Language        string `json:"language" db:"language"`
	PublicationDate string `json:"publicationDate" db:"publication_date"`
	Category        string `json:"category" db:"category"`
	Description     string `json:"description" db:"description"`
	AvailableCopies int    `json:"availableCopies" db:"available_copies"`
	Image           string `json:"image" db:"image"`
}

type Author struct {
	ID             int        `json:"id" db:"id"`
	Name           string     `json:"name" db:"name"`
	LastName       string     `json:"lastName" db:"last_name"`
	Bio            string     `json:"bio" db:"bio"`
	BirthDate      string     `json:"birthDate" db:"birth_date"`
	Nationality    string     `json:"nationality" db:"nationality"`
	Awards         StringList `json:"awards" db:"awards"`
	Website        string     `json:"website" db:"website"`
	PublishedBooks int        `json:"publishedBooks" db:"published_books"`
	Image          string     `json:"image" db:"image"`
	Books          StringList `json:"books" db:"books"`
	Genres         StringList `json:"genres" db:"genres"`
}
