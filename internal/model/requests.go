package model

// Partial updates are modeled as pointer fields: only non-nil fields are
// applied, so presence is checked by the type system rather than by probing
// an untyped payload.

type CreateLoanRequest struct {
	UserName   string     `json:"userName" validate:"required"`
	BookTitle  string     `json:"bookTitle" validate:"required"`
	BorrowDate string     `json:"borrowDate" validate:"required"`
	ReturnDate string     `json:"returnDate"`
	Status     LoanStatus `json:"status" validate:"omitempty,oneof=borrowed returned"`
}

type UpdateLoanRequest struct {
	UserName   *string     `json:"userName"`
	BookTitle  *string     `json:"bookTitle"`
	BorrowDate *string     `json:"borrowDate"`
	ReturnDate *string     `json:"returnDate"`
	Status     *LoanStatus `json:"status" validate:"omitempty,oneof=borrowed returned"`
}

// Empty reports whether the update carries no fields at all.
func (r UpdateLoanRequest) Empty() bool {
	return r.UserName == nil && r.BookTitle == nil && r.BorrowDate == nil &&
		r.ReturnDate == nil && r.Status == nil
}

type CreateReturnRequest struct {
	UserName         string    `json:"userName" validate:"required"`
	BookTitle        string    `json:"bookTitle" validate:"required"`
	BorrowDate       string    `json:"borrowDate"`
	ReturnDate       string    `json:"returnDate"`
	ActualReturnDate string    `json:"actualReturnDate" validate:"required"`
	Condition        Condition `json:"condition" validate:"omitempty,oneof=Excelente 'Muy Bueno' Bueno Regular Malo Dañado"`
	Notes            string    `json:"notes"`
	Fine             *int64    `json:"fine" validate:"omitempty,gte=0"`
}

type UpdateReturnRequest struct {
	UserName         *string    `json:"userName"`
	BookTitle        *string    `json:"bookTitle"`
	BorrowDate       *string    `json:"borrowDate"`
	ReturnDate       *string    `json:"returnDate"`
	ActualReturnDate *string    `json:"actualReturnDate"`
	Condition        *Condition `json:"condition" validate:"omitempty,oneof=Excelente 'Muy Bueno' Bueno Regular Malo Dañado"`
	Notes            *string    `json:"notes"`
	Fine             *int64     `json:"fine" validate:"omitempty,gte=0"`
}

type RegisterRequest struct {
	Name      string `json:"name" validate:"required"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Email     string `json:"email" validate:"required,email"`
	BirthDate string `json:"birthDate"`
	Gender    string `json:"gender"`
	Password  string `json:"password" validate:"required,min=6"`
	Role      string `json:"role" validate:"omitempty,oneof=reader librarian admin"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
	Token   string `json:"token"`
}

type UpdateUserRequest struct {
	Name      *string `json:"name"`
	LastName  *string `json:"lastName"`
	Phone     *string `json:"phone"`
	BirthDate *string `json:"birthDate"`
	Gender    *string `json:"gender"`
	Role      *string `json:"role" validate:"omitempty,oneof=reader librarian admin"`
}

type CreateBookRequest struct {
	Title           string `json:"title" validate:"required"`
	Author          string `json:"author" validate:"required"`
	Year            int    `json:"year"`
	Publisher       string `json:"publisher"`
	ISBN            string `json:"isbn"`
	Pages           int    `json:"pages"`
	Language        string `json:"language"`
	PublicationDate string `json:"publicationDate"`
	Category        string `json:"category"`
	Description     string `json:"description"`
	AvailableCopies int    `json:"availableCopies" validate:"gte=0"`
	Image           string `json:"image"`
}

type UpdateBookRequest struct {
	Title           *string `json:"title"`
	Author          *string `json:"author"`
	Year            *int    `json:"year"`
	Publisher       *string `json:"publisher"`
	ISBN            *string `json:"isbn"`
	Pages           *int    `json:"pages"`
	Language        *string `json:"language"`
	PublicationDate *string `json:"publicationDate"`
	Category        *string `json:"category"`
	Description     *string `json:"description"`
	AvailableCopies *int    `json:"availableCopies" validate:"omitempty,gte=0"`
	Image           *string `json:"image"`
}

type CreateAuthorRequest struct {
	Name           string     `json:"name" validate:"required"`
	LastName       string     `json:"lastName"`
	Bio            string     `json:"bio"`
	BirthDate      string     `json:"birthDate"`
	Nationality    string     `json:"nationality"`
	Awards         StringList `json:"awards"`
	Website        string     `json:"website"`
	PublishedBooks int        `json:"publishedBooks"`
	Image          string     `json:"image"`
	Books          StringList `json:"books"`
	Genres         StringList `json:"genres"`
}

type UpdateAuthorRequest struct {
	Name           *string     `json:"name"`
	LastName       *string     `json:"lastName"`
	Bio            *string     `json:"bio"`
	BirthDate      *string     `json:"birthDate"`
	Nationality    *string     `json:"nationality"`
	Awards         *StringList `json:"awards"`
	Website        *string     `json:"website"`
	PublishedBooks *int        `json:"publishedBooks"`
	Image          *string     `json:"image"`
	Books          *StringList `json:"books"`
	Genres         *StringList `json:"genres"`
}
