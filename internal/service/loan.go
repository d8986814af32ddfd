package service

import (
	"context"

	"github.com/Astemirdum/biblioteca-service/internal/model"
)

// CreateLoan opens a loan and logs a loan_created activity best-effort.
func (s *Service) CreateLoan(ctx context.Context, req model.CreateLoanRequest) (model.Loan, error) {
	if req.UserName == "" {
		return model.Loan{}, validationErr("userName is required")
	}
	if req.BookTitle == "" {
		return model.Loan{}, validationErr("bookTitle is required")
	}
	if req.BorrowDate == "" {
		return model.Loan{}, validationErr("borrowDate is required")
	}
	if err := checkDate("borrowDate", req.BorrowDate); err != nil {
		return model.Loan{}, err
	}
	if err := checkDate("returnDate", req.ReturnDate); err != nil {
		return model.Loan{}, err
	}
	status := req.Status
	if status == "" {
		status = model.StatusBorrowed
	}

	loan, err := s.repo.CreateLoan(ctx, model.Loan{
		UserName:   req.UserName,
		BookTitle:  req.BookTitle,
		BorrowDate: req.BorrowDate,
		ReturnDate: req.ReturnDate,
		Status:     status,
	})
	if err != nil {
		return model.Loan{}, err
	}

	actorName, actorID := actorFrom(ctx)
	s.logActivity(ctx, model.LoanCreatedActivity(loan.BookTitle, loan.UserName, actorName, actorID))
	return loan, nil
}

// UpdateLoan applies a partial update and detects the return transition: a
// loan that was open (borrowed, or without a due date) becomes closed when
// the update sets a new non-empty returnDate or flips status to returned.
// Exactly one loan_returned activity is logged per detected transition.
func (s *Service) UpdateLoan(ctx context.Context, id int, req model.UpdateLoanRequest) (model.Loan, error) {
	if err := s.checkLoanUpdate(req); err != nil {
		return model.Loan{}, err
	}
	current, err := s.repo.GetLoan(ctx, id)
	if err != nil {
		return model.Loan{}, err
	}

	updated, err := s.repo.UpdateLoan(ctx, id, req)
	if err != nil {
		return model.Loan{}, err
	}

	if current.Open() && returnsLoan(current, req) {
		actorName, actorID := actorFrom(ctx)
		s.logActivity(ctx, model.LoanReturnedActivity(updated.BookTitle, updated.UserName, actorName, actorID))
	}
	return updated, nil
}

func (s *Service) checkLoanUpdate(req model.UpdateLoanRequest) error {
	if req.UserName != nil && *req.UserName == "" {
		return validationErr("userName must not be empty")
	}
	if req.BookTitle != nil && *req.BookTitle == "" {
		return validationErr("bookTitle must not be empty")
	}
	if req.BorrowDate != nil {
		if *req.BorrowDate == "" {
			return validationErr("borrowDate must not be empty")
		}
		if err := checkDate("borrowDate", *req.BorrowDate); err != nil {
			return err
		}
	}
	if req.ReturnDate != nil {
		if err := checkDate("returnDate", *req.ReturnDate); err != nil {
			return err
		}
	}
	if req.Status != nil && *req.Status != model.StatusBorrowed && *req.Status != model.StatusReturned {
		return validationErr("status must be borrowed or returned")
	}
	return nil
}

func returnsLoan(current model.Loan, req model.UpdateLoanRequest) bool {
	if req.ReturnDate != nil && *req.ReturnDate != "" && *req.ReturnDate != current.ReturnDate {
		return true
	}
	return req.Status != nil && *req.Status == model.StatusReturned && current.Status != model.StatusReturned
}

func (s *Service) GetLoan(ctx context.Context, id int) (model.Loan, error) {
	return s.repo.GetLoan(ctx, id)
}

func (s *Service) ListLoans(ctx context.Context) ([]model.Loan, error) {
	return s.repo.ListLoans(ctx)
}

func (s *Service) DeleteLoan(ctx context.Context, id int) error {
	return s.repo.DeleteLoan(ctx, id)
}
