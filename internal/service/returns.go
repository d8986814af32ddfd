package service

import (
	"context"
	"math"

	"github.com/Astemirdum/biblioteca-service/internal/model"
)

// lateness compares two calendar dates. Equal dates are on time; any
// fractional day of lateness counts as a full day. An empty expected date
// means no due date was recorded, which is never late.
func lateness(expected, actual string) (isLate bool, daysLate int, err error) {
	if expected == "" || actual == "" {
		return false, 0, nil
	}
	exp, err := parseDate(expected)
	if err != nil {
		return false, 0, validationErr("returnDate must be a YYYY-MM-DD date")
	}
	act, err := parseDate(actual)
	if err != nil {
		return false, 0, validationErr("actualReturnDate must be a YYYY-MM-DD date")
	}
	if !act.After(exp) {
		return false, 0, nil
	}
	days := int(math.Ceil(act.Sub(exp).Hours() / 24))
	return true, days, nil
}

// computeFine resolves the stored fine: an explicitly supplied value always
// wins, a late return without one is charged the daily rate per day late.
func computeFine(isLate bool, daysLate int, supplied *int64) int64 {
	if supplied != nil {
		return *supplied
	}
	if isLate {
		return int64(daysLate) * model.DailyFineRate
	}
	return 0
}

// CreateReturn records a physical return with lateness and fine materialized.
// It does not touch the matching loan; closing the loan is a separate update
// against the loan lifecycle.
func (s *Service) CreateReturn(ctx context.Context, req model.CreateReturnRequest) (model.Return, error) {
	if req.UserName == "" {
		return model.Return{}, validationErr("userName is required")
	}
	if req.BookTitle == "" {
		return model.Return{}, validationErr("bookTitle is required")
	}
	if req.ActualReturnDate == "" {
		return model.Return{}, validationErr("actualReturnDate is required")
	}
	if err := checkDate("borrowDate", req.BorrowDate); err != nil {
		return model.Return{}, err
	}
	if err := checkDate("returnDate", req.ReturnDate); err != nil {
		return model.Return{}, err
	}
	if err := checkDate("actualReturnDate", req.ActualReturnDate); err != nil {
		return model.Return{}, err
	}
	condition := req.Condition
	if condition == "" {
		condition = model.ConditionExcellent
	} else if !validCondition(condition) {
		return model.Return{}, validationErr("condition %q is not allowed", condition)
	}
	if req.Fine != nil && *req.Fine < 0 {
		return model.Return{}, validationErr("fine must be non-negative")
	}

	isLate, daysLate, err := lateness(req.ReturnDate, req.ActualReturnDate)
	if err != nil {
		return model.Return{}, err
	}

	return s.repo.CreateReturn(ctx, model.Return{
		UserName:         req.UserName,
		BookTitle:        req.BookTitle,
		BorrowDate:       req.BorrowDate,
		ReturnDate:       req.ReturnDate,
		ActualReturnDate: req.ActualReturnDate,
		Condition:        condition,
		Notes:            req.Notes,
		Fine:             computeFine(isLate, daysLate, req.Fine),
		IsLate:           isLate,
		DaysLate:         daysLate,
	})
}

// UpdateReturn merges the supplied fields and, when both dates are present
// after the merge, recomputes lateness. A recomputed late return keeps an
// explicitly supplied fine from this call, otherwise the fine is re-derived.
func (s *Service) UpdateReturn(ctx context.Context, id int, req model.UpdateReturnRequest) (model.Return, error) {
	current, err := s.repo.GetReturn(ctx, id)
	if err != nil {
		return model.Return{}, err
	}
	merged, err := mergeReturn(current, req)
	if err != nil {
		return model.Return{}, err
	}

	if merged.ReturnDate != "" && merged.ActualReturnDate != "" {
		isLate, daysLate, err := lateness(merged.ReturnDate, merged.ActualReturnDate)
		if err != nil {
			return model.Return{}, err
		}
		merged.IsLate = isLate
		merged.DaysLate = daysLate
		if isLate && req.Fine == nil {
			merged.Fine = int64(daysLate) * model.DailyFineRate
		}
	}

	return s.repo.UpdateReturn(ctx, merged)
}

func mergeReturn(current model.Return, req model.UpdateReturnRequest) (model.Return, error) {
	if req.UserName != nil {
		current.UserName = *req.UserName
	}
	if req.BookTitle != nil {
		current.BookTitle = *req.BookTitle
	}
	if req.BorrowDate != nil {
		if err := checkDate("borrowDate", *req.BorrowDate); err != nil {
			return model.Return{}, err
		}
		current.BorrowDate = *req.BorrowDate
	}
	if req.ReturnDate != nil {
		if err := checkDate("returnDate", *req.ReturnDate); err != nil {
			return model.Return{}, err
		}
		current.ReturnDate = *req.ReturnDate
	}
	if req.ActualReturnDate != nil {
		if *req.ActualReturnDate == "" {
			return model.Return{}, validationErr("actualReturnDate must not be empty")
		}
		if err := checkDate("actualReturnDate", *req.ActualReturnDate); err != nil {
			return model.Return{}, err
		}
		current.ActualReturnDate = *req.ActualReturnDate
	}
	if req.Condition != nil {
		if !validCondition(*req.Condition) {
			return model.Return{}, validationErr("condition %q is not allowed", *req.Condition)
		}
		current.Condition = *req.Condition
	}
	if req.Notes != nil {
		current.Notes = *req.Notes
	}
	if req.Fine != nil {
		if *req.Fine < 0 {
			return model.Return{}, validationErr("fine must be non-negative")
		}
		current.Fine = *req.Fine
	}
	return current, nil
}

func validCondition(c model.Condition) bool {
	switch c {
	case model.ConditionExcellent, model.ConditionVeryGood, model.ConditionGood,
		model.ConditionFair, model.ConditionBad, model.ConditionDamaged:
		return true
	}
	return false
}

func (s *Service) GetReturn(ctx context.Context, id int) (model.Return, error) {
	return s.repo.GetReturn(ctx, id)
}

func (s *Service) ListReturns(ctx context.Context) ([]model.Return, error) {
	return s.repo.ListReturns(ctx)
}

func (s *Service) DeleteReturn(ctx context.Context, id int) error {
	return s.repo.DeleteReturn(ctx, id)
}
