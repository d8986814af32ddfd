package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/biblioteca-service/internal/errs"
	"github.com/Astemirdum/biblioteca-service/internal/model"
	mock_repository "github.com/Astemirdum/biblioteca-service/internal/repository/mocks"
	"github.com/Astemirdum/biblioteca-service/pkg/auth"
)

func TestService_CreateLoan(t *testing.T) {
	c := gomock.NewController(t)
	defer c.Finish()
	repo := mock_repository.NewMockRepository(c)

	created := model.Loan{
		ID:         1,
		UserName:   "María González",
		BookTitle:  "Rayuela",
		BorrowDate: "2025-09-01",
		Status:     model.StatusBorrowed,
	}
	repo.EXPECT().
		CreateLoan(gomock.Any(), model.Loan{
			UserName:   "María González",
			BookTitle:  "Rayuela",
			BorrowDate: "2025-09-01",
			Status:     model.StatusBorrowed,
		}).
		Return(created, nil)

	var logged model.Activity
	repo.EXPECT().
		CreateActivity(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a model.Activity) error {
			logged = a
			return nil
		})

	svc := NewService(repo, nil, zap.NewNop())
	got, err := svc.CreateLoan(context.Background(), model.CreateLoanRequest{
		UserName:   "María González",
		BookTitle:  "Rayuela",
		BorrowDate: "2025-09-01",
	})
	require.NoError(t, err)
	require.Equal(t, created, got)

	require.Equal(t, model.ActivityLoanCreated, logged.Type)
	require.Equal(t, auth.SystemActor, logged.UserName)
	require.Nil(t, logged.UserID)
	require.False(t, logged.Timestamp.IsZero())
}

func TestService_CreateLoan_ActorAttribution(t *testing.T) {
	c := gomock.NewController(t)
	defer c.Finish()
	repo := mock_repository.NewMockRepository(c)

	repo.EXPECT().CreateLoan(gomock.Any(), gomock.Any()).
		Return(model.Loan{ID: 1, UserName: "María González", BookTitle: "Rayuela"}, nil)

	var logged model.Activity
	repo.EXPECT().CreateActivity(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a model.Activity) error {
			logged = a
			return nil
		})

	svc := NewService(repo, nil, zap.NewNop())
	ctx := auth.SetAuthContext(context.Background(), auth.Actor{ID: 42, Name: "Bibliotecario", Role: "librarian"})
	_, err := svc.CreateLoan(ctx, model.CreateLoanRequest{
		UserName:   "María González",
		BookTitle:  "Rayuela",
		BorrowDate: "2025-09-01",
	})
	require.NoError(t, err)
	require.Equal(t, "Bibliotecario", logged.UserName)
	require.NotNil(t, logged.UserID)
	require.Equal(t, 42, *logged.UserID)
}

func TestService_CreateLoan_ActivityFailureSwallowed(t *testing.T) {
	c := gomock.NewController(t)
	defer c.Finish()
	repo := mock_repository.NewMockRepository(c)

	created := model.Loan{ID: 1, UserName: "María González", BookTitle: "Rayuela"}
	repo.EXPECT().CreateLoan(gomock.Any(), gomock.Any()).Return(created, nil)
	repo.EXPECT().CreateActivity(gomock.Any(), gomock.Any()).Return(errors.New("activities table unavailable"))

	svc := NewService(repo, nil, zap.NewNop())
	got, err := svc.CreateLoan(context.Background(), model.CreateLoanRequest{
		UserName:   "María González",
		BookTitle:  "Rayuela",
		BorrowDate: "2025-09-01",
	})
	require.NoError(t, err)
	require.Equal(t, created, got)
}

func TestService_UpdateLoan_ReturnTransition(t *testing.T) {
	open := model.Loan{
		ID:         1,
		UserName:   "María González",
		BookTitle:  "Rayuela",
		BorrowDate: "2025-09-01",
		Status:     model.StatusBorrowed,
	}
	closed := model.Loan{
		ID:         1,
		UserName:   "María González",
		BookTitle:  "Rayuela",
		BorrowDate: "2025-09-01",
		ReturnDate: "2025-09-10",
		Status:     model.StatusReturned,
	}

	tests := []struct {
		name         string
		current      model.Loan
		req          model.UpdateLoanRequest
		updated      model.Loan
		wantActivity bool
	}{
		{
			name:         "setting a return date closes the loan",
			current:      open,
			req:          model.UpdateLoanRequest{ReturnDate: ptr("2025-09-10")},
			updated:      closed,
			wantActivity: true,
		},
		{
			name:         "flipping status to returned closes the loan",
			current:      open,
			req:          model.UpdateLoanRequest{Status: ptr(model.StatusReturned)},
			updated:      closed,
			wantActivity: true,
		},
		{
			name:    "touching other fields leaves an open loan open",
			current: open,
			req:     model.UpdateLoanRequest{BookTitle: ptr("Bestiario")},
			updated: open,
		},
		{
			name: "re-sending the stored return date logs nothing",
			current: model.Loan{
				ID:         1,
				UserName:   "María González",
				BookTitle:  "Rayuela",
				BorrowDate: "2025-09-01",
				ReturnDate: "2025-09-10",
				Status:     model.StatusBorrowed,
			},
			req: model.UpdateLoanRequest{ReturnDate: ptr("2025-09-10")},
			updated: model.Loan{
				ID:         1,
				UserName:   "María González",
				BookTitle:  "Rayuela",
				BorrowDate: "2025-09-01",
				ReturnDate: "2025-09-10",
				Status:     model.StatusBorrowed,
			},
		},
		{
			name:    "re-saving a closed loan logs nothing",
			current: closed,
			req:     model.UpdateLoanRequest{ReturnDate: ptr("2025-09-11")},
			updated: closed,
		},
		{
			name:    "clearing the return date does not count as a return",
			current: open,
			req:     model.UpdateLoanRequest{ReturnDate: ptr("")},
			updated: open,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			c := gomock.NewController(t)
			defer c.Finish()
			repo := mock_repository.NewMockRepository(c)
			repo.EXPECT().GetLoan(gomock.Any(), tt.current.ID).Return(tt.current, nil)
			repo.EXPECT().UpdateLoan(gomock.Any(), tt.current.ID, tt.req).Return(tt.updated, nil)

			var logged model.Activity
			if tt.wantActivity {
				// exactly one audit entry per detected transition
				repo.EXPECT().CreateActivity(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, a model.Activity) error {
						logged = a
						return nil
					}).Times(1)
			}

			svc := NewService(repo, nil, zap.NewNop())
			got, err := svc.UpdateLoan(context.Background(), tt.current.ID, tt.req)
			require.NoError(t, err)
			require.Equal(t, tt.updated, got)
			if tt.wantActivity {
				require.Equal(t, model.ActivityLoanReturned, logged.Type)
			}
		})
	}
}

func TestService_UpdateLoan_NotFound(t *testing.T) {
	c := gomock.NewController(t)
	defer c.Finish()
	repo := mock_repository.NewMockRepository(c)
	repo.EXPECT().GetLoan(gomock.Any(), 99).Return(model.Loan{}, errs.ErrNotFound)

	svc := NewService(repo, nil, zap.NewNop())
	_, err := svc.UpdateLoan(context.Background(), 99, model.UpdateLoanRequest{ReturnDate: ptr("2025-09-10")})
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestService_UpdateLoan_Validation(t *testing.T) {
	svc := NewService(nil, nil, zap.NewNop())

	tests := []struct {
		name string
		req  model.UpdateLoanRequest
	}{
		{name: "empty userName", req: model.UpdateLoanRequest{UserName: ptr("")}},
		{name: "empty borrowDate", req: model.UpdateLoanRequest{BorrowDate: ptr("")}},
		{name: "malformed returnDate", req: model.UpdateLoanRequest{ReturnDate: ptr("13/09/2025")}},
		{name: "unknown status", req: model.UpdateLoanRequest{Status: ptr(model.LoanStatus("lost"))}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.UpdateLoan(context.Background(), 1, tt.req)
			require.ErrorIs(t, err, errs.ErrValidation)
		})
	}
}
