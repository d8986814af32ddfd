package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/biblioteca-service/internal/errs"
	"github.com/Astemirdum/biblioteca-service/internal/model"
	mock_repository "github.com/Astemirdum/biblioteca-service/internal/repository/mocks"
)

func ptr[T any](v T) *T { return &v }

func TestLateness(t *testing.T) {
	tests := []struct {
		name     string
		expected string
		actual   string
		isLate   bool
		daysLate int
		wantErr  bool
	}{
		{name: "on time, same day", expected: "2025-09-10", actual: "2025-09-10"},
		{name: "on time, early", expected: "2025-09-10", actual: "2025-09-08"},
		{name: "three days late", expected: "2025-09-10", actual: "2025-09-13", isLate: true, daysLate: 3},
		{name: "one day late", expected: "2025-09-10", actual: "2025-09-11", isLate: true, daysLate: 1},
		{name: "late across months", expected: "2025-01-30", actual: "2025-02-02", isLate: true, daysLate: 3},
		{name: "no due date", expected: "", actual: "2025-09-13"},
		{name: "no actual date", expected: "2025-09-10", actual: ""},
		{name: "malformed due date", expected: "10/09/2025", actual: "2025-09-13", wantErr: true},
		{name: "malformed actual date", expected: "2025-09-10", actual: "not-a-date", wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			isLate, daysLate, err := lateness(tt.expected, tt.actual)
			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrValidation)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.isLate, isLate)
			require.Equal(t, tt.daysLate, daysLate)
		})
	}
}

func TestComputeFine(t *testing.T) {
	tests := []struct {
		name     string
		isLate   bool
		daysLate int
		supplied *int64
		want     int64
	}{
		{name: "late, derived from daily rate", isLate: true, daysLate: 3, want: 4500},
		{name: "late, supplied fine wins", isLate: true, daysLate: 3, supplied: ptr(int64(1000)), want: 1000},
		{name: "late, supplied zero wins", isLate: true, daysLate: 3, supplied: ptr(int64(0)), want: 0},
		{name: "on time, no fine", want: 0},
		{name: "on time, supplied fine kept", supplied: ptr(int64(700)), want: 700},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, computeFine(tt.isLate, tt.daysLate, tt.supplied))
		})
	}
}

func TestService_CreateReturn(t *testing.T) {
	tests := []struct {
		name    string
		req     model.CreateReturnRequest
		want    model.Return
		wantErr bool
	}{
		{
			name: "late return, fine materialized",
			req: model.CreateReturnRequest{
				UserName:         "María González",
				BookTitle:        "Rayuela",
				ReturnDate:       "2025-09-10",
				ActualReturnDate: "2025-09-13",
			},
			want: model.Return{
				UserName:         "María González",
				BookTitle:        "Rayuela",
				ReturnDate:       "2025-09-10",
				ActualReturnDate: "2025-09-13",
				Condition:        model.ConditionExcellent,
				Fine:             4500,
				IsLate:           true,
				DaysLate:         3,
			},
		},
		{
			name: "on time, default condition",
			req: model.CreateReturnRequest{
				UserName:         "Carlos Pérez",
				BookTitle:        "Rayuela",
				ReturnDate:       "2025-09-10",
				ActualReturnDate: "2025-09-10",
			},
			want: model.Return{
				UserName:         "Carlos Pérez",
				BookTitle:        "Rayuela",
				ReturnDate:       "2025-09-10",
				ActualReturnDate: "2025-09-10",
				Condition:        model.ConditionExcellent,
			},
		},
		{
			name: "late, explicit fine wins over derived",
			req: model.CreateReturnRequest{
				UserName:         "Ana Rodríguez",
				BookTitle:        "Rayuela",
				ReturnDate:       "2025-09-10",
				ActualReturnDate: "2025-09-13",
				Condition:        model.ConditionDamaged,
				Fine:             ptr(int64(1000)),
			},
			want: model.Return{
				UserName:         "Ana Rodríguez",
				BookTitle:        "Rayuela",
				ReturnDate:       "2025-09-10",
				ActualReturnDate: "2025-09-13",
				Condition:        model.ConditionDamaged,
				Fine:             1000,
				IsLate:           true,
				DaysLate:         3,
			},
		},
		{
			name: "no due date is never late",
			req: model.CreateReturnRequest{
				UserName:         "Ana Rodríguez",
				BookTitle:        "Rayuela",
				ActualReturnDate: "2025-09-13",
			},
			want: model.Return{
				UserName:         "Ana Rodríguez",
				BookTitle:        "Rayuela",
				ActualReturnDate: "2025-09-13",
				Condition:        model.ConditionExcellent,
			},
		},
		{
			name: "unknown condition rejected",
			req: model.CreateReturnRequest{
				UserName:         "Ana Rodríguez",
				BookTitle:        "Rayuela",
				ActualReturnDate: "2025-09-13",
				Condition:        "Perfecto",
			},
			wantErr: true,
		},
		{
			name: "negative fine rejected",
			req: model.CreateReturnRequest{
				UserName:         "Ana Rodríguez",
				BookTitle:        "Rayuela",
				ActualReturnDate: "2025-09-13",
				Fine:             ptr(int64(-1)),
			},
			wantErr: true,
		},
		{
			name: "missing actual return date rejected",
			req: model.CreateReturnRequest{
				UserName:  "Ana Rodríguez",
				BookTitle: "Rayuela",
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			c := gomock.NewController(t)
			defer c.Finish()
			repo := mock_repository.NewMockRepository(c)
			if !tt.wantErr {
				repo.EXPECT().CreateReturn(gomock.Any(), tt.want).Return(tt.want, nil)
			}
			svc := NewService(repo, nil, zap.NewNop())

			got, err := svc.CreateReturn(context.Background(), tt.req)
			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrValidation)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestService_UpdateReturn(t *testing.T) {
	current := model.Return{
		ID:               7,
		UserName:         "María González",
		BookTitle:        "Rayuela",
		ReturnDate:       "2025-09-10",
		ActualReturnDate: "2025-09-10",
		Condition:        model.ConditionExcellent,
	}

	tests := []struct {
		name string
		req  model.UpdateReturnRequest
		want model.Return
	}{
		{
			name: "late actual date re-derives the fine",
			req:  model.UpdateReturnRequest{ActualReturnDate: ptr("2025-09-13")},
			want: model.Return{
				ID:               7,
				UserName:         "María González",
				BookTitle:        "Rayuela",
				ReturnDate:       "2025-09-10",
				ActualReturnDate: "2025-09-13",
				Condition:        model.ConditionExcellent,
				Fine:             4500,
				IsLate:           true,
				DaysLate:         3,
			},
		},
		{
			name: "supplied fine survives recompute",
			req: model.UpdateReturnRequest{
				ActualReturnDate: ptr("2025-09-13"),
				Fine:             ptr(int64(1000)),
			},
			want: model.Return{
				ID:               7,
				UserName:         "María González",
				BookTitle:        "Rayuela",
				ReturnDate:       "2025-09-10",
				ActualReturnDate: "2025-09-13",
				Condition:        model.ConditionExcellent,
				Fine:             1000,
				IsLate:           true,
				DaysLate:         3,
			},
		},
		{
			name: "earlier actual date clears lateness",
			req:  model.UpdateReturnRequest{ActualReturnDate: ptr("2025-09-09")},
			want: model.Return{
				ID:               7,
				UserName:         "María González",
				BookTitle:        "Rayuela",
				ReturnDate:       "2025-09-10",
				ActualReturnDate: "2025-09-09",
				Condition:        model.ConditionExcellent,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			c := gomock.NewController(t)
			defer c.Finish()
			repo := mock_repository.NewMockRepository(c)
			repo.EXPECT().GetReturn(gomock.Any(), current.ID).Return(current, nil)
			repo.EXPECT().UpdateReturn(gomock.Any(), tt.want).Return(tt.want, nil)
			svc := NewService(repo, nil, zap.NewNop())

			got, err := svc.UpdateReturn(context.Background(), current.ID, tt.req)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestService_UpdateReturn_NotFound(t *testing.T) {
	c := gomock.NewController(t)
	defer c.Finish()
	repo := mock_repository.NewMockRepository(c)
	repo.EXPECT().GetReturn(gomock.Any(), 99).Return(model.Return{}, errs.ErrNotFound)
	svc := NewService(repo, nil, zap.NewNop())

	_, err := svc.UpdateReturn(context.Background(), 99, model.UpdateReturnRequest{Notes: ptr("x")})
	require.ErrorIs(t, err, errs.ErrNotFound)
}
