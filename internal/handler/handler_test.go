package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/biblioteca-service/internal/errs"
	"github.com/Astemirdum/biblioteca-service/internal/handler"
	service_mocks "github.com/Astemirdum/biblioteca-service/internal/handler/mocks"
	"github.com/Astemirdum/biblioteca-service/internal/model"
	"github.com/Astemirdum/biblioteca-service/pkg/validate"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validate.NewCustomValidator()
	return e
}

func TestHandler_CreateLoan(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockBibliotecaService)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			body: `{"userName":"María González","bookTitle":"Rayuela","borrowDate":"2025-09-01"}`,
			mockBehavior: func(r *service_mocks.MockBibliotecaService) {
				r.EXPECT().
					CreateLoan(gomock.Any(), model.CreateLoanRequest{
						UserName:   "María González",
						BookTitle:  "Rayuela",
						BorrowDate: "2025-09-01",
					}).
					Return(model.Loan{
						ID:         1,
						UserName:   "María González",
						BookTitle:  "Rayuela",
						BorrowDate: "2025-09-01",
						Status:     model.StatusBorrowed,
					}, nil)
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"id":1,"userName":"María González","bookTitle":"Rayuela","borrowDate":"2025-09-01","returnDate":"","status":"borrowed"}`,
			},
		},
		{
			name:         "err. userName required",
			body:         `{"bookTitle":"Rayuela","borrowDate":"2025-09-01"}`,
			mockBehavior: func(r *service_mocks.MockBibliotecaService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
			},
		},
		{
			name: "err. bad borrow date",
			body: `{"userName":"María González","bookTitle":"Rayuela","borrowDate":"01/09/2025"}`,
			mockBehavior: func(r *service_mocks.MockBibliotecaService) {
				r.EXPECT().
					CreateLoan(gomock.Any(), gomock.Any()).
					Return(model.Loan{}, errors.Wrap(errs.ErrValidation, "borrowDate must be a YYYY-MM-DD date"))
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"borrowDate must be a YYYY-MM-DD date: validation failed"}`,
			},
		},
		{
			name: "err. internal",
			body: `{"userName":"María González","bookTitle":"Rayuela","borrowDate":"2025-09-01"}`,
			mockBehavior: func(r *service_mocks.MockBibliotecaService) {
				r.EXPECT().
					CreateLoan(gomock.Any(), gomock.Any()).
					Return(model.Loan{}, errors.New("db internal"))
			},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"db internal"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockBibliotecaService(c)
			h := handler.New(svc, zap.NewNop())

			e := newTestEcho()
			e.POST("/loans", h.CreateLoan)

			r := httptest.NewRequest(http.MethodPost, "/loans", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func TestHandler_UpdateLoan(t *testing.T) {
	t.Parallel()
	returned := model.StatusReturned
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockBibliotecaService)

	var tests = []struct {
		name         string
		target       string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name:   "ok",
			target: "/loans/1",
			body:   `{"returnDate":"2025-09-10","status":"returned"}`,
			mockBehavior: func(r *service_mocks.MockBibliotecaService) {
				r.EXPECT().
					UpdateLoan(gomock.Any(), 1, model.UpdateLoanRequest{
						ReturnDate: strPtr("2025-09-10"),
						Status:     &returned,
					}).
					Return(model.Loan{
						ID:         1,
						UserName:   "María González",
						BookTitle:  "Rayuela",
						BorrowDate: "2025-09-01",
						ReturnDate: "2025-09-10",
						Status:     model.StatusReturned,
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"id":1,"userName":"María González","bookTitle":"Rayuela","borrowDate":"2025-09-01","returnDate":"2025-09-10","status":"returned"}`,
			},
		},
		{
			name:   "err. unknown id",
			target: "/loans/99",
			body:   `{"status":"returned"}`,
			mockBehavior: func(r *service_mocks.MockBibliotecaService) {
				r.EXPECT().
					UpdateLoan(gomock.Any(), 99, gomock.Any()).
					Return(model.Loan{}, errs.ErrNotFound)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"not found"}`,
			},
		},
		{
			name:         "err. bad id",
			target:       "/loans/abc",
			body:         `{"status":"returned"}`,
			mockBehavior: func(r *service_mocks.MockBibliotecaService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"invalid id"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockBibliotecaService(c)
			h := handler.New(svc, zap.NewNop())

			e := newTestEcho()
			e.PUT("/loans/:id", h.UpdateLoan)

			r := httptest.NewRequest(http.MethodPut, tt.target, strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_CreateReturn(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockBibliotecaService)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok, late return",
			body: `{"userName":"María González","bookTitle":"Rayuela","returnDate":"2025-09-10","actualReturnDate":"2025-09-13"}`,
			mockBehavior: func(r *service_mocks.MockBibliotecaService) {
				r.EXPECT().
					CreateReturn(gomock.Any(), model.CreateReturnRequest{
						UserName:         "María González",
						BookTitle:        "Rayuela",
						ReturnDate:       "2025-09-10",
						ActualReturnDate: "2025-09-13",
					}).
					Return(model.Return{
						ID:               1,
						UserName:         "María González",
						BookTitle:        "Rayuela",
						ReturnDate:       "2025-09-10",
						ActualReturnDate: "2025-09-13",
						Condition:        model.ConditionExcellent,
						Fine:             4500,
						IsLate:           true,
						DaysLate:         3,
					}, nil)
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"id":1,"userName":"María González","bookTitle":"Rayuela","borrowDate":"","returnDate":"2025-09-10","actualReturnDate":"2025-09-13","condition":"Excelente","notes":"","fine":4500,"isLate":true,"daysLate":3}`,
			},
		},
		{
			name:         "err. unknown condition",
			body:         `{"userName":"María González","bookTitle":"Rayuela","actualReturnDate":"2025-09-13","condition":"Perfecto"}`,
			mockBehavior: func(r *service_mocks.MockBibliotecaService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
			},
		},
		{
			name:         "err. negative fine",
			body:         `{"userName":"María González","bookTitle":"Rayuela","actualReturnDate":"2025-09-13","fine":-1}`,
			mockBehavior: func(r *service_mocks.MockBibliotecaService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockBibliotecaService(c)
			h := handler.New(svc, zap.NewNop())

			e := newTestEcho()
			e.POST("/returns", h.CreateReturn)

			r := httptest.NewRequest(http.MethodPost, "/returns", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func TestHandler_RecentActivities(t *testing.T) {
	t.Parallel()
	type mockBehavior func(r *service_mocks.MockBibliotecaService)

	var tests = []struct {
		name         string
		target       string
		mockBehavior mockBehavior
		expectedCode int
	}{
		{
			name:   "default limit",
			target: "/activities/recent",
			mockBehavior: func(r *service_mocks.MockBibliotecaService) {
				r.EXPECT().
					RecentActivities(gomock.Any(), 10).
					Return([]model.Activity{}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "explicit limit",
			target: "/activities/recent?limit=5",
			mockBehavior: func(r *service_mocks.MockBibliotecaService) {
				r.EXPECT().
					RecentActivities(gomock.Any(), 5).
					Return([]model.Activity{}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "garbage limit falls back to default",
			target: "/activities/recent?limit=abc",
			mockBehavior: func(r *service_mocks.MockBibliotecaService) {
				r.EXPECT().
					RecentActivities(gomock.Any(), 10).
					Return([]model.Activity{}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "err. internal",
			target: "/activities/recent",
			mockBehavior: func(r *service_mocks.MockBibliotecaService) {
				r.EXPECT().
					RecentActivities(gomock.Any(), 10).
					Return(nil, errors.New("db internal"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockBibliotecaService(c)
			h := handler.New(svc, zap.NewNop())

			e := newTestEcho()
			e.GET("/activities/recent", h.RecentActivities)

			r := httptest.NewRequest(http.MethodGet, tt.target, http.NoBody)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestHandler_Login(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockBibliotecaService)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			body: `{"email":"maria@biblioteca.com","password":"secreto"}`,
			mockBehavior: func(r *service_mocks.MockBibliotecaService) {
				r.EXPECT().
					Login(gomock.Any(), model.LoginRequest{
						Email:    "maria@biblioteca.com",
						Password: "secreto",
					}).
					Return(model.AuthResponse{
						Message: "Login exitoso",
						User:    model.User{ID: 1, Name: "María", Email: "maria@biblioteca.com", Role: "reader"},
						Token:   "jwt-token",
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"message":"Login exitoso","user":{"id":1,"name":"María","lastName":"","phone":"","email":"maria@biblioteca.com","birthDate":"","gender":"","role":"reader","createdAt":""},"token":"jwt-token"}`,
			},
		},
		{
			name: "err. wrong password",
			body: `{"email":"maria@biblioteca.com","password":"wrong1"}`,
			mockBehavior: func(r *service_mocks.MockBibliotecaService) {
				r.EXPECT().
					Login(gomock.Any(), gomock.Any()).
					Return(model.AuthResponse{}, errs.ErrInvalidCredentials)
			},
			response: response{
				expectedCode: http.StatusUnauthorized,
				expectedBody: `{"message":"invalid credentials"}`,
			},
		},
		{
			name:         "err. not an email",
			body:         `{"email":"maria","password":"secreto"}`,
			mockBehavior: func(r *service_mocks.MockBibliotecaService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockBibliotecaService(c)
			h := handler.New(svc, zap.NewNop())

			e := newTestEcho()
			e.POST("/auth/login", h.Login)

			r := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func strPtr(s string) *string { return &s }

func TestHandler_DeleteLoan(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockBibliotecaService(c)
	svc.EXPECT().DeleteLoan(gomock.Any(), 1).Return(nil)
	h := handler.New(svc, zap.NewNop())

	e := newTestEcho()
	e.DELETE("/loans/:id", h.DeleteLoan)

	r := httptest.NewRequest(http.MethodDelete, "/loans/1", http.NoBody)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusNoContent, w.Code)
	require.Empty(t, w.Body.String())
}
