package handler

import (
	"net/http"
	"strconv"

	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/biblioteca-service/internal/errs"
	mw "github.com/Astemirdum/biblioteca-service/pkg/middleware"
	"github.com/Astemirdum/biblioteca-service/pkg/validate"
)

type Handler struct {
	svc BibliotecaService
	log *zap.Logger
}

func New(svc BibliotecaService, log *zap.Logger) *Handler {
	return &Handler{
		svc: svc,
		log: log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", mw.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("",
		middleware.RequestLoggerWithConfig(mw.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		mw.NewRateLimiter(apiRPS),
	)

	authAPI := api.Group("/auth")
	authAPI.POST("/register", h.Register)
	authAPI.POST("/login", h.Login)
	authAPI.GET("/profile", h.Profile, mw.JwtAuthentication)

	users := api.Group("/users", mw.JwtAuthentication)
	users.GET("", h.ListUsers)
	users.GET("/:id", h.GetUser)
	users.PUT("/:id", h.UpdateUser)
	users.DELETE("/:id", h.DeleteUser)

	// Mutations attribute activities to the token's actor when one is
	// present and to the system actor otherwise.
	books := api.Group("/books", mw.ActorContext)
	books.GET("", h.ListBooks)
	books.GET("/:id", h.GetBook)
	books.POST("", h.CreateBook)
	books.PUT("/:id", h.UpdateBook)
	books.DELETE("/:id", h.DeleteBook)

	authors := api.Group("/authors", mw.ActorContext)
	authors.GET("", h.ListAuthors)
	authors.GET("/:id", h.GetAuthor)
	authors.POST("", h.CreateAuthor)
	authors.PUT("/:id", h.UpdateAuthor)
	authors.DELETE("/:id", h.DeleteAuthor)

	loans := api.Group("/loans", mw.ActorContext)
	loans.GET("", h.ListLoans)
	loans.GET("/:id", h.GetLoan)
	loans.POST("", h.CreateLoan)
	loans.PUT("/:id", h.UpdateLoan)
	loans.DELETE("/:id", h.DeleteLoan)

	returns := api.Group("/returns", mw.ActorContext)
	returns.GET("", h.ListReturns)
	returns.GET("/:id", h.GetReturn)
	returns.POST("", h.CreateReturn)
	returns.PUT("/:id", h.UpdateReturn)
	returns.DELETE("/:id", h.DeleteReturn)

	activities := api.Group("/activities")
	activities.GET("", h.RecentActivities)
	activities.GET("/recent", h.RecentActivities)
	activities.GET("/type/:type", h.ActivitiesByType)
	activities.GET("/user/:userId", h.ActivitiesByUser)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// httpError maps the error taxonomy onto status codes: validation 400,
// not-found 404, conflict 409, bad credentials 401, anything else 500.
func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, errs.ErrValidation):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrConflict):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrInvalidCredentials):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

func pathID(c echo.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}

func limitQuery(c echo.Context, def int) int {
	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil || limit <= 0 {
		return def
	}
	return limit
}
