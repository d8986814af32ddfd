package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/Astemirdum/biblioteca-service/pkg/auth"
	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/time/rate"
)

const (
	AuthorizationHeader = "Authorization"
	bearer              = "Bearer "
)

// JwtAuthentication rejects requests without a valid bearer token and puts
// the authenticated actor into the request context.
func JwtAuthentication(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := parseBearer(c)
		if err != nil {
			return err
		}
		setActor(c, claims)
		return next(c)
	}
}

// ActorContext attaches the actor when a valid token is present and lets the
// request through otherwise. Mutations made without a token are attributed to
// the system actor downstream.
func ActorContext(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if claims, err := parseBearer(c); err == nil {
			setActor(c, claims)
		}
		return next(c)
	}
}

func parseBearer(c echo.Context) (*auth.Claims, error) {
	authorization := c.Request().Header.Get(AuthorizationHeader)
	if authorization == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "No Authorization Header")
	}
	if !strings.HasPrefix(authorization, bearer) {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid Authorization Header")
	}
	tokenStr := strings.TrimPrefix(authorization, bearer)
	claims := new(auth.Claims)

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return auth.JWTKey, nil
	})
	if err != nil || !token.Valid {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "JwtAccessDenied")
	}
	if claims.ExpiresAt != nil && time.Now().After(claims.ExpiresAt.Time) {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "TokenExpired")
	}
	return claims, nil
}

func setActor(c echo.Context, claims *auth.Claims) {
	req := c.Request()
	ctx := auth.SetAuthContext(req.Context(), auth.Actor{
		ID:   claims.ID,
		Name: claims.Name,
		Role: claims.Role,
	})
	c.SetRequest(req.WithContext(ctx))
}

func NewRateLimiter(rps rate.Limit) echo.MiddlewareFunc {
	return middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rps))
}

func RequestLoggerConfig(log *zap.Logger) middleware.RequestLoggerConfig {
	c := middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		HandleError:  true,
		LogError:     true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := zapcore.InfoLevel
			if v.Error != nil {
				level = zapcore.ErrorLevel
			}
			log.Log(level, "request",
				zap.String("URI", v.URI),
				zap.String("Method", v.Method),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.Error(v.Error),
				zap.String("request_id", v.RequestID),
			)
			return nil
		},
	}
	return c
}
