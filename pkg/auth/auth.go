package auth

import (
	"context"
	"os"

	"github.com/golang-jwt/jwt/v4"
)

const (
	XUserNameHeader = "X-User-Name"
	XUserRoleHeader = "X-User-Role"

	// SystemActor attributes activities when no authenticated user is present.
	SystemActor = "Sistema"
)

// JWTKey secures the HS256 tokens. Overridable for deployments, defaulted for
// local runs.
var JWTKey = jwtKey()

func jwtKey() []byte {
	if key := os.Getenv("JWT_SECRET"); key != "" {
		return []byte(key)
	}
	return []byte("tu_clave_secreta_jwt")
}

// Claims is the token payload issued at register/login time.
type Claims struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// Actor identifies who triggered an operation, for activity attribution.
type Actor struct {
	ID   int
	Name string
	Role string
}

type ctxKey int

const actorKey ctxKey = iota + 1

func SetAuthContext(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

func ActorFromContext(ctx context.Context) (Actor, bool) {
	actor, ok := ctx.Value(actorKey).(Actor)
	return actor, ok
}
