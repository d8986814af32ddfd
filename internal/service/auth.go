package service

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"github.com/Astemirdum/biblioteca-service/internal/errs"
	"github.com/Astemirdum/biblioteca-service/internal/model"
	"github.com/Astemirdum/biblioteca-service/pkg/auth"
)

const tokenTTL = 24 * time.Hour

// Register creates a user with a bcrypt-hashed password, logs a
// user_registered activity and issues a token for the fresh account.
func (s *Service) Register(ctx context.Context, req model.RegisterRequest) (model.AuthResponse, error) {
	role := req.Role
	if role == "" {
		role = "reader"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return model.AuthResponse{}, err
	}

	user, err := s.repo.CreateUser(ctx, model.User{
		Name:      req.Name,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Email:     req.Email,
		BirthDate: req.BirthDate,
		Gender:    req.Gender,
		Role:      role,
		Password:  string(hash),
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		if errors.Is(err, errs.ErrConflict) {
			return model.AuthResponse{}, errors.Wrap(errs.ErrConflict, "user with this email")
		}
		return model.AuthResponse{}, err
	}

	fullName := strings.TrimSpace(user.Name + " " + user.LastName)
	s.logActivity(ctx, model.UserRegisteredActivity(fullName, user.Email))

	token, err := s.newToken(user)
	if err != nil {
		return model.AuthResponse{}, err
	}
	return model.AuthResponse{
		Message: "Usuario registrado exitosamente",
		User:    user,
		Token:   token,
	}, nil
}

func (s *Service) Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error) {
	user, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.AuthResponse{}, errs.ErrInvalidCredentials
		}
		return model.AuthResponse{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return model.AuthResponse{}, errs.ErrInvalidCredentials
	}

	token, err := s.newToken(user)
	if err != nil {
		return model.AuthResponse{}, err
	}
	return model.AuthResponse{
		Message: "Login exitoso",
		User:    user,
		Token:   token,
	}, nil
}

func (s *Service) Profile(ctx context.Context, userID int) (model.User, error) {
	return s.repo.GetUser(ctx, userID)
}

func (s *Service) newToken(user model.User) (string, error) {
	claims := &auth.Claims{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(auth.JWTKey)
}
