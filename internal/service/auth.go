package service

import (
	"context"
	"strconv"
	"time"

	"fintrack/internal/apperr"
	"fintrack/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AuthResult is returned by signup and login.
type AuthResult struct {
	Token string            `json:"token"`
	User  models.PublicUser `json:"user"`
}

// Signup creates a new user with a hashed password and returns a bearer
// token for it. The email pre-check gives a friendly conflict error; the
// store's unique index is the real guarantee under concurrency.
func (s *Service) Signup(ctx context.Context, req *models.SignupRequest) (*AuthResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.store.FindUserByEmail(ctx, req.Email); err == nil {
		return nil, apperr.Conflictf("email already exists")
	} else if apperr.KindOf(err) != apperr.NotFound {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to hash password", err)
	}

	user := &models.User{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: string(hashed),
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		return nil, err
	}

	s.log.Infof("User registered: %s", user.Email)
	return &AuthResult{Token: token, User: user.Public()}, nil
}

// Login authenticates a user and returns a bearer token. The error never
// reveals whether the email or the password was wrong.
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*AuthResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	user, err := s.store.FindUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperr.Authf("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperr.Authf("invalid credentials")
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		return nil, err
	}

	s.log.Infof("User logged in: %s", user.Email)
	return &AuthResult{Token: token, User: user.Public()}, nil
}

// VerifyUser resolves an already-validated token subject against the
// identity store. The account may have disappeared since the token was
// issued.
func (s *Service) VerifyUser(ctx context.Context, userID int64) (*models.PublicUser, error) {
	user, err := s.store.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	pub := user.Public()
	return &pub, nil
}

func (s *Service) issueToken(userID int64) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.cfg.TokenTTL)),
	})
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", apperr.Wrap(apperr.Internal, "failed to generate token", err)
	}
	return signed, nil
}
