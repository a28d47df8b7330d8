package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophtasks/internal/common"
	"github.com/dmitrijs2005/gophtasks/internal/server/auth"
	"github.com/dmitrijs2005/gophtasks/internal/server/config"
	"github.com/dmitrijs2005/gophtasks/internal/server/models"
	"github.com/dmitrijs2005/gophtasks/internal/server/repositories/repomanager"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// LoginResult is what a successful login hands back to the caller.
type LoginResult struct {
	Token    string
	UserName string
}

type UserService struct {
	repomanager                 repomanager.RepositoryManager
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
	passwordHashCost            int
}

func NewUserService(m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		repomanager:                 m,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
		passwordHashCost:            cfg.PasswordHashCost,
	}
}

// Register creates an account. A taken username yields common.ErrorAlreadyExists,
// missing fields yield common.ErrorValidation.
func (s *UserService) Register(ctx context.Context, userName, password string) (*models.User, error) {
	ctx, span := tracer.Start(ctx, "UserService.Register")
	defer span.End()

	if strings.TrimSpace(userName) == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", common.ErrorValidation)
	}

	repo := s.repomanager.Users()

	_, err := repo.GetUserByLogin(ctx, userName)
	switch {
	case err == nil:
		return nil, common.ErrorAlreadyExists
	case !errors.Is(err, common.ErrorNotFound):
		span.RecordError(err)
		span.SetStatus(codes.Error, "lookup failed")
		return nil, fmt.Errorf("error searching user: %w", err)
	}

	hash, err := auth.HashPassword([]byte(password), s.passwordHashCost)
	if err != nil {
		return nil, err
	}

	user, err := repo.Create(ctx, &models.User{UserName: userName, PasswordHash: hash})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "create failed")
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	span.SetAttributes(attribute.String("user.id", user.ID))
	return user, nil
}

// Login checks credentials and issues an access token. Unknown users and wrong
// passwords both yield common.ErrorUnauthorized.
func (s *UserService) Login(ctx context.Context, userName, password string) (*LoginResult, error) {
	ctx, span := tracer.Start(ctx, "UserService.Login")
	defer span.End()

	if userName == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", common.ErrorValidation)
	}

	user, err := s.repomanager.Users().GetUserByLogin(ctx, userName)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "lookup failed")
		return nil, fmt.Errorf("error searching user: %w", err)
	}

	if !auth.CheckPassword(user.PasswordHash, []byte(password)) {
		return nil, common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, fmt.Errorf("error signing token: %w", err)
	}

	span.SetAttributes(attribute.String("user.id", user.ID))
	return &LoginResult{Token: token, UserName: user.UserName}, nil
}

// Authenticate verifies an access token and returns the user id it was issued to.
func (s *UserService) Authenticate(token string) (string, error) {
	return auth.GetUserIDFromToken(token, s.jwtSecret)
}
