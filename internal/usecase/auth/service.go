package auth

import (
	"context"
	"errors"
	"strings"

	"jobmatch/internal/domain/user"
	"jobmatch/internal/pkg/jwt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrInvalidInput           = errors.New("invalid input")
	ErrInvalidRefreshToken    = errors.New("invalid refresh token")
	ErrRefreshTokenExpired    = errors.New("refresh token expired")
	ErrInternal               = errors.New("internal error")
)

const minPasswordLength = 8

type RegisterInput struct {
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

// Session is what a successful register, login or refresh hands back.
type Session struct {
	User         user.User
	AccessToken  string
	RefreshToken string
}

type Usecase interface {
	Register(ctx context.Context, in RegisterInput) (Session, error)
	Login(ctx context.Context, in LoginInput) (Session, error)
	Refresh(ctx context.Context, refreshToken string) (Session, error)
}

type Service struct {
	users  user.Repository
	tokens jwt.Service
	logger *zap.Logger
	cost   int
}

func NewService(users user.Repository, tokens jwt.Service, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{users: users, tokens: tokens, logger: log.Named("auth"), cost: bcrypt.DefaultCost}
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (Session, error) {
	email := normalizeEmail(in.Email)
	if email == "" || !strings.Contains(email, "@") {
		return Session{}, ErrInvalidInput
	}
	if !isValidPassword(in.Password) {
		return Session{}, ErrInvalidInput
	}

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return Session{}, s.internal("exists by email", err)
	}
	if exists {
		return Session{}, ErrEmailAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return Session{}, s.internal("hash password", err)
	}

	u := user.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
	}

	if err := s.users.CreateUser(ctx, u); err != nil {
		exists, exErr := s.users.ExistsByEmail(ctx, email)
		if exErr == nil && exists {
			return Session{}, ErrEmailAlreadyRegistered
		}
		return Session{}, s.internal("create user", err)
	}

	created, err := s.users.GetUserByID(ctx, u.ID)
	if err != nil {
		return Session{}, s.internal("reload user", err)
	}
	return s.issue(created)
}

func (s *Service) Login(ctx context.Context, in LoginInput) (Session, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return Session{}, ErrInvalidCredentials
	}

	u, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return Session{}, ErrInvalidCredentials
		}
		return Session{}, s.internal("get user by email", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return Session{}, ErrInvalidCredentials
	}

	return s.issue(u)
}

func (s *Service) Refresh(ctx context.Context, refreshToken string) (Session, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return Session{}, ErrInvalidRefreshToken
	}

	claims, err := s.tokens.ValidateToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Session{}, ErrRefreshTokenExpired
		}
		return Session{}, ErrInvalidRefreshToken
	}
	if !s.tokens.IsRefreshToken(claims) {
		return Session{}, ErrInvalidRefreshToken
	}

	u, err := s.users.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return Session{}, ErrInvalidRefreshToken
		}
		return Session{}, s.internal("get user by id", err)
	}
	return s.issue(u)
}

func (s *Service) issue(u user.User) (Session, error) {
	access, err := s.tokens.GenerateAccessToken(u.ID, u.Email)
	if err != nil {
		return Session{}, s.internal("sign access token", err)
	}
	refresh, err := s.tokens.GenerateRefreshToken(u.ID)
	if err != nil {
		return Session{}, s.internal("sign refresh token", err)
	}
	return Session{User: sanitizeUser(u), AccessToken: access, RefreshToken: refresh}, nil
}

func (s *Service) internal(op string, err error) error {
	s.logger.Error("auth operation failed", zap.String("op", op), zap.Error(err))
	return ErrInternal
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func isValidPassword(pw string) bool {
	return len(strings.TrimSpace(pw)) >= minPasswordLength
}

func sanitizeUser(u user.User) user.User {
	u.PasswordHash = ""
	return u
}

var _ Usecase = (*Service)(nil)
