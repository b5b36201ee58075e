package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/ascend/internal/telemetry/metrics"
	"github.com/2beens/ascend/internal/telemetry/tracing"
	"github.com/2beens/ascend/internal/validation"
	"github.com/2beens/ascend/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=users_test

type usersStore interface {
	Create(ctx context.Context, user *User) error
	GetByUsername(ctx context.Context, username string) (*User, error)
}

type sessionIssuer interface {
	Login(ctx context.Context, userID int, createdAt time.Time) (string, error)
	Logout(ctx context.Context, token string) (bool, error)
}

// Service registers users and opens or closes their login sessions.
type Service struct {
	store          usersStore
	sessions       sessionIssuer
	metricsManager *metrics.Manager
}

func NewService(store usersStore, sessions sessionIssuer, metricsManager *metrics.Manager) *Service {
	return &Service{
		store:          store,
		sessions:       sessions,
		metricsManager: metricsManager,
	}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "users.service.register")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	hash, err := pkg.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &User{
		Username:     req.Username,
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Weight:       req.Weight,
		Height:       req.Height,
		Gender:       req.Gender,
		PasswordHash: hash,
	}
	if err := s.store.Create(ctx, user); err != nil {
		return nil, err
	}

	if s.metricsManager != nil {
		s.metricsManager.CounterRegistrations.Inc()
	}
	log.Infof("new user registered: %d [%s]", user.ID, user.Username)

	return user, nil
}

// Login checks the credentials and returns a fresh session token.
func (s *Service) Login(ctx context.Context, creds Credentials) (_ string, _ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "users.service.login")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := validation.Struct(creds); err != nil {
		return "", nil, err
	}

	user, err := s.store.GetByUsername(ctx, creds.Username)
	if errors.Is(err, ErrUserNotFound) {
		return "", nil, ErrWrongPassword
	}
	if err != nil {
		return "", nil, err
	}

	if !pkg.PasswordMatches(user.PasswordHash, creds.Password) {
		return "", nil, ErrWrongPassword
	}

	token, err := s.sessions.Login(ctx, user.ID, time.Now())
	if err != nil {
		return "", nil, fmt.Errorf("open session: %w", err)
	}

	return token, user, nil
}

func (s *Service) Logout(ctx context.Context, token string) (bool, error) {
	return s.sessions.Logout(ctx, token)
}
