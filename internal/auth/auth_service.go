package auth

import (
	"context"
	"strings"

	"go-yourtask/internal/account"
	autherrors "go-yourtask/internal/auth/errors"
	"go-yourtask/internal/bootstrap"
	"go-yourtask/internal/dashboard"
	"go-yourtask/internal/session"
	sessionerrors "go-yourtask/internal/session/errors"
	"go-yourtask/internal/shared/contextutil"
	"go-yourtask/internal/task"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, handle string) (LoginResult, error)
	Logout(ctx context.Context, sid string) error
	Me(ctx context.Context, sid string) (*session.Session, error)
}

type service struct {
	accountRepo account.Repository
	taskRepo    task.Repository
	store       session.Store
	issuer      *session.TokenIssuer
	dashboard   dashboard.Service
	audit       bootstrap.AuditLogger
	logger      *zap.Logger
	newID       func() string
}

func NewService(
	accountRepo account.Repository,
	taskRepo task.Repository,
	store session.Store,
	issuer *session.TokenIssuer,
	dashboardService dashboard.Service,
	audit bootstrap.AuditLogger,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{
		accountRepo: accountRepo,
		taskRepo:    taskRepo,
		store:       store,
		issuer:      issuer,
		dashboard:   dashboardService,
		audit:       audit,
		logger:      l,
		newID:       uuid.NewString,
	}
}

func (s *service) Login(ctx context.Context, handle string) (LoginResult, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	if strings.TrimSpace(handle) == "" {
		return LoginResult{}, autherrors.ErrEmptyUsername
	}

	var (
		ops      []account.Account
		couriers []account.Account
		tasks    []task.Task
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		ops, err = s.accountRepo.FindOps(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		couriers, err = s.accountRepo.FindCouriers(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		tasks, err = s.taskRepo.FindAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		log.Warn("login lookup failed", zap.Error(err))
		return LoginResult{}, err
	}

	sess, err := Resolve(handle, ops, couriers, tasks)
	if err != nil {
		log.Info("login rejected", zap.String("username", handle), zap.Error(err))
		return LoginResult{}, err
	}

	sid := s.newID()
	if err := s.store.Save(ctx, sid, sess); err != nil {
		log.Error("failed to save session", zap.Error(err))
		return LoginResult{}, err
	}

	token, err := s.issuer.Issue(sid)
	if err != nil {
		_ = s.store.Clear(ctx, sid)
		return LoginResult{}, err
	}

	// gagal refresh tidak membatalkan login, error tercatat di dashboard
	if err := s.dashboard.Open(ctx, sid, sess); err != nil {
		log.Warn("initial dashboard load failed", zap.Error(err))
	}

	s.audit.Log(ctx, bootstrap.AuditLog{
		Action:  "LOGIN",
		Message: "User logged in",
		Meta: map[string]any{
			"username":   sess.Username,
			"role":       string(sess.Role),
			"session_id": sid,
		},
	})

	return LoginResult{SessionID: sid, Token: token, Session: sess}, nil
}

func (s *service) Logout(ctx context.Context, sid string) error {
	if err := s.store.Clear(ctx, sid); err != nil {
		return err
	}
	s.dashboard.Close(sid)

	s.audit.Log(ctx, bootstrap.AuditLog{
		Action:  "LOGOUT",
		Message: "User logged out",
		Meta:    map[string]any{"session_id": sid},
	})
	return nil
}

func (s *service) Me(ctx context.Context, sid string) (*session.Session, error) {
	sess, err := s.store.Load(ctx, sid)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, sessionerrors.ErrSessionNotFound
	}
	return sess, nil
}
