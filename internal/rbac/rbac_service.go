package rbac

import (
	"sort"
	"sync"

	"go-yourtask/internal/session"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

const (
	ResourceTasks      = "tasks"
	ResourceAttendance = "attendance"
	ResourceSheets     = "sheets"

	ActionRead   = "read"
	ActionFinish = "finish"
)

// DefaultPolicy: kurir dan ops sama-sama melihat tugas dan jadwal,
// diagnostik sheet hanya untuk ops.
var DefaultPolicy = [][]string{
	{string(session.RoleOps), ResourceTasks, ActionRead},
	{string(session.RoleOps), ResourceTasks, ActionFinish},
	{string(session.RoleOps), ResourceAttendance, ActionRead},
	{string(session.RoleOps), ResourceSheets, ActionRead},
	{string(session.RoleKurir), ResourceTasks, ActionRead},
	{string(session.RoleKurir), ResourceTasks, ActionFinish},
	{string(session.RoleKurir), ResourceAttendance, ActionRead},
}

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	Enforce(req EnforceRequest) (bool, error)
	Permissions(role string) ([]string, error)
}

type service struct {
	enforcer *casbin.Enforcer
	policy   [][]string
	mu       sync.Mutex
	logger   *zap.Logger
}

func NewService(enforcer *casbin.Enforcer, policy [][]string) (Service, error) {
	for _, p := range policy {
		if _, err := enforcer.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, err
		}
	}
	return &service{
		enforcer: enforcer,
		policy:   policy,
		logger:   zap.L().Named("rbac.service"),
	}, nil
}

func (s *service) Enforce(req EnforceRequest) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	allowed, err := s.enforcer.Enforce(req.Role, req.Resource, req.Action)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("role", req.Role),
			zap.String("resource", req.Resource),
			zap.String("action", req.Action),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("rbac enforce result",
		zap.String("role", req.Role),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}

// Permissions mengembalikan daftar "resource:action" yang diizinkan untuk role, terurut.
func (s *service) Permissions(role string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]bool)
	perms := make([]string, 0)
	for _, p := range s.policy {
		perm := p[1] + ":" + p[2]
		if seen[perm] {
			continue
		}
		seen[perm] = true

		allowed, err := s.enforcer.Enforce(role, p[1], p[2])
		if err != nil {
			return nil, err
		}
		if allowed {
			perms = append(perms, perm)
		}
	}
	sort.Strings(perms)
	return perms, nil
}
