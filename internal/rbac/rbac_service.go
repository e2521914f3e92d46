package rbac

import (
	"context"
	"sort"
	"sync"
	"time"

	rbacerrors "go-agency/internal/rbac/errors"

	"github.com/casbin/casbin/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// policyTTL adalah umur policy agency di enforcer sebelum dimuat ulang dari database.
const policyTTL = time.Minute

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	LoadAgencyPolicy(ctx context.Context, agencyID string) error
	Enforce(ctx context.Context, req EnforceRequest) (bool, error)

	ListRoles(ctx context.Context, agencyID string) ([]RoleResponse, error)
	CreateRole(ctx context.Context, agencyID string, req CreateRoleRequest) (RoleResponse, error)
	DeleteRole(ctx context.Context, agencyID, id string) error
	AssignRole(ctx context.Context, agencyID string, req AssignRoleRequest) error
	ListPermissions(ctx context.Context) ([]PermissionResponse, error)
}

type service struct {
	repo     Repository
	enforcer *casbin.Enforcer
	logger   *zap.Logger
	now      func() time.Time

	mu       sync.Mutex
	loadedAt map[string]time.Time
}

func NewService(repo Repository, enforcer *casbin.Enforcer, logger ...*zap.Logger) Service {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	return &service{
		repo:     repo,
		enforcer: enforcer,
		logger:   l,
		now:      time.Now,
		loadedAt: make(map[string]time.Time),
	}
}

func (s *service) LoadAgencyPolicy(ctx context.Context, agencyID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loadAgencyPolicyUnlocked(ctx, agencyID)
}

// loadAgencyPolicyUnlocked mengganti seluruh policy satu domain (agency) tanpa menyentuh agency lain.
func (s *service) loadAgencyPolicyUnlocked(ctx context.Context, agencyID string) error {
	userRoles, err := s.repo.GetUserRoles(ctx, agencyID)
	if err != nil {
		return err
	}
	rolePerms, err := s.repo.GetRolePermissions(ctx, agencyID)
	if err != nil {
		return err
	}

	if _, err := s.enforcer.RemoveFilteredGroupingPolicy(2, agencyID); err != nil {
		return err
	}
	if _, err := s.enforcer.RemoveFilteredPolicy(1, agencyID); err != nil {
		return err
	}

	for _, ur := range userRoles {
		if _, err := s.enforcer.AddGroupingPolicy(ur.UserID, ur.RoleID, agencyID); err != nil {
			return err
		}
	}
	for _, rp := range rolePerms {
		if _, err := s.enforcer.AddPolicy(rp.RoleID, agencyID, rp.Resource, rp.Action); err != nil {
			return err
		}
	}

	s.loadedAt[agencyID] = s.now()
	s.logger.Debug("agency policy loaded",
		zap.String("agency_id", agencyID),
		zap.Int("user_roles", len(userRoles)),
		zap.Int("role_permissions", len(rolePerms)),
	)
	return nil
}

func (s *service) invalidate(agencyID string) {
	s.mu.Lock()
	delete(s.loadedAt, agencyID)
	s.mu.Unlock()
}

func (s *service) Enforce(ctx context.Context, req EnforceRequest) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if at, ok := s.loadedAt[req.AgencyID]; !ok || s.now().Sub(at) > policyTTL {
		if err := s.loadAgencyPolicyUnlocked(ctx, req.AgencyID); err != nil {
			s.logger.Error("load agency policy failed", zap.String("agency_id", req.AgencyID), zap.Error(err))
			return false, err
		}
	}

	allowed, err := s.enforcer.Enforce(req.UserID, req.AgencyID, req.Resource, req.Action)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("user_id", req.UserID),
			zap.String("agency_id", req.AgencyID),
			zap.Error(err),
		)
		return false, err
	}

	if !allowed {
		s.logger.Info("rbac denied",
			zap.String("user_id", req.UserID),
			zap.String("agency_id", req.AgencyID),
			zap.String("resource", req.Resource),
			zap.String("action", req.Action),
			zap.Strings("roles", s.enforcer.GetRolesForUserInDomain(req.UserID, req.AgencyID)),
		)
	}

	return allowed, nil
}

func (s *service) ListRoles(ctx context.Context, agencyID string) ([]RoleResponse, error) {
	if _, err := uuid.Parse(agencyID); err != nil {
		return nil, rbacerrors.ErrInvalidAgencyID
	}

	roles, err := s.repo.ListRoles(ctx, agencyID)
	if err != nil {
		return nil, err
	}
	if len(roles) == 0 {
		return []RoleResponse{}, nil
	}

	ids := make([]string, len(roles))
	for i, r := range roles {
		ids[i] = r.ID
	}
	perms, err := s.repo.GetPermissionsByRoleIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byRole := make(map[string][]string)
	for _, p := range perms {
		byRole[p.RoleID] = append(byRole[p.RoleID], p.Resource+":"+p.Action)
	}

	out := make([]RoleResponse, len(roles))
	for i, r := range roles {
		names := byRole[r.ID]
		sort.Strings(names)
		if names == nil {
			names = []string{}
		}
		out[i] = RoleResponse{ID: r.ID, Name: r.Name, Description: r.Description, Permissions: names}
	}
	return out, nil
}

func (s *service) CreateRole(ctx context.Context, agencyID string, req CreateRoleRequest) (RoleResponse, error) {
	if _, err := uuid.Parse(agencyID); err != nil {
		return RoleResponse{}, rbacerrors.ErrInvalidAgencyID
	}

	if len(req.PermissionIDs) > 0 {
		n, err := s.repo.CountPermissions(ctx, req.PermissionIDs)
		if err != nil {
			return RoleResponse{}, err
		}
		if n != int64(len(req.PermissionIDs)) {
			return RoleResponse{}, rbacerrors.ErrUnknownPermission
		}
	}

	role := &RoleRow{
		ID:          uuid.NewString(),
		AgencyID:    agencyID,
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.repo.CreateRole(ctx, role, req.PermissionIDs); err != nil {
		return RoleResponse{}, mapRepositoryError(err)
	}

	perms, err := s.repo.GetPermissionsByRoleIDs(ctx, []string{role.ID})
	if err != nil {
		return RoleResponse{}, err
	}
	names := make([]string, 0, len(perms))
	for _, p := range perms {
		names = append(names, p.Resource+":"+p.Action)
	}
	sort.Strings(names)

	s.invalidate(agencyID)
	s.logger.Info("role created", zap.String("agency_id", agencyID), zap.String("role_id", role.ID))

	return RoleResponse{ID: role.ID, Name: role.Name, Description: role.Description, Permissions: names}, nil
}

func (s *service) DeleteRole(ctx context.Context, agencyID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return rbacerrors.ErrInvalidRoleID
	}

	n, err := s.repo.CountRoleUsers(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return rbacerrors.ErrRoleInUse
	}

	if err := s.repo.DeleteRole(ctx, agencyID, id); err != nil {
		return mapRepositoryError(err)
	}

	s.invalidate(agencyID)
	return nil
}

func (s *service) AssignRole(ctx context.Context, agencyID string, req AssignRoleRequest) error {
	if _, err := uuid.Parse(req.UserID); err != nil {
		return rbacerrors.ErrInvalidUserID
	}

	// role harus milik agency yang sama
	if _, err := s.repo.GetRoleByID(ctx, agencyID, req.RoleID); err != nil {
		return mapRepositoryError(err)
	}

	if err := s.repo.AssignUserRole(ctx, req.UserID, req.RoleID); err != nil {
		return err
	}

	s.invalidate(agencyID)
	s.logger.Info("role assigned",
		zap.String("agency_id", agencyID),
		zap.String("user_id", req.UserID),
		zap.String("role_id", req.RoleID),
	)
	return nil
}

func (s *service) ListPermissions(ctx context.Context) ([]PermissionResponse, error) {
	perms, err := s.repo.ListPermissions(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]PermissionResponse, len(perms))
	for i, p := range perms {
		out[i] = PermissionResponse{ID: p.ID, Resource: p.Resource, Action: p.Action, Label: p.Label, Category: p.Category}
	}
	return out, nil
}
