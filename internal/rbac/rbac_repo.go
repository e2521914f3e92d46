package rbac

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=rbac_repo.go -destination=mock/rbac_repo_mock.go -package=mock
type Repository interface {
	GetUserRoles(ctx context.Context, agencyID string) ([]UserRoleRow, error)
	GetRolePermissions(ctx context.Context, agencyID string) ([]RolePermissionRow, error)

	// Management
	ListRoles(ctx context.Context, agencyID string) ([]RoleRow, error)
	GetRoleByID(ctx context.Context, agencyID, id string) (*RoleRow, error)
	CreateRole(ctx context.Context, role *RoleRow, permIDs []string) error
	DeleteRole(ctx context.Context, agencyID, id string) error
	CountRoleUsers(ctx context.Context, roleID string) (int64, error)
	AssignUserRole(ctx context.Context, userID, roleID string) error

	ListPermissions(ctx context.Context) ([]PermissionRow, error)
	CountPermissions(ctx context.Context, ids []string) (int64, error)
	GetPermissionsByRoleIDs(ctx context.Context, roleIDs []string) ([]RolePermissionRow, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

type RoleRow struct {
	ID          string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	AgencyID    string `gorm:"type:uuid;uniqueIndex:uq_role_agency_name"`
	Name        string `gorm:"uniqueIndex:uq_role_agency_name"`
	Description string
}

func (RoleRow) TableName() string { return "roles" }

type PermissionRow struct {
	ID       string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Resource string
	Action   string
	Label    string
	Category string
}

func (PermissionRow) TableName() string { return "permissions" }

type UserRoleRow struct {
	UserID string
	RoleID string
}

type RolePermissionRow struct {
	RoleID   string
	Resource string
	Action   string
}

func (r *repository) GetUserRoles(ctx context.Context, agencyID string) ([]UserRoleRow, error) {
	var result []UserRoleRow

	err := r.db.WithContext(ctx).
		Table("user_roles").
		Select("user_roles.user_id, user_roles.role_id").
		Joins("JOIN roles ON roles.id = user_roles.role_id").
		Where("roles.agency_id = ?", agencyID).
		Scan(&result).Error

	return result, err
}

func (r *repository) GetRolePermissions(ctx context.Context, agencyID string) ([]RolePermissionRow, error) {
	var result []RolePermissionRow

	err := r.db.WithContext(ctx).
		Table("role_permissions").
		Select("role_permissions.role_id, permissions.resource, permissions.action").
		Joins("JOIN roles ON roles.id = role_permissions.role_id").
		Joins("JOIN permissions ON permissions.id = role_permissions.permission_id").
		Where("roles.agency_id = ?", agencyID).
		Scan(&result).Error

	return result, err
}

func (r *repository) ListRoles(ctx context.Context, agencyID string) ([]RoleRow, error) {
	var result []RoleRow
	err := r.db.WithContext(ctx).Where("agency_id = ?", agencyID).Order("name").Find(&result).Error
	return result, err
}

func (r *repository) GetRoleByID(ctx context.Context, agencyID, id string) (*RoleRow, error) {
	var result RoleRow
	err := r.db.WithContext(ctx).Where("agency_id = ? AND id = ?", agencyID, id).First(&result).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *repository) CreateRole(ctx context.Context, role *RoleRow, permIDs []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(role).Error; err != nil {
			return err
		}
		for _, pID := range permIDs {
			if err := tx.Exec("INSERT INTO role_permissions (role_id, permission_id) VALUES (?, ?)", role.ID, pID).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *repository) DeleteRole(ctx context.Context, agencyID, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM role_permissions WHERE role_id = ?", id).Error; err != nil {
			return err
		}
		res := tx.Where("agency_id = ? AND id = ?", agencyID, id).Delete(&RoleRow{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *repository) CountRoleUsers(ctx context.Context, roleID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Table("user_roles").Where("role_id = ?", roleID).Count(&n).Error
	return n, err
}

func (r *repository) AssignUserRole(ctx context.Context, userID, roleID string) error {
	return r.db.WithContext(ctx).
		Exec("INSERT INTO user_roles (user_id, role_id) VALUES (?, ?) ON CONFLICT DO NOTHING", userID, roleID).Error
}

func (r *repository) ListPermissions(ctx context.Context) ([]PermissionRow, error) {
	var result []PermissionRow
	err := r.db.WithContext(ctx).Order("category, label").Find(&result).Error
	return result, err
}

func (r *repository) CountPermissions(ctx context.Context, ids []string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&PermissionRow{}).Where("id IN ?", ids).Count(&n).Error
	return n, err
}

func (r *repository) GetPermissionsByRoleIDs(ctx context.Context, roleIDs []string) ([]RolePermissionRow, error) {
	var result []RolePermissionRow
	err := r.db.WithContext(ctx).
		Table("role_permissions").
		Select("role_permissions.role_id, permissions.resource, permissions.action").
		Joins("JOIN permissions ON permissions.id = role_permissions.permission_id").
		Where("role_permissions.role_id IN ?", roleIDs).
		Scan(&result).Error
	return result, err
}
