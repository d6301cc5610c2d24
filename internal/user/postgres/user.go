package postgres

import (
	userDatamodel "github.com/dagimg/loan-management/internal/core/datamodel/user"
	"github.com/dagimg/loan-management/internal/user"
	"gorm.io/gorm"
)

// UserRepository implements the user.Repository interface using GORM.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) user.Repository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(userID int64) (*user.User, error) {
	var model userDatamodel.User
	err := r.db.Where("id = ? AND is_active = ?", userID, true).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, user.ErrNotFound
		}
		return nil, err
	}
	return user.FromDataModel(&model), nil
}

func (r *UserRepository) GetByEmail(email string) (*user.User, error) {
	var model userDatamodel.User
	err := r.db.Where("email = ?", email).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, user.ErrNotFound
		}
		return nil, err
	}
	return user.FromDataModel(&model), nil
}

func (r *UserRepository) GetPermissions(userID int64) ([]string, error) {
	var names []string
	err := r.db.
		Table("permissions").
		Select("permissions.name").
		Joins("JOIN user_permissions ON user_permissions.permission_id = permissions.id").
		Where("user_permissions.user_id = ?", userID).
		Scan(&names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}

func (r *UserRepository) Create(u *user.User) error {
	model := user.ToDataModel(u)
	if err := r.db.Create(model).Error; err != nil {
		return err
	}
	u.ID = model.ID
	u.CreatedAt = model.CreatedAt
	u.UpdatedAt = model.UpdatedAt
	return nil
}

// GrantPermissions links the named permissions to the user, creating the
// permission rows on first use so seeding works on an empty database.
func (r *UserRepository) GrantPermissions(userID int64, permissionNames []string, grantedBy *int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, name := range permissionNames {
			var perm userDatamodel.Permission
			err := tx.Where("name = ?", name).First(&perm).Error
			if err == gorm.ErrRecordNotFound {
				perm = userDatamodel.Permission{Name: name}
				if err := tx.Create(&perm).Error; err != nil {
					return err
				}
			} else if err != nil {
				return err
			}

			link := userDatamodel.UserPermission{
				UserID:       userID,
				PermissionID: perm.ID,
				GrantedBy:    grantedBy,
			}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *UserRepository) UpdatePassword(userID int64, passwordHash string) error {
	result := r.db.Model(&userDatamodel.User{}).
		Where("id = ?", userID).
		Update("password_hash", passwordHash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return user.ErrNotFound
	}
	return nil
}

func (r *UserRepository) List() ([]*user.User, error) {
	var models []userDatamodel.User
	if err := r.db.Order("id ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	users := make([]*user.User, 0, len(models))
	for i := range models {
		u := user.FromDataModel(&models[i])
		perms, err := r.GetPermissions(u.ID)
		if err != nil {
			return nil, err
		}
		u.Permissions = perms
		users = append(users, u)
	}
	return users, nil
}
