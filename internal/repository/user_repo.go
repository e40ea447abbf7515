package repository

import (
	"context"

	"gorm.io/gorm"

	"bus_depot/internal/models"
)

// UserRepository also serves as the credential store behind the auth
// middleware (lookups by email).
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) Get(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, translateGet(err, "user", id)
	}
	return &user, nil
}

// GetByEmail resolves a token subject to its account. A missing account
// is reported as ErrNotFound; the middleware folds that into its uniform
// 401 so a token for a deleted user looks like any other bad token.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		return nil, translateGet(err, "user", email)
	}
	return &user, nil
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	return translateCreate(r.db.WithContext(ctx).Create(user).Error, "user", user.Email)
}

func (r *UserRepository) Update(ctx context.Context, id uint, user *models.User) error {
	res := r.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", id).
		Select("first_name", "last_name", "email", "password", "phone_number", "is_admin").
		Updates(user)
	if res.Error != nil && isUniqueViolation(res.Error) {
		return translateCreate(res.Error, "user", user.Email)
	}
	if err := checkAffected(res, "user", id); err != nil {
		return err
	}
	user.ID = id
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.User{}, "id = ?", id)
	return checkAffected(res, "user", id)
}
