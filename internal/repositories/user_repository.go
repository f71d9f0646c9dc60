package repositories

import (
	"errors"

	"fixmate_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

type UserRepository interface {
	FindByID(id string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	FindByResetToken(token string) (*models.User, error)
	FindByVerifyToken(token string) (*models.User, error)
	Create(user *models.User) error
	Update(user *models.User) error

	CreateProviderProfile(profile *models.ProviderProfile) error
	UpdateProviderProfile(profile *models.ProviderProfile) error
	FindProviders() ([]models.User, error)
	FindPendingProviders() ([]models.User, error)
}

type UserRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) FindByID(id string) (*models.User, error) {
	var user models.User
	err := r.db.Preload("ProviderProfile").First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Preload("ProviderProfile").First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByResetToken(token string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "reset_token = ? AND reset_token <> ''", token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByVerifyToken(token string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "email_verify_token = ? AND email_verify_token <> ''", token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) Create(user *models.User) error {
	var existing models.User
	if err := r.db.Unscoped().Where("email = ?", user.Email).First(&existing).Error; err == nil {
		return ErrUserAlreadyExists
	}
	return r.db.Create(user).Error
}

func (r *UserRepositoryImpl) Update(user *models.User) error {
	result := r.db.Save(user)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) CreateProviderProfile(profile *models.ProviderProfile) error {
	return r.db.Create(profile).Error
}

func (r *UserRepositoryImpl) UpdateProviderProfile(profile *models.ProviderProfile) error {
	result := r.db.Save(profile)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// FindProviders returns active provider accounts for the public directory,
// newest first.
func (r *UserRepositoryImpl) FindProviders() ([]models.User, error) {
	var users []models.User
	err := r.db.Preload("ProviderProfile").
		Where("role = ? AND is_active = ?", models.UserRoleProvider, true).
		Order("created_at DESC").
		Find(&users).Error
	return users, err
}

// FindPendingProviders returns providers awaiting verification, newest first.
func (r *UserRepositoryImpl) FindPendingProviders() ([]models.User, error) {
	var users []models.User
	err := r.db.
		Joins("JOIN provider_profiles ON provider_profiles.user_id = users.id").
		Where("users.role = ? AND provider_profiles.verification_status = ?",
			models.UserRoleProvider, models.VerificationPending).
		Preload("ProviderProfile").
		Order("provider_profiles.submitted_at DESC").
		Find(&users).Error
	return users, err
}
