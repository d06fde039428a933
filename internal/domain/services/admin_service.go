package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Aksaddd/neighborhood-solar-experts/internal/domain/models"
	"github.com/Aksaddd/neighborhood-solar-experts/internal/infrastructure/config"
	"github.com/Aksaddd/neighborhood-solar-experts/utils"
)

// InterfaceAdminService defines the admin account service contract
type InterfaceAdminService interface {
	GetAdminByID(id uint) (*models.Admin, error)
	GetAdminByUsername(username string) (*models.Admin, error)
	ChangePassword(id uint, currentPassword, newPassword string) error
	EnsureDefaultAdmin(username, password string) (bool, error)
}

// AdminService provides admin account operations
type AdminService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewAdminService creates a new admin service
func NewAdminService(db *gorm.DB, cfg *config.Config) InterfaceAdminService {
	return &AdminService{
		DB:     db,
		Config: cfg,
	}
}

// GetAdminByID fetches an admin by id
func (s *AdminService) GetAdminByID(id uint) (*models.Admin, error) {
	var admin models.Admin
	if err := s.DB.First(&admin, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return &admin, nil
}

// GetAdminByUsername fetches an admin by username
func (s *AdminService) GetAdminByUsername(username string) (*models.Admin, error) {
	var admin models.Admin
	if err := s.DB.Where("username = ?", username).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return &admin, nil
}

// ChangePassword re-hashes and stores a new password after verifying the
// current one. Existing tokens stay valid until they expire; sessions are
// independent of password generation.
func (s *AdminService) ChangePassword(id uint, currentPassword, newPassword string) error {
	admin, err := s.GetAdminByID(id)
	if err != nil {
		return err
	}

	if !utils.CheckPasswordHash(currentPassword, admin.Password) {
		return ErrInvalidCredentials
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.DB.Model(admin).Update("password", hash).Error
}

// EnsureDefaultAdmin creates the default admin account when no admin exists.
// Returns true when an account was created.
func (s *AdminService) EnsureDefaultAdmin(username, password string) (bool, error) {
	var count int64
	if err := s.DB.Model(&models.Admin{}).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return false, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := models.Admin{
		Username: username,
		Password: hash,
	}
	if err := s.DB.Create(&admin).Error; err != nil {
		return false, err
	}
	return true, nil
}
