package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Aksaddd/neighborhood-solar-experts/internal/domain/models"
	"github.com/Aksaddd/neighborhood-solar-experts/internal/infrastructure/config"
)

// InterfaceEstimateService defines the estimate management contract
type InterfaceEstimateService interface {
	CreateEstimate(estimate *models.Estimate) error
	GetEstimateByID(id uint) (*models.Estimate, error)
	UpdateEstimate(id uint, updates map[string]interface{}) (*models.Estimate, error)
	DeleteEstimate(id uint) error
}

// EstimateService provides estimate CRUD operations
type EstimateService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewEstimateService creates a new estimate service
func NewEstimateService(db *gorm.DB, cfg *config.Config) InterfaceEstimateService {
	return &EstimateService{
		DB:     db,
		Config: cfg,
	}
}

// CreateEstimate stores an estimate after verifying the owning client exists.
// A client deleted between the check and the insert is rejected by the
// schema's foreign key and surfaces as a storage error.
func (s *EstimateService) CreateEstimate(estimate *models.Estimate) error {
	var count int64
	if err := s.DB.Model(&models.Client{}).Where("id = ?", estimate.ClientID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrClientNotFound
	}

	return s.DB.Create(estimate).Error
}

// GetEstimateByID fetches a single estimate
func (s *EstimateService) GetEstimateByID(id uint) (*models.Estimate, error) {
	var estimate models.Estimate
	if err := s.DB.First(&estimate, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEstimateNotFound
		}
		return nil, err
	}
	return &estimate, nil
}

// UpdateEstimate applies a pre-whitelisted update map and stamps updated_at
func (s *EstimateService) UpdateEstimate(id uint, updates map[string]interface{}) (*models.Estimate, error) {
	estimate, err := s.GetEstimateByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.DB.Model(estimate).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetEstimateByID(id)
}

// DeleteEstimate removes a single estimate
func (s *EstimateService) DeleteEstimate(id uint) error {
	result := s.DB.Delete(&models.Estimate{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEstimateNotFound
	}
	return nil
}
