package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/Aksaddd/neighborhood-solar-experts/internal/domain/models"
	"github.com/Aksaddd/neighborhood-solar-experts/internal/infrastructure/config"
)

// InterfaceClientService defines the lead management contract
type InterfaceClientService interface {
	CreateClient(client *models.Client) error
	GetAllClients(opts ClientListOptions) ([]models.Client, error)
	GetClientByID(id uint) (*models.Client, error)
	GetClientEstimates(id uint) ([]models.Estimate, error)
	UpdateClient(id uint, updates map[string]interface{}) (*models.Client, error)
	DeleteClient(id uint) error
}

// ClientListOptions are the admin list filters
type ClientListOptions struct {
	Status    string // exact-match status filter
	Search    string // case-insensitive substring over name/email/phone/zip
	SortField string // restricted to clientSortColumns, falls back to created_at
	SortOrder string // "asc" or "desc" (default)
}

// Sortable columns. The sort fragment is always composed from this set,
// never from request text.
var clientSortColumns = map[string]bool{
	"name":       true,
	"email":      true,
	"created_at": true,
	"status":     true,
	"zip":        true,
}

// ClientService provides lead CRUD operations
type ClientService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewClientService creates a new client service
func NewClientService(db *gorm.DB, cfg *config.Config) InterfaceClientService {
	return &ClientService{
		DB:     db,
		Config: cfg,
	}
}

// CreateClient stores a new lead. Fresh submissions always start as "new".
func (s *ClientService) CreateClient(client *models.Client) error {
	if client.Status == "" {
		client.Status = "new"
	}
	return s.DB.Create(client).Error
}

// GetAllClients lists leads with optional filtering and sorting
func (s *ClientService) GetAllClients(opts ClientListOptions) ([]models.Client, error) {
	clients := make([]models.Client, 0)

	query := s.DB.Model(&models.Client{})

	if opts.Status != "" {
		query = query.Where("status = ?", opts.Status)
	}

	if opts.Search != "" {
		term := "%" + opts.Search + "%"
		query = query.Where(
			"name LIKE ? OR email LIKE ? OR phone LIKE ? OR zip LIKE ?",
			term, term, term, term,
		)
	}

	sortCol := "created_at"
	if clientSortColumns[opts.SortField] {
		sortCol = opts.SortField
	}
	direction := "DESC"
	if strings.EqualFold(opts.SortOrder, "asc") {
		direction = "ASC"
	}

	if err := query.Order(sortCol + " " + direction).Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

// GetClientByID fetches a single lead
func (s *ClientService) GetClientByID(id uint) (*models.Client, error) {
	var client models.Client
	if err := s.DB.First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return &client, nil
}

// GetClientEstimates returns a lead's estimates, newest first
func (s *ClientService) GetClientEstimates(id uint) ([]models.Estimate, error) {
	estimates := make([]models.Estimate, 0)
	err := s.DB.
		Where("client_id = ?", id).
		Order("created_at DESC, id DESC").
		Find(&estimates).Error
	if err != nil {
		return nil, err
	}
	return estimates, nil
}

// UpdateClient applies a pre-whitelisted update map and stamps updated_at
func (s *ClientService) UpdateClient(id uint, updates map[string]interface{}) (*models.Client, error) {
	client, err := s.GetClientByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.DB.Model(client).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetClientByID(id)
}

// DeleteClient removes a lead and all of its estimates in one transaction
func (s *ClientService) DeleteClient(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("client_id = ?", id).Delete(&models.Estimate{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Client{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrClientNotFound
		}
		return nil
	})
}
