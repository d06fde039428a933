package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aksaddd/neighborhood-solar-experts/internal/domain/models"
)

func newEstimateFixture(t *testing.T) (*EstimateService, *models.Client) {
	t.Helper()
	db := newTestDB(t)
	cfg := newTestConfig()

	clientSvc := &ClientService{DB: db, Config: cfg}
	client := &models.Client{Name: "Jane Doe", Email: "jane@example.com", Phone: "555-0142", Zip: "10001"}
	require.NoError(t, clientSvc.CreateClient(client))

	return &EstimateService{DB: db, Config: cfg}, client
}

func TestCreateEstimateUnknownClient(t *testing.T) {
	svc, _ := newEstimateFixture(t)

	estimate := &models.Estimate{ClientID: 999, SystemSize: strptr("6kW")}
	assert.ErrorIs(t, svc.CreateEstimate(estimate), ErrClientNotFound)

	var count int64
	require.NoError(t, svc.DB.Model(&models.Estimate{}).Count(&count).Error)
	assert.Zero(t, count, "a failed create must never leave a row behind")
}

func TestCreateAndGetEstimate(t *testing.T) {
	svc, client := newEstimateFixture(t)

	estimate := &models.Estimate{
		ClientID:         client.ID,
		SystemSize:       strptr("6kW"),
		EstimatedSavings: strptr("$1,400/yr"),
	}
	require.NoError(t, svc.CreateEstimate(estimate))
	require.NotZero(t, estimate.ID)

	stored, err := svc.GetEstimateByID(estimate.ID)
	require.NoError(t, err)
	assert.Equal(t, client.ID, stored.ClientID)
	require.NotNil(t, stored.SystemSize)
	assert.Equal(t, "6kW", *stored.SystemSize)
	assert.Nil(t, stored.PanelCount)
}

func TestGetEstimateNotFound(t *testing.T) {
	svc, _ := newEstimateFixture(t)

	_, err := svc.GetEstimateByID(42)
	assert.ErrorIs(t, err, ErrEstimateNotFound)
}

func TestUpdateEstimate(t *testing.T) {
	svc, client := newEstimateFixture(t)

	estimate := &models.Estimate{ClientID: client.ID, SystemSize: strptr("6kW")}
	require.NoError(t, svc.CreateEstimate(estimate))

	updated, err := svc.UpdateEstimate(estimate.ID, map[string]interface{}{
		"panel_count": "15",
		"notes":       "south-facing roof",
	})
	require.NoError(t, err)
	require.NotNil(t, updated.PanelCount)
	assert.Equal(t, "15", *updated.PanelCount)
	require.NotNil(t, updated.SystemSize)
	assert.Equal(t, "6kW", *updated.SystemSize, "untouched fields stay intact")

	_, err = svc.UpdateEstimate(999, map[string]interface{}{"notes": "x"})
	assert.ErrorIs(t, err, ErrEstimateNotFound)
}

func TestDeleteEstimate(t *testing.T) {
	svc, client := newEstimateFixture(t)

	estimate := &models.Estimate{ClientID: client.ID}
	require.NoError(t, svc.CreateEstimate(estimate))

	require.NoError(t, svc.DeleteEstimate(estimate.ID))

	_, err := svc.GetEstimateByID(estimate.ID)
	assert.ErrorIs(t, err, ErrEstimateNotFound)

	assert.ErrorIs(t, svc.DeleteEstimate(estimate.ID), ErrEstimateNotFound)
}
