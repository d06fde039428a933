package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aksaddd/neighborhood-solar-experts/internal/domain/models"
)

func newClientService(t *testing.T) *ClientService {
	t.Helper()
	return &ClientService{DB: newTestDB(t), Config: newTestConfig()}
}

func seedClient(t *testing.T, svc *ClientService, name, email, phone, zip string) *models.Client {
	t.Helper()
	client := &models.Client{Name: name, Email: email, Phone: phone, Zip: zip}
	require.NoError(t, svc.CreateClient(client))
	return client
}

func TestCreateClientDefaultsToNewStatus(t *testing.T) {
	svc := newClientService(t)

	client := seedClient(t, svc, "Jane Doe", "jane@example.com", "555-0142", "10001")
	require.NotZero(t, client.ID)

	stored, err := svc.GetClientByID(client.ID)
	require.NoError(t, err)
	assert.Equal(t, "new", stored.Status)
	assert.Equal(t, "jane@example.com", stored.Email)
}

func TestGetAllClientsStatusFilter(t *testing.T) {
	svc := newClientService(t)

	seedClient(t, svc, "Jane Doe", "jane@example.com", "555-0142", "10001")
	contacted := seedClient(t, svc, "John Roe", "john@example.com", "555-0143", "10002")
	_, err := svc.UpdateClient(contacted.ID, map[string]interface{}{"status": "contacted"})
	require.NoError(t, err)

	clients, err := svc.GetAllClients(ClientListOptions{Status: "contacted"})
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, contacted.ID, clients[0].ID)

	clients, err = svc.GetAllClients(ClientListOptions{Status: "installed"})
	require.NoError(t, err)
	assert.Empty(t, clients)
}

func TestGetAllClientsSearch(t *testing.T) {
	svc := newClientService(t)

	jane := seedClient(t, svc, "Jane Doe", "jane@example.com", "555-0142", "10001")
	seedClient(t, svc, "John Roe", "john@example.com", "555-0143", "94016")

	for _, term := range []string{"jane", "Jane", "0142", "10001"} {
		clients, err := svc.GetAllClients(ClientListOptions{Search: term})
		require.NoError(t, err)
		require.Len(t, clients, 1, "search %q", term)
		assert.Equal(t, jane.ID, clients[0].ID)
	}

	clients, err := svc.GetAllClients(ClientListOptions{Search: "nobody"})
	require.NoError(t, err)
	assert.Empty(t, clients)
}

func TestGetAllClientsSortWhitelist(t *testing.T) {
	svc := newClientService(t)

	older := &models.Client{Name: "Bob", Email: "bob@example.com", Phone: "555-0001", Zip: "10001"}
	older.CreatedAt = time.Now().Add(-2 * time.Hour)
	require.NoError(t, svc.CreateClient(older))

	newer := &models.Client{Name: "Alice", Email: "alice@example.com", Phone: "555-0002", Zip: "10002"}
	newer.CreatedAt = time.Now().Add(-1 * time.Hour)
	require.NoError(t, svc.CreateClient(newer))

	// Anything outside the allow-list falls back to created_at descending.
	clients, err := svc.GetAllClients(ClientListOptions{SortField: "password; DROP TABLE clients"})
	require.NoError(t, err)
	require.Len(t, clients, 2)
	assert.Equal(t, newer.ID, clients[0].ID)

	clients, err = svc.GetAllClients(ClientListOptions{SortField: "name", SortOrder: "asc"})
	require.NoError(t, err)
	require.Len(t, clients, 2)
	assert.Equal(t, "Alice", clients[0].Name)
	assert.Equal(t, "Bob", clients[1].Name)
}

func TestUpdateClientNotFound(t *testing.T) {
	svc := newClientService(t)

	_, err := svc.UpdateClient(42, map[string]interface{}{"status": "contacted"})
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestUpdateClientStampsUpdatedAt(t *testing.T) {
	svc := newClientService(t)

	client := seedClient(t, svc, "Jane Doe", "jane@example.com", "555-0142", "10001")

	updated, err := svc.UpdateClient(client.ID, map[string]interface{}{
		"status": "quoted",
		"notes":  "left voicemail",
	})
	require.NoError(t, err)
	assert.Equal(t, "quoted", updated.Status)
	require.NotNil(t, updated.Notes)
	assert.Equal(t, "left voicemail", *updated.Notes)
	assert.False(t, updated.UpdatedAt.Before(client.UpdatedAt))
}

func TestDeleteClientCascadesToEstimates(t *testing.T) {
	clientSvc := newClientService(t)
	estimateSvc := &EstimateService{DB: clientSvc.DB, Config: clientSvc.Config}

	client := seedClient(t, clientSvc, "Jane Doe", "jane@example.com", "555-0142", "10001")

	first := &models.Estimate{ClientID: client.ID, SystemSize: strptr("6kW")}
	second := &models.Estimate{ClientID: client.ID, SystemSize: strptr("8kW")}
	require.NoError(t, estimateSvc.CreateEstimate(first))
	require.NoError(t, estimateSvc.CreateEstimate(second))

	require.NoError(t, clientSvc.DeleteClient(client.ID))

	var count int64
	require.NoError(t, clientSvc.DB.Model(&models.Estimate{}).Count(&count).Error)
	assert.Zero(t, count)

	_, err := estimateSvc.GetEstimateByID(first.ID)
	assert.ErrorIs(t, err, ErrEstimateNotFound)

	assert.ErrorIs(t, clientSvc.DeleteClient(client.ID), ErrClientNotFound)
}

func TestGetClientEstimatesNewestFirst(t *testing.T) {
	clientSvc := newClientService(t)
	estimateSvc := &EstimateService{DB: clientSvc.DB, Config: clientSvc.Config}

	client := seedClient(t, clientSvc, "Jane Doe", "jane@example.com", "555-0142", "10001")

	older := &models.Estimate{ClientID: client.ID, SystemSize: strptr("6kW")}
	older.CreatedAt = time.Now().Add(-time.Hour)
	require.NoError(t, estimateSvc.CreateEstimate(older))

	newer := &models.Estimate{ClientID: client.ID, SystemSize: strptr("8kW")}
	require.NoError(t, estimateSvc.CreateEstimate(newer))

	estimates, err := clientSvc.GetClientEstimates(client.ID)
	require.NoError(t, err)
	require.Len(t, estimates, 2)
	assert.Equal(t, newer.ID, estimates[0].ID)
	assert.Equal(t, older.ID, estimates[1].ID)
}

func TestGetClientEstimatesEmpty(t *testing.T) {
	svc := newClientService(t)

	client := seedClient(t, svc, "Jane Doe", "jane@example.com", "555-0142", "10001")

	estimates, err := svc.GetClientEstimates(client.ID)
	require.NoError(t, err)
	assert.NotNil(t, estimates)
	assert.Empty(t, estimates)
}
