package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aksaddd/neighborhood-solar-experts/utils"
)

func newAdminFixture(t *testing.T) *AdminService {
	t.Helper()
	svc := &AdminService{DB: newTestDB(t), Config: newTestConfig()}

	created, err := svc.EnsureDefaultAdmin("admin", "changeme123")
	require.NoError(t, err)
	require.True(t, created)
	return svc
}

func TestEnsureDefaultAdminIsIdempotent(t *testing.T) {
	svc := newAdminFixture(t)

	created, err := svc.EnsureDefaultAdmin("admin", "changeme123")
	require.NoError(t, err)
	assert.False(t, created)

	admin, err := svc.GetAdminByUsername("admin")
	require.NoError(t, err)
	assert.NotEqual(t, "changeme123", admin.Password, "passwords are stored hashed")
	assert.True(t, utils.CheckPasswordHash("changeme123", admin.Password))
}

func TestGetAdminNotFound(t *testing.T) {
	svc := newAdminFixture(t)

	_, err := svc.GetAdminByID(42)
	assert.ErrorIs(t, err, ErrAdminNotFound)

	_, err = svc.GetAdminByUsername("ghost")
	assert.ErrorIs(t, err, ErrAdminNotFound)
}

func TestChangePasswordRequiresCurrent(t *testing.T) {
	svc := newAdminFixture(t)

	admin, err := svc.GetAdminByUsername("admin")
	require.NoError(t, err)

	err = svc.ChangePassword(admin.ID, "wrong-password", "brand-new-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// The stored hash must be untouched after a failed attempt.
	unchanged, err := svc.GetAdminByUsername("admin")
	require.NoError(t, err)
	assert.True(t, utils.CheckPasswordHash("changeme123", unchanged.Password))
}

func TestChangePasswordRotatesHash(t *testing.T) {
	svc := newAdminFixture(t)

	admin, err := svc.GetAdminByUsername("admin")
	require.NoError(t, err)

	require.NoError(t, svc.ChangePassword(admin.ID, "changeme123", "brand-new-password"))

	rotated, err := svc.GetAdminByUsername("admin")
	require.NoError(t, err)
	assert.False(t, utils.CheckPasswordHash("changeme123", rotated.Password))
	assert.True(t, utils.CheckPasswordHash("brand-new-password", rotated.Password))
}
