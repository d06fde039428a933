package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Aksaddd/neighborhood-solar-experts/internal/infrastructure/config"
)

func newJWTFixture(t *testing.T) (InterfaceJWTService, *gorm.DB, *config.Config) {
	t.Helper()
	db := newTestDB(t)
	cfg := newTestConfig()

	adminSvc := &AdminService{DB: db, Config: cfg}
	created, err := adminSvc.EnsureDefaultAdmin("admin", "changeme123")
	require.NoError(t, err)
	require.True(t, created)

	return NewJWTService(cfg, db), db, cfg
}

func TestLoginIssuesValidToken(t *testing.T) {
	svc, _, _ := newJWTFixture(t)

	result, err := svc.Login("admin", "changeme123")
	require.NoError(t, err)
	assert.Equal(t, "admin", result.Username)
	require.NotEmpty(t, result.Token)

	claims, err := svc.ExtractClaims(result.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.NotZero(t, claims.AdminID)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc, _, _ := newJWTFixture(t)

	_, wrongPassword := svc.Login("admin", "not-the-password")
	_, unknownUser := svc.Login("ghost", "changeme123")

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUser, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword, unknownUser)
}

func TestExpiredTokenRejected(t *testing.T) {
	_, db, cfg := newJWTFixture(t)

	expiredCfg := *cfg
	expiredCfg.TokenTTLHours = -1
	expired := NewJWTService(&expiredCfg, db)

	token, err := expired.GenerateToken(1, "admin")
	require.NoError(t, err)

	_, err = expired.ExtractClaims(token)
	assert.Error(t, err)
}

func TestMalformedTokenRejected(t *testing.T) {
	svc, _, _ := newJWTFixture(t)

	_, err := svc.ExtractClaims("not-a-token")
	assert.Error(t, err)

	_, err = svc.ExtractClaims("")
	assert.Error(t, err)
}

func TestTokenFromDifferentSecretRejected(t *testing.T) {
	svc, db, cfg := newJWTFixture(t)

	otherCfg := *cfg
	otherCfg.JWTSecretKey = "some-other-secret"
	other := NewJWTService(&otherCfg, db)

	token, err := other.GenerateToken(1, "admin")
	require.NoError(t, err)

	_, err = svc.ExtractClaims(token)
	assert.Error(t, err)
}
