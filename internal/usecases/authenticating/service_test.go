package authenticating

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-qa-api/internal/config"
	"github.com/vfg2006/campaign-qa-api/internal/domain"
	"github.com/vfg2006/campaign-qa-api/pkg/apiErrors"
)

func newTestService(now time.Time) *Service {
	s := NewService(config.Auth{Secret: "segredo", TokenTTL: time.Hour}).(*Service)
	s.now = func() time.Time { return now }
	return s
}

func TestIssueAndValidateToken(t *testing.T) {
	now := time.Now()
	s := newTestService(now)

	token, err := s.IssueToken(" ana ", domain.RoleOperator)
	require.NoError(t, err)

	claims, err := s.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "ana", claims.Subject)
	assert.True(t, claims.IsOperator())
	assert.WithinDuration(t, now.Add(time.Hour), claims.ExpiresAt.Time, time.Second)
}

func TestIssueToken_Errors(t *testing.T) {
	s := newTestService(time.Now())

	tests := []struct {
		name     string
		subject  string
		role     domain.Role
		wantErr  error
		wantCode string
	}{
		{"subject vazio", "  ", domain.RoleViewer, ErrMissingSubject, apiErrors.ErrMissingRequiredData},
		{"role desconhecida", "ana", domain.Role("admin"), ErrInvalidRole, apiErrors.ErrInvalidRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.IssueToken(tt.subject, tt.role)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantCode, CodeOf(err))
		})
	}
}

func TestValidateToken_Errors(t *testing.T) {
	issuedAt := time.Now().Add(-2 * time.Hour)
	expired, err := newTestService(issuedAt).IssueToken("ana", domain.RoleViewer)
	require.NoError(t, err)

	other := NewService(config.Auth{Secret: "outro"}).(*Service)
	foreign, err := other.IssueToken("ana", domain.RoleViewer)
	require.NoError(t, err)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, domain.Claims{Subject: "ana"})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	s := newTestService(time.Now())

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{"token expirado", expired, ErrExpiredToken},
		{"assinado com outro segredo", foreign, ErrInvalidToken},
		{"sem assinatura", unsigned, ErrInvalidToken},
		{"texto qualquer", "abc", ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := s.ValidateToken(tt.token)
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, IsAuthorizationError(err))
		})
	}
}
