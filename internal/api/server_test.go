package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-qa-api/internal/api/handler"
	"github.com/vfg2006/campaign-qa-api/internal/config"
	"github.com/vfg2006/campaign-qa-api/internal/domain"
	"github.com/vfg2006/campaign-qa-api/internal/usecases/authenticating"
	"github.com/vfg2006/campaign-qa-api/internal/usecases/qarunning/mocks"
	"go.uber.org/mock/gomock"
)

func TestServer_Routes(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockRunner(ctrl)
	cfg := &config.Config{Auth: config.Auth{Secret: "segredo"}}
	auth := authenticating.NewService(cfg.Auth)

	viewer, err := auth.IssueToken("ana", domain.RoleViewer)
	require.NoError(t, err)

	srv, err := New(cfg, runner, auth, handler.CronJobServices{}, nil)
	require.NoError(t, err)

	runner.EXPECT().ListRuns(gomock.Any(), gomock.Any()).Return([]*domain.QARun{}, nil)

	tests := []struct {
		name       string
		method     string
		path       string
		token      string
		wantStatus int
	}{
		{"healthcheck sem token", http.MethodGet, "/healthcheck", "", http.StatusOK},
		{"listagem sem token", http.MethodGet, "/v1/qa/runs", "", http.StatusUnauthorized},
		{"listagem como viewer", http.MethodGet, "/v1/qa/runs", viewer, http.StatusOK},
		{"execução como viewer", http.MethodPost, "/v1/qa/runs", viewer, http.StatusForbidden},
		{"rota inexistente", http.MethodGet, "/v1/nada", viewer, http.StatusNotFound},
		{"me", http.MethodGet, "/v1/me", viewer, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()

			srv.Handler().ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
