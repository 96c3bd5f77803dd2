package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeJob struct {
	accept    bool
	triggered int
}

func (f *fakeJob) TriggerManualSync() bool {
	f.triggered++
	return f.accept
}

func (f *fakeJob) GetStatus() map[string]any {
	return map[string]any{"sync_enabled": true}
}

func TestRunCronJob(t *testing.T) {
	tests := []struct {
		name       string
		cronType   string
		accept     bool
		wantStatus int
	}{
		{"brief-inbox aceito", CronJobTypeBriefInbox, true, http.StatusAccepted},
		{"brief-inbox em andamento", CronJobTypeBriefInbox, false, http.StatusConflict},
		{"tipo inválido", "meta", true, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := &fakeJob{accept: tt.accept}
			services := CronJobServices{CronJobTypeBriefInbox: job}
			rec := httptest.NewRecorder()

			req := withParam(httptest.NewRequest(http.MethodPost, "/v1/cron/"+tt.cronType, nil), "type", tt.cronType)
			RunCronJob(services).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestGetCronStatus(t *testing.T) {
	services := CronJobServices{CronJobTypeBriefInbox: &fakeJob{}}
	rec := httptest.NewRecorder()

	GetCronStatus(services).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"brief-inbox":{"sync_enabled":true}`)
}

type fakePinger struct{ err error }

func (f fakePinger) Ping(_ context.Context) error { return f.err }

func TestHealthcheck(t *testing.T) {
	rec := httptest.NewRecorder()
	HealthcheckHandler(nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	HealthcheckHandler(fakePinger{err: errors.New("down")}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
