package handler

import (
	"net/http"

	"github.com/vfg2006/campaign-qa-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-qa-api/pkg/middleware"
)

// GetMe retorna os dados do token usado na requisição
func GetMe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		body := map[string]any{
			"subject": claims.Subject,
			"role":    claims.Role,
		}
		if claims.ExpiresAt != nil {
			body["expires_at"] = claims.ExpiresAt.Time
		}

		writeJSON(w, http.StatusOK, body)
	}
}
