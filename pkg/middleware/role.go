package middleware

import (
	"net/http"
	"slices"

	"github.com/vfg2006/campaign-qa-api/internal/domain"
	"github.com/vfg2006/campaign-qa-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-qa-api/pkg/log"
)

// RoleMiddleware restringe o acesso às roles informadas
func RoleMiddleware(allowedRoles ...domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				log.ForContext(r.Context()).Warn("middleware: acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			if !slices.Contains(allowedRoles, claims.Role) {
				log.ForContext(r.Context()).WithFields(log.Fields{
					"path":  r.URL.Path,
					"error": "role " + string(claims.Role) + " sem acesso",
				}).Warnf("middleware: acesso negado para %s", claims.Subject)
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", map[string]any{
					"role":    claims.Role,
					"allowed": allowedRoles,
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// OperatorOnly permite apenas quem pode disparar execuções
func OperatorOnly() func(http.Handler) http.Handler {
	return RoleMiddleware(domain.RoleOperator)
}

func AllRoles() func(http.Handler) http.Handler {
	return RoleMiddleware(domain.RoleOperator, domain.RoleViewer)
}
