package beeswaxdomain

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var ErrSessionExpired = errors.New("beeswax session expired")

// ErrorResponse representa a estrutura de erro da API da Beeswax
type ErrorResponse struct {
	StatusCode int      `json:"-"`
	Errors     []string `json:"errors"`
	Message    string   `json:"message"`
}

func (e *ErrorResponse) Error() string {
	details := e.Message
	if len(e.Errors) > 0 {
		details = strings.Join(e.Errors, "; ")
	}
	return fmt.Sprintf("beeswax api error (status %d): %s", e.StatusCode, details)
}

// IsSessionExpired indica se a sessão precisa ser renovada com novo login
func (e *ErrorResponse) IsSessionExpired() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}
