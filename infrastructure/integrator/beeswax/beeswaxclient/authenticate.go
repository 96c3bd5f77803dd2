package beeswaxclient

import (
	"bytes"
	"context"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	beeswaxdomain "github.com/vfg2006/campaign-qa-api/infrastructure/integrator/beeswax/domain"
)

// Authenticate faz login com email e senha e guarda o cookie de sessão
func (c *BeeswaxClient) Authenticate(ctx context.Context) error {
	payload, err := json.Marshal(beeswaxdomain.Credentials{
		Email:    c.cfg.Beeswax.Email,
		Password: c.cfg.Beeswax.Password,
	})
	if err != nil {
		return errors.Wrap(err, "error encoding credentials")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Beeswax.URL+"/authenticate", bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(err, "error creating authenticate request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "error authenticating on beeswax")
	}
	defer resp.Body.Close()

	if _, err := handleResponse(resp); err != nil {
		logrus.WithError(err).Error("beeswax: falha na autenticação")
		return errors.Wrap(err, "beeswax authentication failed")
	}

	for _, cookie := range resp.Cookies() {
		if cookie.Name == sessionCookie && cookie.Value != "" {
			c.mu.Lock()
			c.session = cookie.Value
			c.mu.Unlock()
			logrus.Debug("beeswax: autenticado com sucesso")
			return nil
		}
	}

	return errors.New("beeswax authentication failed: session cookie not found in response")
}
