package beeswaxclient

import (
	"context"
	"io"
	"net/http"
	"sync"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	beeswaxdomain "github.com/vfg2006/campaign-qa-api/infrastructure/integrator/beeswax/domain"
	"github.com/vfg2006/campaign-qa-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const sessionCookie = "sessionid"

//go:generate mockgen -source=client.go -destination=../mocks/client_mock.go -package=mocks

type Client interface {
	Authenticate(ctx context.Context) error
	GetCampaignsByAlternativeID(ctx context.Context, alternativeID string) ([]beeswaxdomain.Campaign, error)
	GetLineItemsByCampaignID(ctx context.Context, campaignID int64) ([]beeswaxdomain.LineItem, error)
	GetCreativesByLineItemID(ctx context.Context, lineItemID int64) ([]beeswaxdomain.Creative, error)
	GetLineItemTargeting(ctx context.Context, lineItemIDs []int64) ([]beeswaxdomain.LineItemTargeting, error)
}

type BeeswaxClient struct {
	cfg        *config.Config
	httpClient *http.Client

	mu      sync.Mutex
	session string
}

func NewClient(cfg *config.Config) Client {
	return &BeeswaxClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Beeswax.Timeout,
		},
	}
}

func (c *BeeswaxClient) currentSession() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

// get faz um GET autenticado e decodifica o JSON da resposta em out
func (c *BeeswaxClient) get(ctx context.Context, path string, out any) error {
	body, err := c.getRaw(ctx, path, "application/json")
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		logrus.WithError(err).WithField("path", path).Error("beeswax: erro ao decodificar JSON")
		return errors.Wrapf(err, "error decoding response of %s", path)
	}
	return nil
}

// getRaw faz um GET autenticado; se a sessão expirou, faz login de novo e repete uma vez
func (c *BeeswaxClient) getRaw(ctx context.Context, path, accept string) ([]byte, error) {
	if c.currentSession() == "" {
		if err := c.Authenticate(ctx); err != nil {
			return nil, err
		}
	}

	body, err := c.doGet(ctx, path, accept)
	if errors.Is(err, beeswaxdomain.ErrSessionExpired) {
		logrus.WithField("path", path).Info("beeswax: sessão expirada, autenticando novamente")
		if err := c.Authenticate(ctx); err != nil {
			return nil, err
		}
		return c.doGet(ctx, path, accept)
	}
	return body, err
}

func (c *BeeswaxClient) doGet(ctx context.Context, path, accept string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.Beeswax.URL+path, nil)
	if err != nil {
		return nil, errors.Wrap(err, "error creating beeswax request")
	}
	req.Header.Set("Accept", accept)
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: c.currentSession()})

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).WithField("path", path).Error("beeswax: erro ao fazer a requisição")
		return nil, errors.Wrapf(err, "error requesting %s", path)
	}
	defer resp.Body.Close()

	return handleResponse(resp)
}

// handleResponse lê o corpo e converte respostas de erro em *ErrorResponse
func handleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "error reading beeswax response")
	}

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return body, nil
	}

	apiErr := &beeswaxdomain.ErrorResponse{StatusCode: resp.StatusCode}
	if len(body) > 0 {
		_ = json.Unmarshal(body, apiErr)
	}
	if apiErr.IsSessionExpired() {
		return nil, errors.Wrap(beeswaxdomain.ErrSessionExpired, apiErr.Error())
	}
	return nil, apiErr
}
