package beeswax

import (
	"context"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-qa-api/infrastructure/integrator/beeswax/beeswaxclient"
	beeswaxdomain "github.com/vfg2006/campaign-qa-api/infrastructure/integrator/beeswax/domain"
	"github.com/vfg2006/campaign-qa-api/internal/domain"
	"github.com/vfg2006/campaign-qa-api/pkg/utils"
)

type BeeswaxIntegrator struct {
	Client beeswaxclient.Client
}

func New(client beeswaxclient.Client) *BeeswaxIntegrator {
	return &BeeswaxIntegrator{
		Client: client,
	}
}

// FetchEntities busca as campanhas pelo alternative_id e, para cada uma, seus line items e creatives.
// A ordem é campanha, seus line items e, logo após cada line item, seus creatives.
// Uma entidade que aparece mais de uma vez (creative compartilhado entre line items)
// entra só na primeira ocorrência, com o primeiro pai.
func (s *BeeswaxIntegrator) FetchEntities(ctx context.Context, campaignAltIDs []string) ([]domain.PlatformEntity, error) {
	entities := make([]domain.PlatformEntity, 0)
	seen := make(map[string]struct{})
	add := func(entity domain.PlatformEntity) bool {
		key := entity.CanonicalID()
		if _, ok := seen[key]; ok {
			logrus.WithFields(logrus.Fields{
				"entity":    key,
				"parent_id": entity.ParentID,
			}).Debug("beeswax: entidade repetida ignorada")
			return false
		}
		seen[key] = struct{}{}
		entities = append(entities, entity)
		return true
	}

	for _, altID := range campaignAltIDs {
		campaigns, err := s.Client.GetCampaignsByAlternativeID(ctx, altID)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"alternative_id": altID,
				"error":          err.Error(),
			}).Error("beeswax: falha ao buscar campanha")
			return nil, errors.Wrapf(err, "error fetching campaign %s", altID)
		}

		if len(campaigns) == 0 {
			logrus.WithField("alternative_id", altID).Warn("beeswax: nenhuma campanha encontrada")
			continue
		}

		for _, campaign := range campaigns {
			if !add(FactoryCampaign(campaign)) {
				continue
			}

			lineItems, err := s.Client.GetLineItemsByCampaignID(ctx, campaign.ID)
			if err != nil {
				return nil, errors.Wrapf(err, "error fetching line items of campaign %d", campaign.ID)
			}

			for _, lineItem := range lineItems {
				if !add(FactoryLineItem(lineItem)) {
					continue
				}

				creatives, err := s.Client.GetCreativesByLineItemID(ctx, lineItem.ID)
				if err != nil {
					return nil, errors.Wrapf(err, "error fetching creatives of line item %d", lineItem.ID)
				}
				for _, creative := range creatives {
					add(FactoryCreative(creative, lineItem.ID))
				}
			}

			logrus.WithFields(logrus.Fields{
				"campaign_id": campaign.ID,
				"line_items":  len(lineItems),
			}).Debug("beeswax: campanha carregada")
		}
	}

	s.attachTargeting(ctx, entities)

	logrus.WithField("total_entities", len(entities)).Info("beeswax: entidades carregadas")

	return entities, nil
}

// attachTargeting preenche a segmentação dos line items a partir do export.
// Falha no export não interrompe a busca: os line items seguem sem Targeting.
func (s *BeeswaxIntegrator) attachTargeting(ctx context.Context, entities []domain.PlatformEntity) {
	ids := make([]int64, 0)
	positions := make(map[int64]int)
	for i, e := range entities {
		if e.Type != domain.EntityLineItem {
			continue
		}
		id, err := strconv.ParseInt(e.ID, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
		positions[id] = i
	}
	if len(ids) == 0 {
		return
	}

	rows, err := s.Client.GetLineItemTargeting(ctx, ids)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"line_items": len(ids),
			"error":      err.Error(),
		}).Warn("beeswax: falha ao exportar targeting dos line items")
		return
	}

	for _, row := range rows {
		i, ok := positions[row.LineItemID]
		if !ok {
			continue
		}
		entities[i].Targeting = FactoryTargeting(row)
	}
}

func FactoryCampaign(c beeswaxdomain.Campaign) domain.PlatformEntity {
	return domain.PlatformEntity{
		ID:          strconv.FormatInt(c.ID, 10),
		AltID:       c.AlternativeID,
		Name:        c.Name,
		Type:        domain.EntityCampaign,
		FlightStart: parseOptionalDate(c.StartDate),
		FlightEnd:   parseOptionalDate(c.EndDate),
	}
}

func FactoryLineItem(li beeswaxdomain.LineItem) domain.PlatformEntity {
	return domain.PlatformEntity{
		ID:          strconv.FormatInt(li.ID, 10),
		AltID:       li.AlternativeID,
		Name:        li.Name,
		Type:        domain.EntityLineItem,
		ParentID:    strconv.FormatInt(li.CampaignID, 10),
		FlightStart: parseOptionalDate(li.StartDate),
		FlightEnd:   parseOptionalDate(li.EndDate),
	}
}

func FactoryCreative(c beeswaxdomain.Creative, lineItemID int64) domain.PlatformEntity {
	return domain.PlatformEntity{
		ID:       strconv.FormatInt(c.ID, 10),
		AltID:    c.AlternativeID,
		Name:     c.Name,
		Type:     domain.EntityCreative,
		ParentID: strconv.FormatInt(lineItemID, 10),
		Creative: &domain.CreativeSpec{
			Width:    c.Width,
			Height:   c.Height,
			Type:     c.CreativeType,
			ClickURL: c.ClickURL,
		},
	}
}

func parseOptionalDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	t, err := utils.ParseFlexibleDate(value)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"value": value,
			"error": err.Error(),
		}).Warn("beeswax: erro ao converter data")
		return nil
	}
	return &t
}
