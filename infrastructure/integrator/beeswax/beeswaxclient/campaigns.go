package beeswaxclient

import (
	"context"
	"fmt"
	"net/url"

	beeswaxdomain "github.com/vfg2006/campaign-qa-api/infrastructure/integrator/beeswax/domain"
)

func (c *BeeswaxClient) GetCampaignsByAlternativeID(ctx context.Context, alternativeID string) ([]beeswaxdomain.Campaign, error) {
	params := url.Values{}
	params.Add("alternative_id", alternativeID)

	var response beeswaxdomain.ListResponse[beeswaxdomain.Campaign]
	if err := c.get(ctx, "/campaigns?"+params.Encode(), &response); err != nil {
		return nil, err
	}
	return response.Results, nil
}

func (c *BeeswaxClient) GetLineItemsByCampaignID(ctx context.Context, campaignID int64) ([]beeswaxdomain.LineItem, error) {
	params := url.Values{}
	params.Add("campaign_id", fmt.Sprint(campaignID))

	var response beeswaxdomain.ListResponse[beeswaxdomain.LineItem]
	if err := c.get(ctx, "/line-items?"+params.Encode(), &response); err != nil {
		return nil, err
	}
	return response.Results, nil
}

func (c *BeeswaxClient) GetCreativesByLineItemID(ctx context.Context, lineItemID int64) ([]beeswaxdomain.Creative, error) {
	var response beeswaxdomain.ListResponse[beeswaxdomain.Creative]
	if err := c.get(ctx, fmt.Sprintf("/line-items/%d/creatives", lineItemID), &response); err != nil {
		return nil, err
	}
	return response.Results, nil
}
