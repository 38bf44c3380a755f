package upstream

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"bagmarket-api/internal/models"
)

// SurpriseBags lists bag listings, optionally scoped to a neighbourhood.
func (c *Client) SurpriseBags(ctx context.Context, neighbourhood string) ([]models.SurpriseBag, error) {
	var params url.Values
	if neighbourhood != "" {
		params = url.Values{}
		params.Set("neighbourhood", neighbourhood)
	}

	resp, err := c.get(ctx, "surprise bags", "/surprise-bags", params)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		discard(resp)
		return nil, statusError("surprise bags", resp.StatusCode)
	}

	var bags []models.SurpriseBag
	if err := decode(resp, "surprise bags", &bags); err != nil {
		return nil, err
	}
	return bags, nil
}

// SurpriseBagByID fetches a single listing.
func (c *Client) SurpriseBagByID(ctx context.Context, id int) (*models.SurpriseBag, error) {
	resp, err := c.get(ctx, "surprise bag by id", "/surprise-bags/"+strconv.Itoa(id), nil)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		discard(resp)
		return nil, statusError("surprise bag by id", resp.StatusCode)
	}

	var bag models.SurpriseBag
	if err := decode(resp, "surprise bag by id", &bag); err != nil {
		return nil, err
	}
	return &bag, nil
}
