package backend

import (
	"context"
	"fmt"

	"hotel-frontdesk/models"
)

// ListGuests fetches the full guest list.
func (c *Client) ListGuests(ctx context.Context) ([]models.Guest, error) {
	var guests []models.Guest
	if err := c.get(ctx, "/guests", &guests); err != nil {
		return nil, err
	}
	return guests, nil
}

// CreateGuest submits a new stay record and returns the created resource.
func (c *Client) CreateGuest(ctx context.Context, g models.Guest) (models.Guest, error) {
	var created models.Guest
	if err := c.post(ctx, "/guests", g, &created); err != nil {
		return models.Guest{}, err
	}
	return created, nil
}

// UpdateGuest applies a partial update to a guest. The backend echoes the
// updated record back.
func (c *Client) UpdateGuest(ctx context.Context, id int, fields map[string]any) (models.Guest, error) {
	var updated models.Guest
	path := fmt.Sprintf("/guests/%d", id)
	if err := c.put(ctx, path, fields, &updated); err != nil {
		return models.Guest{}, err
	}
	return updated, nil
}
