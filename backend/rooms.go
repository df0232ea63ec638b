package backend

import (
	"context"
	"fmt"

	"hotel-frontdesk/models"
)

// ListRooms fetches the room inventory.
func (c *Client) ListRooms(ctx context.Context) ([]models.Room, error) {
	var rooms []models.Room
	if err := c.get(ctx, "/rooms", &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

// UpdateRoom applies a partial update to a room (status changes and the
// denormalized current-guest fields).
func (c *Client) UpdateRoom(ctx context.Context, id int, fields map[string]any) (models.Room, error) {
	var updated models.Room
	path := fmt.Sprintf("/rooms/%d", id)
	if err := c.put(ctx, path, fields, &updated); err != nil {
		return models.Room{}, err
	}
	return updated, nil
}
