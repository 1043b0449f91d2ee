package api

import (
	"context"
	"net/http"

	"github.com/greenvalley/community/internal/client/models"
)

// ListNotifications fetches the notification inbox.
func (c *Client) ListNotifications(ctx context.Context) Result[[]models.Notification] {
	return request[[]models.Notification](ctx, c, http.MethodGet, "/notifications", nil)
}

// CreateNotification submits a notification record. Alert posts produce one
// via the create-post fan-out.
func (c *Client) CreateNotification(ctx context.Context, n models.Notification) Result[models.Notification] {
	return request[models.Notification](ctx, c, http.MethodPost, "/notifications", n)
}
