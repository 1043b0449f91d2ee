package api

import (
	"context"
	"net/http"

	"github.com/greenvalley/community/internal/client/models"
)

// ListBusinesses fetches the business directory.
func (c *Client) ListBusinesses(ctx context.Context) Result[[]models.Business] {
	return request[[]models.Business](ctx, c, http.MethodGet, "/businesses", nil)
}

// CreateBusiness submits a business-shaped record. Event posts are
// denormalized into this collection by the create-post fan-out.
func (c *Client) CreateBusiness(ctx context.Context, business models.Business) Result[models.Business] {
	return request[models.Business](ctx, c, http.MethodPost, "/businesses", business)
}
