package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/greenvalley/community/internal/client/models"
)

// GetProfile fetches the current profile record.
func (c *Client) GetProfile(ctx context.Context) Result[models.User] {
	return request[models.User](ctx, c, http.MethodGet, "/profile", nil)
}

// FindUsersByEmail queries the user collection with an exact email match.
// The login flow relies on the returned records carrying id, email, and the
// stored plaintext password, so decoded users are validated before the
// envelope is handed back.
func (c *Client) FindUsersByEmail(ctx context.Context, email string) Result[[]models.User] {
	res := request[[]models.User](ctx, c, http.MethodGet, "/users?email="+url.QueryEscape(email), nil)
	if !res.Success {
		return res
	}
	for _, u := range res.Data {
		res = checkValid(ctx, c, res, u)
		if !res.Success {
			return res
		}
	}
	return res
}

// RegisterUser creates a new account. The store assigns the identifier.
func (c *Client) RegisterUser(ctx context.Context, user models.User) Result[models.User] {
	res := request[models.User](ctx, c, http.MethodPost, "/users", user)
	if !res.Success {
		return res
	}
	return checkValid(ctx, c, res, res.Data)
}

// UpdateProfile replaces the fields of an existing user record.
func (c *Client) UpdateProfile(ctx context.Context, id string, user models.User) Result[models.User] {
	return request[models.User](ctx, c, http.MethodPut, "/users/"+id, user)
}
