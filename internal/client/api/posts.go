package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/greenvalley/community/internal/client/models"
)

// ListPosts fetches the whole feed.
func (c *Client) ListPosts(ctx context.Context) Result[[]models.Post] {
	return request[[]models.Post](ctx, c, http.MethodGet, "/posts", nil)
}

// GetPost fetches a single post by id.
func (c *Client) GetPost(ctx context.Context, id string) Result[models.Post] {
	res := request[models.Post](ctx, c, http.MethodGet, "/posts/"+id, nil)
	if !res.Success {
		return res
	}
	return checkValid(ctx, c, res, res.Data)
}

// ListComments fetches the comments of a post.
func (c *Client) ListComments(ctx context.Context, postID string) Result[[]models.Comment] {
	return request[[]models.Comment](ctx, c, http.MethodGet, "/posts/"+postID+"/comments", nil)
}

// CreatePost submits a new post. The caller assigns the identifier
// (see NextPostID) before submitting.
func (c *Client) CreatePost(ctx context.Context, post models.Post) Result[models.Post] {
	res := request[models.Post](ctx, c, http.MethodPost, "/posts", post)
	if !res.Success {
		return res
	}
	return checkValid(ctx, c, res, res.Data)
}

// CreateComment submits a new comment.
func (c *Client) CreateComment(ctx context.Context, comment models.Comment) Result[models.Comment] {
	return request[models.Comment](ctx, c, http.MethodPost, "/comments", comment)
}

// UpdatePost replaces the fields of an existing post.
func (c *Client) UpdatePost(ctx context.Context, id string, post models.Post) Result[models.Post] {
	return request[models.Post](ctx, c, http.MethodPut, "/posts/"+id, post)
}

// DeletePost removes a post.
func (c *Client) DeletePost(ctx context.Context, id string) Result[struct{}] {
	return request[struct{}](ctx, c, http.MethodDelete, "/posts/"+id, nil)
}

// NextPostID computes the identifier for a new post: fetch the collection,
// parse every id as an integer (unparseable ids are skipped, not faults),
// and return max+1 as a string. The scheme is best-effort and non-atomic;
// two concurrent creations can compute the same id. The backing store does
// not assign identifiers itself, so the race is documented rather than
// hidden.
func (c *Client) NextPostID(ctx context.Context) (string, error) {
	res := c.ListPosts(ctx)
	if !res.Success {
		return "", errors.New(res.Message)
	}

	max := 0
	for _, p := range res.Data {
		n, err := strconv.Atoi(p.ID)
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return strconv.Itoa(max + 1), nil
}
