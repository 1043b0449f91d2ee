package services

import (
	"context"

	"github.com/greenvalley/community/internal/client/api"
	"github.com/greenvalley/community/internal/client/models"
)

// Gateway is the surface of the API client the services depend on.
// *api.Client satisfies it; tests provide fakes.
type Gateway interface {
	ListPosts(ctx context.Context) api.Result[[]models.Post]
	GetPost(ctx context.Context, id string) api.Result[models.Post]
	ListComments(ctx context.Context, postID string) api.Result[[]models.Comment]
	CreatePost(ctx context.Context, post models.Post) api.Result[models.Post]
	CreateComment(ctx context.Context, comment models.Comment) api.Result[models.Comment]
	UpdatePost(ctx context.Context, id string, post models.Post) api.Result[models.Post]
	DeletePost(ctx context.Context, id string) api.Result[struct{}]
	NextPostID(ctx context.Context) (string, error)

	FindUsersByEmail(ctx context.Context, email string) api.Result[[]models.User]
	RegisterUser(ctx context.Context, user models.User) api.Result[models.User]
	GetProfile(ctx context.Context) api.Result[models.User]
	UpdateProfile(ctx context.Context, id string, user models.User) api.Result[models.User]

	ListBusinesses(ctx context.Context) api.Result[[]models.Business]
	CreateBusiness(ctx context.Context, business models.Business) api.Result[models.Business]
	ListNotifications(ctx context.Context) api.Result[[]models.Notification]
	CreateNotification(ctx context.Context, n models.Notification) api.Result[models.Notification]

	UploadImage(ctx context.Context, data []byte) api.Result[api.Upload]
}
