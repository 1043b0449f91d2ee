package services

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"

	"github.com/greenvalley/community/internal/client/api"
	"github.com/greenvalley/community/internal/client/models"
	"github.com/greenvalley/community/internal/client/session"
	"github.com/greenvalley/community/internal/client/storage"
	"github.com/greenvalley/community/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewTextLogger(io.Discard, slog.LevelDebug)
}

func testSession(t *testing.T) *session.Store {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE keystore (key TEXT PRIMARY KEY, value BLOB NOT NULL);`)
	require.NoError(t, err)

	s := session.New(storage.NewSQLiteKV(db), testLogger())
	s.Load(context.Background())
	return s
}

// fakeGateway implements Gateway for unit tests. Results default to
// failure envelopes; tests set up what they need and inspect the recorded
// calls afterwards.
type fakeGateway struct {
	ListPostsRet         api.Result[[]models.Post]
	GetPostRet           api.Result[models.Post]
	ListCommentsRet      api.Result[[]models.Comment]
	CreatePostRet        api.Result[models.Post]
	CreateCommentRet     api.Result[models.Comment]
	UpdatePostRet        api.Result[models.Post]
	DeletePostRet        api.Result[struct{}]
	NextPostIDRet        string
	NextPostIDErr        error
	FindUsersRet         api.Result[[]models.User]
	RegisterUserRet      api.Result[models.User]
	GetProfileRet        api.Result[models.User]
	UpdateProfileRet     api.Result[models.User]
	ListBusinessesRet    api.Result[[]models.Business]
	CreateBusinessRet    api.Result[models.Business]
	ListNotificationsRet api.Result[[]models.Notification]
	CreateNotifRet       api.Result[models.Notification]
	UploadImageRet       api.Result[api.Upload]

	Calls []string

	LastCreatedPost    models.Post
	LastCreatedComment models.Comment
	LastCreatedNotif   models.Notification
	LastCreatedBiz     models.Business
	LastRegistered     models.User
	LastUpdatedProfile models.User
	LastFindEmail      string
}

func (f *fakeGateway) record(name string) { f.Calls = append(f.Calls, name) }

func (f *fakeGateway) count(name string) int {
	n := 0
	for _, c := range f.Calls {
		if c == name {
			n++
		}
	}
	return n
}

func (f *fakeGateway) ListPosts(ctx context.Context) api.Result[[]models.Post] {
	f.record("ListPosts")
	return f.ListPostsRet
}

func (f *fakeGateway) GetPost(ctx context.Context, id string) api.Result[models.Post] {
	f.record("GetPost")
	return f.GetPostRet
}

func (f *fakeGateway) ListComments(ctx context.Context, postID string) api.Result[[]models.Comment] {
	f.record("ListComments")
	return f.ListCommentsRet
}

func (f *fakeGateway) CreatePost(ctx context.Context, post models.Post) api.Result[models.Post] {
	f.record("CreatePost")
	f.LastCreatedPost = post
	return f.CreatePostRet
}

func (f *fakeGateway) CreateComment(ctx context.Context, comment models.Comment) api.Result[models.Comment] {
	f.record("CreateComment")
	f.LastCreatedComment = comment
	return f.CreateCommentRet
}

func (f *fakeGateway) UpdatePost(ctx context.Context, id string, post models.Post) api.Result[models.Post] {
	f.record("UpdatePost")
	return f.UpdatePostRet
}

func (f *fakeGateway) DeletePost(ctx context.Context, id string) api.Result[struct{}] {
	f.record("DeletePost")
	return f.DeletePostRet
}

func (f *fakeGateway) NextPostID(ctx context.Context) (string, error) {
	f.record("NextPostID")
	return f.NextPostIDRet, f.NextPostIDErr
}

func (f *fakeGateway) FindUsersByEmail(ctx context.Context, email string) api.Result[[]models.User] {
	f.record("FindUsersByEmail")
	f.LastFindEmail = email
	return f.FindUsersRet
}

func (f *fakeGateway) RegisterUser(ctx context.Context, user models.User) api.Result[models.User] {
	f.record("RegisterUser")
	f.LastRegistered = user
	return f.RegisterUserRet
}

func (f *fakeGateway) GetProfile(ctx context.Context) api.Result[models.User] {
	f.record("GetProfile")
	return f.GetProfileRet
}

func (f *fakeGateway) UpdateProfile(ctx context.Context, id string, user models.User) api.Result[models.User] {
	f.record("UpdateProfile")
	f.LastUpdatedProfile = user
	return f.UpdateProfileRet
}

func (f *fakeGateway) ListBusinesses(ctx context.Context) api.Result[[]models.Business] {
	f.record("ListBusinesses")
	return f.ListBusinessesRet
}

func (f *fakeGateway) CreateBusiness(ctx context.Context, business models.Business) api.Result[models.Business] {
	f.record("CreateBusiness")
	f.LastCreatedBiz = business
	return f.CreateBusinessRet
}

func (f *fakeGateway) ListNotifications(ctx context.Context) api.Result[[]models.Notification] {
	f.record("ListNotifications")
	return f.ListNotificationsRet
}

func (f *fakeGateway) CreateNotification(ctx context.Context, n models.Notification) api.Result[models.Notification] {
	f.record("CreateNotification")
	f.LastCreatedNotif = n
	return f.CreateNotifRet
}

func (f *fakeGateway) UploadImage(ctx context.Context, data []byte) api.Result[api.Upload] {
	f.record("UploadImage")
	return f.UploadImageRet
}
