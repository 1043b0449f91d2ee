package services

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/greenvalley/community/internal/client/models"
	"github.com/greenvalley/community/internal/client/session"
	"github.com/greenvalley/community/internal/logging"
)

// PostDraft is the create-post form payload.
type PostDraft struct {
	Content  string
	Location string
	Image    string
	Type     models.PostType
}

// CreateOutcome reports what the create pipeline actually did. Partial is
// set when the post was stored but its companion record (notification for
// alerts, business entry for events) was not; the post is never rolled
// back in that case.
type CreateOutcome struct {
	Post             models.Post
	Partial          bool
	CompanionMessage string
}

// PostService drives feed reading and the create-post pipeline.
type PostService interface {
	Feed(ctx context.Context) ([]models.Post, error)
	Get(ctx context.Context, id string) (*models.Post, []models.Comment, error)
	Comment(ctx context.Context, postID, content string) error
	Create(ctx context.Context, draft PostDraft) (*CreateOutcome, error)
	Update(ctx context.Context, id string, post models.Post) error
	Delete(ctx context.Context, id string) error
	AttachImage(ctx context.Context, path string) (string, error)
}

type postService struct {
	api     Gateway
	session *session.Store
	log     logging.Logger
	now     func() time.Time
}

func NewPostService(api Gateway, sess *session.Store, log logging.Logger) PostService {
	return &postService{api: api, session: sess, log: log, now: time.Now}
}

func (s *postService) Feed(ctx context.Context) ([]models.Post, error) {
	res := s.api.ListPosts(ctx)
	if !res.Success {
		return nil, errors.New(res.Message)
	}
	return res.Data, nil
}

func (s *postService) Get(ctx context.Context, id string) (*models.Post, []models.Comment, error) {
	postRes := s.api.GetPost(ctx, id)
	if !postRes.Success {
		return nil, nil, errors.New(postRes.Message)
	}

	commentsRes := s.api.ListComments(ctx, id)
	if !commentsRes.Success {
		// the post is still useful without its comments
		s.log.Warn(ctx, "failed to fetch comments", "post_id", id, "reason", commentsRes.Message)
		return &postRes.Data, nil, nil
	}
	return &postRes.Data, commentsRes.Data, nil
}

func (s *postService) Comment(ctx context.Context, postID, content string) error {
	if strings.TrimSpace(content) == "" {
		return ErrContentRequired
	}

	comment := models.Comment{
		PostID:    postID,
		Content:   content,
		Timestamp: s.now().UTC().Format(time.RFC3339),
	}
	if u := s.session.Current(); u != nil {
		comment.Author = u.Name
		comment.AuthorAvatar = u.Avatar
	}

	res := s.api.CreateComment(ctx, comment)
	if !res.Success {
		return errors.New(res.Message)
	}
	return nil
}

// Create runs the post pipeline: validate, compute the next identifier,
// store the post, then store the companion record its type calls for. The
// two writes are strictly sequential; the companion is only attempted after
// the post write succeeds.
func (s *postService) Create(ctx context.Context, draft PostDraft) (*CreateOutcome, error) {
	if strings.TrimSpace(draft.Content) == "" {
		return nil, ErrContentRequired
	}
	if strings.TrimSpace(draft.Location) == "" {
		return nil, ErrLocationRequired
	}

	id, err := s.api.NextPostID(ctx)
	if err != nil {
		s.log.Warn(ctx, "failed to compute next post id", "error", err.Error())
		return nil, ErrPostFailed
	}

	now := s.now().UTC().Format(time.RFC3339)
	post := models.Post{
		ID:        id,
		Content:   draft.Content,
		Location:  draft.Location,
		Image:     draft.Image,
		Type:      draft.Type,
		Timestamp: now,
	}
	if u := s.session.Current(); u != nil {
		post.Author = u.Name
		post.AuthorAvatar = u.Avatar
	}

	res := s.api.CreatePost(ctx, post)
	if !res.Success {
		s.log.Warn(ctx, "post creation failed", "reason", res.Message)
		return nil, ErrPostFailed
	}

	out := &CreateOutcome{Post: res.Data}

	switch draft.Type {
	case models.PostTypeAlert:
		n := models.Notification{
			ID:        id,
			Type:      models.NotificationTypeAlert,
			Title:     "New Community Alert",
			Message:   draft.Content,
			Timestamp: now,
			IsRead:    false,
			Priority:  models.PriorityHigh,
		}
		if nres := s.api.CreateNotification(ctx, n); !nres.Success {
			s.log.Warn(ctx, "companion notification failed", "post_id", id, "reason", nres.Message)
			out.Partial = true
			out.CompanionMessage = nres.Message
		}
	case models.PostTypeEvent:
		b := models.Business{
			ID:          id,
			Name:        draft.Content,
			Category:    "event",
			Address:     draft.Location,
			Image:       draft.Image,
			IsOpen:      true,
			Description: draft.Content,
		}
		if bres := s.api.CreateBusiness(ctx, b); !bres.Success {
			s.log.Warn(ctx, "companion business record failed", "post_id", id, "reason", bres.Message)
			out.Partial = true
			out.CompanionMessage = bres.Message
		}
	}

	return out, nil
}

func (s *postService) Update(ctx context.Context, id string, post models.Post) error {
	res := s.api.UpdatePost(ctx, id, post)
	if !res.Success {
		return errors.New(res.Message)
	}
	return nil
}

func (s *postService) Delete(ctx context.Context, id string) error {
	res := s.api.DeletePost(ctx, id)
	if !res.Success {
		return errors.New(res.Message)
	}
	return nil
}

// AttachImage reads a local image and runs it through the upload operation,
// returning the URL to embed in the post. An unreadable path is treated the
// same way the original client treats a denied photo permission.
func (s *postService) AttachImage(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		s.log.Warn(ctx, "cannot read image", "path", path, "error", err.Error())
		return "", ErrPhotoPermission
	}

	res := s.api.UploadImage(ctx, data)
	if !res.Success {
		return "", errors.New(res.Message)
	}
	return res.Data.URL, nil
}
