package services

import (
	"context"
	"errors"

	"github.com/greenvalley/community/internal/client/models"
	"github.com/greenvalley/community/internal/client/session"
	"github.com/greenvalley/community/internal/logging"
)

// CommunityService reads the directory, the notification inbox, and the
// profile, and applies profile edits.
type CommunityService interface {
	Businesses(ctx context.Context) ([]models.Business, error)
	Notifications(ctx context.Context) ([]models.Notification, error)
	Profile(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, user models.User) (*models.User, error)
}

type communityService struct {
	api     Gateway
	session *session.Store
	log     logging.Logger
}

func NewCommunityService(api Gateway, sess *session.Store, log logging.Logger) CommunityService {
	return &communityService{api: api, session: sess, log: log}
}

func (s *communityService) Businesses(ctx context.Context) ([]models.Business, error) {
	res := s.api.ListBusinesses(ctx)
	if !res.Success {
		return nil, errors.New(res.Message)
	}
	return res.Data, nil
}

func (s *communityService) Notifications(ctx context.Context) ([]models.Notification, error) {
	res := s.api.ListNotifications(ctx)
	if !res.Success {
		return nil, errors.New(res.Message)
	}
	return res.Data, nil
}

// Profile prefers the logged-in user; without a session it falls back to
// the store's profile record.
func (s *communityService) Profile(ctx context.Context) (*models.User, error) {
	if u := s.session.Current(); u != nil {
		return u, nil
	}

	res := s.api.GetProfile(ctx)
	if !res.Success {
		return nil, errors.New(res.Message)
	}
	return &res.Data, nil
}

// UpdateProfile replaces the whole user record (the store has no partial
// client mutation) and re-settles the session with the updated copy.
func (s *communityService) UpdateProfile(ctx context.Context, user models.User) (*models.User, error) {
	res := s.api.UpdateProfile(ctx, user.ID, user)
	if !res.Success {
		return nil, errors.New(res.Message)
	}

	updated := res.Data
	updated.Password = ""
	if cur := s.session.Current(); cur != nil && cur.ID == updated.ID {
		if err := s.session.Set(ctx, &updated); err != nil {
			s.log.Warn(ctx, "profile updated but session not persisted", "error", err.Error())
		}
	}
	return &updated, nil
}
