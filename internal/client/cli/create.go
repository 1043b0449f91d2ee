package cli

import (
	"context"

	"github.com/greenvalley/community/internal/client/models"
	"github.com/greenvalley/community/internal/client/services"
)

// Create runs the interactive post form: content, location, type, and an
// optional image. An unreadable image path prints the permission message
// and the post continues without an image, matching the mobile client.
func (a *App) Create(ctx context.Context) error {
	content, err := GetMultiline(a.reader, "What's happening in the neighborhood?", a.out)
	if err != nil {
		return err
	}
	location, err := getSimpleText(a.reader, "Location", a.out)
	if err != nil {
		return err
	}
	kind, err := getSimpleText(a.reader, "Type (general/alert/event, default general)", a.out)
	if err != nil {
		return err
	}

	draft := services.PostDraft{
		Content:  content,
		Location: location,
		Type:     parsePostType(kind),
	}

	imagePath, err := getSimpleText(a.reader, "Image path (leave empty to skip)", a.out)
	if err != nil {
		return err
	}
	if imagePath != "" {
		url, aerr := a.posts.AttachImage(ctx, imagePath)
		if aerr != nil {
			printlnFn(aerr.Error())
		} else {
			draft.Image = url
		}
	}

	outcome, err := a.posts.Create(ctx, draft)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	printlnFn(services.MsgPostShared)
	if outcome.Partial {
		printlnFn("Note: the post was saved but its " + string(draft.Type) + " record was not: " + outcome.CompanionMessage)
	}
	return nil
}

func parsePostType(s string) models.PostType {
	switch s {
	case "alert":
		return models.PostTypeAlert
	case "event":
		return models.PostTypeEvent
	default:
		return models.PostTypeGeneral
	}
}
