package cli

import (
	"context"
	"fmt"

	"github.com/greenvalley/community/internal/client/models"
)

// Feed prints the community feed, newest data as the store returns it.
func (a *App) Feed(ctx context.Context) error {
	posts, err := a.posts.Feed(ctx)
	if err != nil {
		printlnFn("Could not load the feed: " + err.Error())
		return err
	}

	if len(posts) == 0 {
		printlnFn("The feed is empty.")
		return nil
	}
	for _, p := range posts {
		printlnFn(formatPost(p))
	}
	return nil
}

// Show prints a single post with its comments.
func (a *App) Show(ctx context.Context, id string) error {
	post, comments, err := a.posts.Get(ctx, id)
	if err != nil {
		printlnFn("Could not load post " + id + ": " + err.Error())
		return err
	}

	printlnFn(formatPost(*post))
	if post.Image != "" {
		printlnFn("  image: " + post.Image)
	}
	if len(comments) == 0 {
		printlnFn("  no comments")
		return nil
	}
	for _, c := range comments {
		printlnFn(fmt.Sprintf("  %s: %s", c.Author, c.Content))
	}
	return nil
}

// Comment prompts for a comment body and attaches it to the post.
func (a *App) Comment(ctx context.Context, id string) error {
	content, err := getSimpleText(a.reader, "Enter comment", a.out)
	if err != nil {
		return err
	}

	if err := a.posts.Comment(ctx, id, content); err != nil {
		printlnFn(err.Error())
		return err
	}
	printlnFn("Comment added")
	return nil
}

func formatPost(p models.Post) string {
	author := p.Author
	if author == "" {
		author = "anonymous"
	}
	return fmt.Sprintf("[%s] (%s) %s: %s @ %s", p.ID, p.Type, author, p.Content, p.Location)
}
