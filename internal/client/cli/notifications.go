package cli

import (
	"context"
	"fmt"
)

// Notifications prints the notification inbox, unread entries marked.
func (a *App) Notifications(ctx context.Context) error {
	notifications, err := a.community.Notifications(ctx)
	if err != nil {
		printlnFn("Could not load notifications: " + err.Error())
		return err
	}

	if len(notifications) == 0 {
		printlnFn("No notifications.")
		return nil
	}
	for _, n := range notifications {
		marker := " "
		if !n.IsRead {
			marker = "*"
		}
		printlnFn(fmt.Sprintf("%s [%s] %s: %s", marker, n.Type, n.Title, n.Message))
	}
	return nil
}
