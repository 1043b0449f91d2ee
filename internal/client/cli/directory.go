package cli

import (
	"context"
	"fmt"
)

// Directory prints the local business directory.
func (a *App) Directory(ctx context.Context) error {
	businesses, err := a.community.Businesses(ctx)
	if err != nil {
		printlnFn("Could not load the directory: " + err.Error())
		return err
	}

	if len(businesses) == 0 {
		printlnFn("No businesses listed yet.")
		return nil
	}
	for _, b := range businesses {
		status := "closed"
		if b.IsOpen {
			status = "open"
		}
		printlnFn(fmt.Sprintf("[%s] %s (%s, %s) %s", b.ID, b.Name, b.Category, status, b.Address))
		if b.Description != "" {
			printlnFn("  " + b.Description)
		}
	}
	return nil
}
