package cli

import (
	"context"
	"fmt"

	"github.com/greenvalley/community/internal/contacts"
)

// Emergency prints the built-in contact directory. It never touches the
// network, so it works when the store is unreachable.
func (a *App) Emergency(ctx context.Context) error {
	for _, c := range contacts.Directory() {
		hours := ""
		if c.Available24h {
			hours = " (24h)"
		}
		printlnFn(fmt.Sprintf("%s  %s%s", c.Name, c.Phone, hours))
		printlnFn("  " + c.Description)
	}
	return nil
}
