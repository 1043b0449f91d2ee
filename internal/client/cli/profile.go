package cli

import (
	"context"
	"fmt"
)

// Profile prints the current profile and offers an interactive edit.
// Pressing Enter on a field keeps its value.
func (a *App) Profile(ctx context.Context) error {
	user, err := a.community.Profile(ctx)
	if err != nil {
		printlnFn("Could not load your profile: " + err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Name:     %s", user.Name))
	printlnFn(fmt.Sprintf("Email:    %s", user.Email))
	printlnFn(fmt.Sprintf("Address:  %s", user.Address))
	printlnFn(fmt.Sprintf("Joined:   %s", user.JoinDate))
	if user.IsVerified {
		printlnFn("Verified: yes")
	}

	answer, err := getSimpleText(a.reader, "Edit profile? (y/N)", a.out)
	if err != nil {
		return err
	}
	if answer != "y" && answer != "Y" {
		return nil
	}

	updated := *user
	if name, err := getSimpleText(a.reader, "Name ["+user.Name+"]", a.out); err == nil && name != "" {
		updated.Name = name
	}
	if address, err := getSimpleText(a.reader, "Address ["+user.Address+"]", a.out); err == nil && address != "" {
		updated.Address = address
	}

	if _, err := a.community.UpdateProfile(ctx, updated); err != nil {
		printlnFn("Could not save your profile: " + err.Error())
		return err
	}
	printlnFn("Profile updated")
	return nil
}
