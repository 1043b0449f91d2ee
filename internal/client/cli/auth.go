package cli

import (
	"context"

	"github.com/greenvalley/community/internal/client/services"
	"github.com/greenvalley/community/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing; they point at the interactive input helpers.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and runs the login flow. Failures print
// the flow's user-visible message; the distinction between "no such user",
// "wrong password", and "store unreachable" stays in the logs.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.auth.Login(ctx, email, string(password))
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	printlnFn("Welcome back, " + user.Name + "!")
	return nil
}

// Register prompts for the registration form and creates an account.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	address, err := getSimpleText(a.reader, "Enter address", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword("Confirm password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	user, err := a.auth.Register(ctx, services.RegisterInput{
		Name:            name,
		Email:           email,
		Password:        string(password),
		ConfirmPassword: string(confirm),
		Address:         address,
	})
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	printlnFn(services.MsgAccountCreated)
	printlnFn("Logged in as " + user.Name)
	return nil
}

// Logout clears the session. Running it while logged out is harmless.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		printlnFn(err.Error())
		return err
	}
	printlnFn("Logged out")
	return nil
}
