package cli

import (
	"context"
	"os"

	"github.com/dmitrijs2005/taskify/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts the user for a name, email and password and attempts to
// create a new account. A successful registration also starts a session.
//
// The password byte slice is securely wiped before returning.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.api.Register(ctx, name, email, string(password))
	if err != nil {
		return err
	}

	a.userName = user.Name
	printlnFn("Welcome,", user.Name)
	return nil
}

// Login prompts the user for credentials and tries to authenticate.
// On success the session token is kept by the API client and attached
// to every subsequent request.
//
// The password is securely wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.api.Login(ctx, email, string(password))
	if err != nil {
		return err
	}

	a.userName = user.Name
	printlnFn("Welcome back,", user.Name)
	return nil
}

// Logout drops the session. Tasks remain on the server.
func (a *App) Logout(ctx context.Context) error {
	a.api.Logout()
	a.userName = ""
	a.lastList = nil
	printlnFn("Logged out")
	return nil
}
