package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophtasks/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

func (a *App) readCredentials() (string, []byte, error) {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return "", nil, err
	}
	if userName == "" {
		return "", nil, errors.New("username is required")
	}

	password, err := getPassword(a.out)
	if err != nil {
		return "", nil, err
	}
	if len(password) == 0 {
		return "", nil, errors.New("password is required")
	}
	return userName, password, nil
}

// Register prompts for a username and password and creates the account.
func (a *App) Register(ctx context.Context, _ []string) error {
	userName, password, err := a.readCredentials()
	if err != nil {
		a.printError(err)
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.api.Register(ctx, userName, string(password)); err != nil {
		a.printError(err)
		return err
	}

	a.printSuccess("User registered successfully. You can log in now.")
	return nil
}

// Login prompts for credentials and keeps the issued token for the session.
func (a *App) Login(ctx context.Context, _ []string) error {
	userName, password, err := a.readCredentials()
	if err != nil {
		a.printError(err)
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.api.Login(ctx, userName, string(password)); err != nil {
		a.printError(err)
		return err
	}

	a.printSuccess(fmt.Sprintf("Logged in as %s", a.api.UserName()))
	return nil
}

// Logout drops the session token.
func (a *App) Logout(ctx context.Context, _ []string) error {
	a.api.Logout()
	a.printSuccess("Logged out")
	return nil
}
