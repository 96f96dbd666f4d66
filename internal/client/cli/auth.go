package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/tablekeeper/internal/client/forms"
	"github.com/dmitrijs2005/tablekeeper/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for the registration form, validates it locally, and
// creates the account. Validation failures are printed per field and the
// request is never sent. A token in the response signs the user in directly.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	nickname, err := getSimpleText(a.reader, "Enter nickname", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout, "Enter password: ")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	confirm, err := getPassword(os.Stdout, "Confirm password: ")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	form := forms.Values{
		"email":           email,
		"nickname":        nickname,
		"password":        string(password),
		"confirmPassword": string(confirm),
	}
	if errs := forms.Validate(form, forms.RegisterFields()); errs != nil {
		for _, field := range []string{"email", "nickname", "password", "confirmPassword"} {
			if msg, ok := errs[field]; ok {
				fmt.Println(msg)
			}
		}
		return errs
	}

	user, err := a.auth.Register(ctx, email, string(password), nickname)
	if err != nil {
		fmt.Println("Registration failed:", err)
		return err
	}

	fmt.Printf("Welcome, %s!\n", user.Nickname)
	return nil
}

// Login prompts for credentials, validates them locally, and authenticates.
// On success the session is persisted so the next run starts logged in.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout, "Enter password: ")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	form := forms.Values{"email": email, "password": string(password)}
	if errs := forms.Validate(form, forms.LoginFields()); errs != nil {
		for _, field := range []string{"email", "password"} {
			if msg, ok := errs[field]; ok {
				fmt.Println(msg)
			}
		}
		return errs
	}

	user, err := a.auth.Login(ctx, email, string(password))
	if err != nil {
		fmt.Println("Login failed:", err)
		return err
	}

	fmt.Printf("Welcome back, %s!\n", user.Nickname)
	return nil
}

// Logout clears the in-memory and persisted session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(); err != nil {
		a.log.Warn(ctx, "logout failed", "error", err)
		return err
	}
	fmt.Println("Logged out.")
	return nil
}
