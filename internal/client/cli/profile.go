package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/tablekeeper/internal/client/forms"
	"github.com/dmitrijs2005/tablekeeper/internal/common"
)

// Profile fetches and prints the current user's profile.
func (a *App) Profile(ctx context.Context) error {
	user, err := a.user.Profile(ctx)
	if err != nil {
		fmt.Println("Could not load profile:", err)
		return err
	}
	fmt.Printf("Email:    %s\n", user.Email)
	fmt.Printf("Nickname: %s\n", user.Nickname)
	if user.Avatar != "" {
		fmt.Printf("Avatar:   %s\n", user.Avatar)
	}
	if exp := a.session.ExpiresAt(); !exp.IsZero() {
		fmt.Printf("Session expires: %s\n", exp.Format("2006-01-02 15:04"))
	}
	return nil
}

// EditProfile prompts for a new nickname and avatar; empty input keeps the
// current value.
func (a *App) EditProfile(ctx context.Context) error {
	current := a.session.User()
	if current == nil {
		fmt.Println("Not logged in.")
		return nil
	}

	nickname, err := getSimpleText(a.reader, fmt.Sprintf("Enter nickname [%s]", current.Nickname), os.Stdout)
	if err != nil {
		return err
	}
	if nickname == "" {
		nickname = current.Nickname
	}
	avatar, err := getSimpleText(a.reader, "Enter avatar URL (optional)", os.Stdout)
	if err != nil {
		return err
	}
	if avatar == "" {
		avatar = current.Avatar
	}

	user, err := a.user.UpdateProfile(ctx, nickname, avatar)
	if err != nil {
		fmt.Println("Could not update profile:", err)
		return err
	}
	fmt.Printf("Profile updated, %s.\n", user.Nickname)
	return nil
}

// ChangePassword prompts for the old and new passwords. The new password is
// validated locally (length, confirmation match) before the request is sent.
func (a *App) ChangePassword(ctx context.Context) error {
	oldPassword, err := getPassword(os.Stdout, "Enter current password: ")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(oldPassword)
	newPassword, err := getPassword(os.Stdout, "Enter new password: ")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(newPassword)
	confirm, err := getPassword(os.Stdout, "Confirm new password: ")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	form := forms.Values{
		"password":        string(newPassword),
		"confirmPassword": string(confirm),
	}
	fields := []forms.Field{
		{Name: "password", Rules: []forms.Rule{
			forms.Required("please enter your password"),
			forms.MinLen(6, "password must be at least 6 characters"),
		}},
		{Name: "confirmPassword", Rules: []forms.Rule{
			forms.Required("please confirm your password"),
			forms.EqualField("password", "passwords do not match"),
		}},
	}
	if errs := forms.Validate(form, fields); errs != nil {
		for _, field := range []string{"password", "confirmPassword"} {
			if msg, ok := errs[field]; ok {
				fmt.Println(msg)
			}
		}
		return errs
	}

	if err := a.user.UpdatePassword(ctx, string(oldPassword), string(newPassword)); err != nil {
		fmt.Println("Could not change password:", err)
		return err
	}
	fmt.Println("Password changed.")
	return nil
}
