package cli

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/scanly/internal/client/client"
	"github.com/dmitrijs2005/scanly/internal/client/services"
	"github.com/dmitrijs2005/scanly/internal/common"
)

// getSimpleText, getPassword and getSecret are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getSecret = GetSecret

// SignUp prompts for a login id, password (twice) and an optional email and
// creates the account. The login id is checked for availability before the
// password is asked for.
func (a *App) SignUp(ctx context.Context) error {
	loginID, err := getSimpleText(a.reader, "Enter login id (3-20 letters, digits or _)", a.out)
	if err != nil {
		return err
	}
	if err := services.ValidateLoginID(loginID); err != nil {
		return err
	}

	available, err := a.memberService.CheckLoginID(ctx, loginID)
	if err != nil {
		return err
	}
	if !available {
		return fmt.Errorf("login id %q is already taken", loginID)
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getSecret(a.out, "Repeat password: ")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	if !bytes.Equal(password, confirm) {
		return fmt.Errorf("passwords do not match")
	}

	email, err := getSimpleText(a.reader, "Enter email (optional)", a.out)
	if err != nil {
		return err
	}

	resp, err := a.memberService.SignUp(ctx, loginID, password, email)
	if err != nil {
		if code, ok := client.APIErrorCode(err); ok && code == services.LoginIDTakenCode {
			return fmt.Errorf("login id %q is already taken", loginID)
		}
		return err
	}

	fmt.Fprintf(a.out, "Account %s created. You can log in now.\n", resp.LoginID)
	return nil
}

// Login prompts for credentials and starts a session.
func (a *App) Login(ctx context.Context) error {
	loginID, err := getSimpleText(a.reader, "Enter login id", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Login(ctx, loginID, password); err != nil {
		a.log.Info(ctx, "login failed", "login_id", loginID, "error", err)
		return err
	}

	a.setSession(loginID, 0)
	a.log.Info(ctx, "logged in", "login_id", loginID)
	fmt.Fprintln(a.out, "Login successful")
	return nil
}

// Logout ends the session locally and forgets the registered push token.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	a.pushService.Reset()
	a.setSession("", 0)
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// WhoAmI prints the login id and what the access token says about the session.
func (a *App) WhoAmI(ctx context.Context) error {
	claims, err := a.authService.Session(ctx)
	if err != nil {
		return err
	}
	loginID, err := a.authService.CurrentLoginID(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Login id:  %s\n", loginID)
	if claims.Subject != "" {
		fmt.Fprintf(a.out, "Member:    %s\n", claims.Subject)
	}
	if !claims.ExpiresAt.IsZero() {
		state := "valid"
		if claims.Expired(time.Now()) {
			state = "expired, will refresh on next request"
		}
		fmt.Fprintf(a.out, "Token:     %s until %s\n", state, claims.ExpiresAt.Local().Format(time.DateTime))
	}
	return nil
}
