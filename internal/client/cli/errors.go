package cli

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/scanly/internal/client/client"
	"github.com/dmitrijs2005/scanly/internal/client/services"
	"github.com/dmitrijs2005/scanly/internal/common"
)

var (
	errQuit     = errors.New("quit")
	errNotACard = errors.New("this QR code is not a Scanly card")
	errAborted  = errors.New("aborted")
)

type usageError string

func (u usageError) Error() string { return "usage: " + string(u) }

func usage(s string) error { return usageError(s) }

// describeError turns an error into the line shown to the user.
func describeError(err error) string {
	var u usageError
	if errors.As(err, &u) {
		return u.Error()
	}
	if errors.Is(err, common.ErrorValidation) || errors.Is(err, services.ErrNotLoggedIn) {
		return err.Error()
	}

	var e *client.Error
	if !errors.As(err, &e) {
		return err.Error()
	}

	switch e.Kind {
	case client.KindAPI:
		return fmt.Sprintf("%s (%s)", e.Message, e.Code)
	case client.KindUnauthorized:
		return "your session has expired, please log in again"
	case client.KindNetwork:
		return "network error, please try again"
	case client.KindEmptyResponse:
		return fmt.Sprintf("the server returned an empty response (status %d)", e.Status)
	case client.KindParse:
		return "the server returned an unexpected response"
	default:
		return err.Error()
	}
}
