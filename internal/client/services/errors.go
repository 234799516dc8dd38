package services

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/scanly/internal/common"
)

var ErrNotLoggedIn = errors.New("not logged in")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", common.ErrorValidation, fmt.Sprintf(format, args...))
}
