package services

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/dmitrijs2005/scanly/internal/client/client"
	"github.com/dmitrijs2005/scanly/internal/client/models"
	"github.com/dmitrijs2005/scanly/internal/common"
)

// LoginIDTakenCode is returned by SignUp when the login id is in use.
const LoginIDTakenCode = "M003"

var loginIDPattern = regexp.MustCompile(`^[A-Za-z0-9_]{3,20}$`)

// ValidateLoginID accepts 3 to 20 letters, digits or underscores.
func ValidateLoginID(loginID string) error {
	if !loginIDPattern.MatchString(loginID) {
		return invalid("login id must be 3-20 letters, digits or underscores")
	}
	return nil
}

// ValidatePassword requires at least 8 characters with a letter and a digit.
func ValidatePassword(password []byte) error {
	if len(password) < 8 {
		return invalid("password must be at least 8 characters")
	}
	var letter, digit bool
	for _, b := range password {
		switch {
		case b >= '0' && b <= '9':
			digit = true
		case (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z'):
			letter = true
		}
	}
	if !letter || !digit {
		return invalid("password must contain letters and digits")
	}
	return nil
}

type MemberService interface {
	SignUp(ctx context.Context, loginID string, password []byte, email string) (models.SignUpResponse, error)
	CheckLoginID(ctx context.Context, loginID string) (bool, error)
}

type memberService struct {
	api client.Requester
}

func NewMemberService(api client.Requester) MemberService {
	return &memberService{api: api}
}

// SignUp validates the credentials locally before creating the account.
func (m *memberService) SignUp(ctx context.Context, loginID string, password []byte, email string) (models.SignUpResponse, error) {
	defer common.WipeByteArray(password)

	if err := ValidateLoginID(loginID); err != nil {
		return models.SignUpResponse{}, err
	}
	if err := ValidatePassword(password); err != nil {
		return models.SignUpResponse{}, err
	}

	req := models.SignUpRequest{
		LoginID:  loginID,
		Password: string(password),
		Email:    strings.TrimSpace(email),
	}
	resp, err := client.Post[models.SignUpResponse](ctx, m.api, client.SignUpPath, req, nil)
	if err != nil {
		return models.SignUpResponse{}, fmt.Errorf("sign up error: %w", err)
	}
	return resp, nil
}

func (m *memberService) CheckLoginID(ctx context.Context, loginID string) (bool, error) {
	q := url.Values{"loginId": {loginID}}
	resp, err := client.Get[models.CheckLoginIDResponse](ctx, m.api, client.CheckLoginIDPath+"?"+q.Encode(), nil)
	if err != nil {
		return false, fmt.Errorf("check login id error: %w", err)
	}
	return resp.Available, nil
}
