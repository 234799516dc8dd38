package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/scanly/internal/client/client"
	"github.com/dmitrijs2005/scanly/internal/client/models"
)

const cardsPath = "/api/cards/v1"

const maxSocialLinks = 10

// CardExistsCode is returned by Register when the member already has a card.
const CardExistsCode = "C001"

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type CardService interface {
	Register(ctx context.Context, req models.CardRequest) (models.RegisterCardResponse, error)
	Me(ctx context.Context) (models.Card, error)
	ByLoginID(ctx context.Context, loginID string) (models.Card, error)
	Update(ctx context.Context, req models.CardRequest) (models.Card, error)
	DeleteMe(ctx context.Context) error
}

type cardService struct {
	api client.Requester
}

func NewCardService(api client.Requester) CardService {
	return &cardService{api: api}
}

func (c *cardService) Register(ctx context.Context, req models.CardRequest) (models.RegisterCardResponse, error) {
	req, err := PrepareCard(req)
	if err != nil {
		return models.RegisterCardResponse{}, err
	}

	resp, err := client.Post[models.RegisterCardResponse](ctx, c.api, cardsPath, req, nil)
	if err != nil {
		return models.RegisterCardResponse{}, fmt.Errorf("register card error: %w", err)
	}
	return resp, nil
}

func (c *cardService) Me(ctx context.Context) (models.Card, error) {
	card, err := client.Get[models.Card](ctx, c.api, cardsPath+"/me", nil)
	if err != nil {
		return models.Card{}, fmt.Errorf("get my card error: %w", err)
	}
	return card, nil
}

func (c *cardService) ByLoginID(ctx context.Context, loginID string) (models.Card, error) {
	card, err := client.Get[models.Card](ctx, c.api, cardsPath+"/member/"+url.PathEscape(loginID), nil)
	if err != nil {
		return models.Card{}, fmt.Errorf("get card of %s error: %w", loginID, err)
	}
	return card, nil
}

func (c *cardService) Update(ctx context.Context, req models.CardRequest) (models.Card, error) {
	req, err := PrepareCard(req)
	if err != nil {
		return models.Card{}, err
	}

	card, err := client.Post[models.Card](ctx, c.api, cardsPath+"/me/update", req, nil)
	if err != nil {
		return models.Card{}, fmt.Errorf("update card error: %w", err)
	}
	return card, nil
}

func (c *cardService) DeleteMe(ctx context.Context) error {
	if err := c.api.Do(ctx, http.MethodPost, cardsPath+"/me/delete", nil, nil, nil); err != nil {
		return fmt.Errorf("delete card error: %w", err)
	}
	return nil
}

// PrepareCard trims the form, keeps only the digits of the phone number,
// drops social links without a URL and validates the result.
func PrepareCard(req models.CardRequest) (models.CardRequest, error) {
	out := models.CardRequest{
		Name:            strings.TrimSpace(req.Name),
		Title:           strings.TrimSpace(req.Title),
		Company:         strings.TrimSpace(req.Company),
		Phone:           NormalizePhone(req.Phone),
		Email:           strings.TrimSpace(req.Email),
		Bio:             strings.TrimSpace(req.Bio),
		ProfileImageURL: strings.TrimSpace(req.ProfileImageURL),
		PortfolioURL:    strings.TrimSpace(req.PortfolioURL),
		Location:        strings.TrimSpace(req.Location),
	}
	for _, l := range req.SocialLinks {
		u := strings.TrimSpace(l.URL)
		if u == "" {
			continue
		}
		out.SocialLinks = append(out.SocialLinks, models.SocialLink{Type: l.Type, URL: u})
	}

	return out, validateCard(out)
}

// NormalizePhone keeps only ASCII digits.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func validateCard(c models.CardRequest) error {
	if err := lengthBetween("name", c.Name, 2, 30); err != nil {
		return err
	}
	if err := lengthBetween("title", c.Title, 2, 50); err != nil {
		return err
	}
	if err := lengthBetween("company", c.Company, 2, 50); err != nil {
		return err
	}

	switch {
	case c.Phone == "":
		return invalid("phone is required")
	case len(c.Phone) != 11:
		return invalid("phone must be 11 digits")
	}

	switch {
	case c.Email == "":
		return invalid("email is required")
	case !emailPattern.MatchString(c.Email):
		return invalid("email is malformed")
	case utf8.RuneCountInString(c.Email) > 50:
		return invalid("email must be at most 50 characters")
	}

	if utf8.RuneCountInString(c.Bio) > 300 {
		return invalid("bio must be at most 300 characters")
	}
	if utf8.RuneCountInString(c.Location) > 100 {
		return invalid("location must be at most 100 characters")
	}

	if len(c.SocialLinks) > maxSocialLinks {
		return invalid("at most %d social links are allowed", maxSocialLinks)
	}
	for _, l := range c.SocialLinks {
		if !l.Type.Valid() {
			return invalid("unknown social link type %q", l.Type)
		}
		if utf8.RuneCountInString(l.URL) > 500 {
			return invalid("social link URL must be at most 500 characters")
		}
	}
	return nil
}

func lengthBetween(field, v string, lo, hi int) error {
	n := utf8.RuneCountInString(v)
	if n == 0 {
		return invalid("%s is required", field)
	}
	if n < lo || n > hi {
		return invalid("%s must be %d-%d characters", field, lo, hi)
	}
	return nil
}
