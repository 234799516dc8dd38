package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/dmitrijs2005/scanly/internal/client/client"
	"github.com/dmitrijs2005/scanly/internal/client/models"
	"github.com/dmitrijs2005/scanly/internal/client/services"
	"github.com/dmitrijs2005/scanly/internal/netx"
)

func (a *App) MyCard(ctx context.Context) error {
	card, err := a.cardService.Me(ctx)
	if err != nil {
		return err
	}
	printCard(a.out, card)
	return nil
}

func (a *App) ShowCard(ctx context.Context, loginID string) error {
	card, err := a.cardService.ByLoginID(ctx, loginID)
	if err != nil {
		return err
	}
	printCard(a.out, card)
	return nil
}

// Scan opens the card encoded in a scanned QR payload.
func (a *App) Scan(ctx context.Context, payload string) error {
	loginID, ok := services.ParseCardQR(a.config.S3BaseURL, payload)
	if !ok {
		return errNotACard
	}
	if !a.isLoggedIn() {
		fmt.Fprintf(a.out, "Card of %s. Log in to see it.\n", loginID)
		return nil
	}
	return a.ShowCard(ctx, loginID)
}

// RegisterCard walks the user through the card form and creates the card.
func (a *App) RegisterCard(ctx context.Context) error {
	req, err := a.inputCard()
	if err != nil {
		return err
	}

	resp, err := a.cardService.Register(ctx, req)
	if err != nil {
		if code, ok := client.APIErrorCode(err); ok && code == services.CardExistsCode {
			return fmt.Errorf("you already have a card, use mycard to see it")
		}
		return err
	}

	fmt.Fprintf(a.out, "Card %s registered\n", resp.ID)

	a.mu.Lock()
	loginID := a.loginID
	a.mu.Unlock()
	if a.config.S3BaseURL != "" && loginID != "" {
		fmt.Fprintf(a.out, "QR code: %s\n", services.CardQRURL(a.config.S3BaseURL, loginID))
	}
	return nil
}

// SaveQR downloads the QR image of the logged in member's card to path.
func (a *App) SaveQR(ctx context.Context, path string) error {
	if a.config.S3BaseURL == "" {
		return errors.New("no S3 base URL configured")
	}
	a.mu.Lock()
	loginID := a.loginID
	a.mu.Unlock()
	if loginID == "" {
		return services.ErrNotLoggedIn
	}

	img, err := netx.Download(ctx, &http.Client{Timeout: a.config.RequestTimeout},
		services.CardQRURL(a.config.S3BaseURL, loginID))
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, img, 0o644); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "QR code saved to %s\n", path)
	return nil
}

func (a *App) DeleteCard(ctx context.Context) error {
	answer, err := getSimpleText(a.reader, "Type 'yes' to delete your card", a.out)
	if err != nil {
		return err
	}
	if answer != "yes" {
		return errAborted
	}

	if err := a.cardService.DeleteMe(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Card deleted")
	return nil
}

func (a *App) inputCard() (models.CardRequest, error) {
	var req models.CardRequest

	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Name", &req.Name},
		{"Title", &req.Title},
		{"Company", &req.Company},
		{"Phone (11 digits)", &req.Phone},
		{"Email", &req.Email},
		{"Location (optional)", &req.Location},
		{"Portfolio URL (optional)", &req.PortfolioURL},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			return req, err
		}
		*f.dst = v
	}

	bio, err := GetMultiline(a.reader, "Bio (optional)", a.out)
	if err != nil {
		return req, err
	}
	req.Bio = bio

	lines, err := GetKeyValueLines(a.reader, "Social links, e.g. GITHUB=https://github.com/me", a.out)
	if err != nil {
		return req, err
	}
	links, err := parseSocialLinks(lines)
	if err != nil {
		return req, err
	}
	req.SocialLinks = links

	return req, nil
}

func parseSocialLinks(lines []string) ([]models.SocialLink, error) {
	links := make([]models.SocialLink, 0, len(lines))
	for _, l := range lines {
		name, value, ok := strings.Cut(l, "=")
		if !ok {
			return nil, fmt.Errorf("social link %q: expected TYPE=url", l)
		}
		t := models.SocialLinkType(strings.ToUpper(strings.TrimSpace(name)))
		if !t.Valid() {
			return nil, fmt.Errorf("social link %q: unknown type %s", l, t)
		}
		links = append(links, models.SocialLink{Type: t, URL: strings.TrimSpace(value)})
	}
	return links, nil
}
