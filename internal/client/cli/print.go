package cli

import (
	"fmt"
	"io"

	"github.com/dmitrijs2005/scanly/internal/client/models"
)

func printCard(w io.Writer, c models.Card) {
	fmt.Fprintf(w, "%s\n%s, %s\n", c.Name, c.Title, c.Company)
	fmt.Fprintf(w, "Phone:     %s\n", c.Phone)
	fmt.Fprintf(w, "Email:     %s\n", c.Email)
	printOptional(w, "Location:", c.Location)
	printOptional(w, "Portfolio:", c.PortfolioURL)
	printOptional(w, "Bio:", c.Bio)
	for _, l := range c.SocialLinks {
		fmt.Fprintf(w, "%-10s %s\n", l.Type, l.URL)
	}
	printOptional(w, "QR:", c.QRImageURL)
	fmt.Fprintf(w, "Card id:   %s\n", c.ID)
}

func printCardBook(w io.Writer, cb models.CardBook) {
	star := " "
	if cb.IsFavorite {
		star = "★"
	}
	fmt.Fprintf(w, "%s %s  card %s", star, cb.ID, cb.CardID)
	if cb.GroupID != nil {
		fmt.Fprintf(w, "  group %s", *cb.GroupID)
	}
	if cb.Memo != nil && *cb.Memo != "" {
		fmt.Fprintf(w, "  memo %q", *cb.Memo)
	}
	fmt.Fprintln(w)
}

func printOptional(w io.Writer, label string, v *string) {
	if v != nil && *v != "" {
		fmt.Fprintf(w, "%-10s %s\n", label, *v)
	}
}
