package models

import "time"

type SocialLinkType string

const (
	SocialLinkedIn  SocialLinkType = "LINKEDIN"
	SocialInstagram SocialLinkType = "INSTAGRAM"
	SocialGitHub    SocialLinkType = "GITHUB"
	SocialTwitter   SocialLinkType = "TWITTER"
	SocialFacebook  SocialLinkType = "FACEBOOK"
	SocialOther     SocialLinkType = "OTHER"
)

// Valid reports whether t is one of the types the server accepts.
func (t SocialLinkType) Valid() bool {
	switch t {
	case SocialLinkedIn, SocialInstagram, SocialGitHub, SocialTwitter, SocialFacebook, SocialOther:
		return true
	}
	return false
}

type SocialLink struct {
	Type SocialLinkType `json:"type"`
	URL  string         `json:"url"`
}

// CardRequest is the body of card registration and update.
type CardRequest struct {
	Name            string       `json:"name"`
	Title           string       `json:"title"`
	Company         string       `json:"company"`
	Phone           string       `json:"phone"`
	Email           string       `json:"email"`
	Bio             string       `json:"bio,omitempty"`
	SocialLinks     []SocialLink `json:"socialLinks,omitempty"`
	ProfileImageURL string       `json:"profileImageUrl,omitempty"`
	PortfolioURL    string       `json:"portfolioUrl,omitempty"`
	Location        string       `json:"location,omitempty"`
}

type RegisterCardResponse struct {
	ID              string       `json:"id"`
	MemberID        string       `json:"memberId"`
	Name            string       `json:"name"`
	Title           string       `json:"title"`
	Company         string       `json:"company"`
	Phone           string       `json:"phone"`
	Email           string       `json:"email"`
	Bio             *string      `json:"bio"`
	SocialLinks     []SocialLink `json:"socialLinks"`
	ProfileImageURL *string      `json:"profileImageUrl"`
	PortfolioURL    *string      `json:"portfolioUrl"`
	Location        *string      `json:"location"`
	CreatedAt       time.Time    `json:"createdAt"`
}

// Card is the read model of a business card (own or someone else's).
type Card struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Title           string       `json:"title"`
	Company         string       `json:"company"`
	Phone           string       `json:"phone"`
	Email           string       `json:"email"`
	Bio             *string      `json:"bio"`
	SocialLinks     []SocialLink `json:"socialLinks"`
	ProfileImageURL *string      `json:"profileImageUrl"`
	PortfolioURL    *string      `json:"portfolioUrl"`
	Location        *string      `json:"location"`
	QRImageURL      *string      `json:"qrImageUrl"`
}
