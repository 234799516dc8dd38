package models

type SignUpRequest struct {
	LoginID  string `json:"loginId"`
	Password string `json:"password"`
	Email    string `json:"email,omitempty"`
}

type SignUpResponse struct {
	ID      string `json:"id"`
	LoginID string `json:"loginId"`
}

type CheckLoginIDResponse struct {
	Available bool `json:"available"`
}
