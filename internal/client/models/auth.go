package models

type LoginRequest struct {
	LoginID  string `json:"loginId"`
	Password string `json:"password"`
}

// TokenResponse is returned by both login and token reissue.
type TokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	TokenType    string `json:"tokenType"`
}

type ReissueRequest struct {
	RefreshToken string `json:"refreshToken"`
}
