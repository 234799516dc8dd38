package models

type Platform string

const (
	PlatformIOS     Platform = "ios"
	PlatformAndroid Platform = "android"
)

type RegisterPushTokenRequest struct {
	Token    string   `json:"token"`
	Platform Platform `json:"platform"`
}
