// Package services contains the typed facades the Scanly client uses to talk
// to the API: authentication, members, cards, the card book, groups,
// notifications and push tokens. Every call goes through a client.Requester,
// so authorization and token refresh are handled below this layer.
package services
