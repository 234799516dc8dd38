package models

import "time"

type Group struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	SortOrder int       `json:"sortOrder"`
	CreatedAt time.Time `json:"createdAt"`
}

// DefaultGroup is a server-managed group such as "all" or "favorites".
type DefaultGroup struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	CardBookCount int    `json:"cardBookCount"`
}

type GroupWithCount struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	SortOrder     int       `json:"sortOrder"`
	CardBookCount int       `json:"cardBookCount"`
	CreatedAt     time.Time `json:"createdAt"`
}

type GroupList struct {
	DefaultGroups []DefaultGroup   `json:"defaultGroups"`
	CustomGroups  []GroupWithCount `json:"customGroups"`
}

type GroupNameRequest struct {
	Name string `json:"name"`
}

type GroupOrder struct {
	ID        string `json:"id"`
	SortOrder int    `json:"sortOrder"`
}

type ReorderGroupsRequest struct {
	Groups []GroupOrder `json:"groups"`
}
