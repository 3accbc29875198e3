package model

import "time"

type Client struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	Jurisdiction     string    `json:"jurisdiction"`
	BusinessActivity string    `json:"business_activity"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ClientDescriptor is an inbound client description keyed by email.
type ClientDescriptor struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Jurisdiction     string `json:"jurisdiction"`
	BusinessActivity string `json:"business_activity"`
}

type ResolveAction string

const (
	ResolveActionCreated ResolveAction = "created"
	ResolveActionUpdated ResolveAction = "updated"
)

type ResolveResult struct {
	ID     int64         `json:"id"`
	Action ResolveAction `json:"action"`
}
