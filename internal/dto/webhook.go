package dto

import "encoding/json"

// Clerk event types handled by the webhook.
const (
	EventUserCreated = "user.created"
)

// ClerkEvent is the envelope Clerk delivers through Svix.
type ClerkEvent struct {
	Type   string          `json:"type"`
	Object string          `json:"object"`
	Data   json.RawMessage `json:"data"`
}

// ClerkUser is the data object of user.* events.
type ClerkUser struct {
	ID                    string              `json:"id"`
	FirstName             *string             `json:"first_name"`
	LastName              *string             `json:"last_name"`
	PrimaryEmailAddressID *string             `json:"primary_email_address_id"`
	EmailAddresses        []ClerkEmailAddress `json:"email_addresses"`
}

// ClerkEmailAddress is one entry of ClerkUser.EmailAddresses.
type ClerkEmailAddress struct {
	ID           string `json:"id"`
	EmailAddress string `json:"email_address"`
}
