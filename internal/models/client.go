package models

import (
	"time"
)

// ClientType determines how aggressively maintenance is recommended.
type ClientType string

const (
	ClientResidential ClientType = "Residential"
	ClientCommercial  ClientType = "Commercial"
)

// IsValidClientType checks if a client type is valid
func IsValidClientType(t ClientType) bool {
	switch t {
	case ClientResidential, ClientCommercial:
		return true
	default:
		return false
	}
}

// Client represents a customer of the HVAC business.
type Client struct {
	ID        string     `bson:"_id,omitempty" json:"id"`
	Name      string     `bson:"name" json:"name"`
	Email     string     `bson:"email" json:"email,omitempty"`
	Phone     string     `bson:"phone" json:"phone,omitempty"`
	Address   string     `bson:"address" json:"address,omitempty"`
	Type      ClientType `bson:"type" json:"type"` // "Residential" or "Commercial"
	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
}

// MaintenanceIntervalMonths returns the recommended maintenance interval
// for the client: commercial systems run harder and get a shorter cycle.
func (c *Client) MaintenanceIntervalMonths() int {
	if c.Type == ClientCommercial {
		return 3
	}
	return 6
}
