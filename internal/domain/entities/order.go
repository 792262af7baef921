package entities

import "time"

// FinalizedOrder is the record handed to the persistence/notification
// collaborator once the user confirms and leaves contacts. AgreedTotal is
// the cached option total the user saw, never a recomputation.
type FinalizedOrder struct {
	ID          string         `json:"id"`
	SessionID   string         `json:"session_id"`
	Record      ShipmentRecord `json:"record"`
	Option      DeliveryOption `json:"option"`
	AgreedTotal float64        `json:"agreed_total"`
	Contact     Contact        `json:"contact"`
	CreatedAt   time.Time      `json:"created_at"`
}
