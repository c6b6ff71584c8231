package entity

import "time"

// AdminProfile is the dashboard operator's account as known to the auth
// service. There is no admin document in the store; the auth service is the
// only source of identity.
type AdminProfile struct {
	UID         string    `json:"uid"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	LastSignIn  time.Time `json:"last_sign_in"`
}
