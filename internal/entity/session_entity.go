package entity

import "time"

// Session is the anonymous per-visitor state. There are no accounts; a
// session exists so calm mode and the last search survive a page reload.
type Session struct {
	Id        string    `json:"id"`
	Calm      bool      `json:"calm"`
	LastQuery string    `json:"last_query"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
