package entity

import "time"

// Author is the user an article is attributed to.
// Authors are identified by email and upserted at token issuance.
type Author struct {
	ID        int64
	Email     string
	Name      string
	Avatar    string
	CreatedAt time.Time
}
