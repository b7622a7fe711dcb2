package models

import "time"

// Model for the subscribers table
type Subscriber struct {
	ChatID       int64     `db:"chat_id"`
	FirstName    string    `db:"first_name"`
	TimeZone     string    `db:"timezone"`
	Subscribed   bool      `db:"subscribed"`
	SubscribedAt time.Time `db:"subscribed_at"`
}
