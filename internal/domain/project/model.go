package project

import "time"

// MaxNameLength is the longest accepted project name.
const MaxNameLength = 100

// Project is a named container for tracked sessions. The name is the
// business key; the numeric ID is a storage surrogate.
type Project struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Summary is a lightweight representation for the dashboard listing.
type Summary struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	SessionCount int       `json:"session_count"`
	Running      bool      `json:"running"`
	CreatedAt    time.Time `json:"created_at"`
}
