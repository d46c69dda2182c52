package chat

import "time"

// Session captures a transient anonymous conversation bound to one surface.
// Sessions live in memory only and end with the process.
type Session struct {
	ID        string    `json:"id"`
	SurfaceID string    `json:"surfaceId"`
	CreatedAt time.Time `json:"createdAt"`
}
