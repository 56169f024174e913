package room

import "time"

// Room represents a shared voting room protected by one password.
// The password is a shared secret and never appears in any response.
type Room struct {
	ID        string    `json:"id"`
	Creator   string    `json:"nomCreateur"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"dateCreation"`
	Active    bool      `json:"estActive"`
}

// Details bundles a room with its current member list.
type Details struct {
	Room    Room
	Members []string
}
