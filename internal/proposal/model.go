package proposal

import "time"

// Weekday tokens accepted for a proposal. The application week is the
// five working days, in the French wire vocabulary the clients use.
const (
	Monday    = "lundi"
	Tuesday   = "mardi"
	Wednesday = "mercredi"
	Thursday  = "jeudi"
	Friday    = "vendredi"
)

// Weekdays lists the valid tokens in week order.
var Weekdays = []string{Monday, Tuesday, Wednesday, Thursday, Friday}

// ValidWeekday reports whether jour is one of the five accepted tokens
func ValidWeekday(jour string) bool {
	for _, d := range Weekdays {
		if jour == d {
			return true
		}
	}
	return false
}

// Proposal represents a restaurant nominated for one weekday within a
// room. The vote counters are caches refreshed after every vote
// mutation; the votes themselves are the source of truth.
type Proposal struct {
	ID           string     `json:"id"`
	RoomID       string     `json:"salleId"`
	Author       string     `json:"nomUtilisateur"`
	Restaurant   string     `json:"nomRestaurant"`
	Description  string     `json:"description"`
	Weekday      string     `json:"jour"`
	Price        *float64   `json:"prix"`
	CreatedAt    time.Time  `json:"dateCreation"`
	ModifiedAt   *time.Time `json:"dateModification,omitempty"`
	VoteCount    int        `json:"nombreVotes"`
	VotesFor     int        `json:"votesPour"`
	VotesAgainst int        `json:"votesContre"`
}
