package vote

import "time"

// Vote values accepted on a proposal, in the French wire vocabulary
// the clients use.
const (
	For     = "pour"
	Against = "contre"
)

// ValidValue reports whether typeVote is one of the two accepted tokens
func ValidValue(typeVote string) bool {
	return typeVote == For || typeVote == Against
}

// Vote represents one member's stance on one proposal. At most one
// vote exists per (proposal, voter) pair; casting again overwrites the
// value and stamps the modification time.
type Vote struct {
	ID         string     `json:"id"`
	ProposalID string     `json:"propositionId"`
	Voter      string     `json:"nomUtilisateur"`
	Value      string     `json:"typeVote"`
	CreatedAt  time.Time  `json:"dateCreation"`
	ModifiedAt *time.Time `json:"dateModification,omitempty"`
}

// Tally is the derived vote counters for one proposal, recomputed
// after every vote mutation.
type Tally struct {
	Total   int
	For     int
	Against int
}

// Result is what a vote mutation hands back to the boundary: the vote,
// the refreshed tally and the room the proposal belongs to.
type Result struct {
	Vote   Vote
	Tally  Tally
	RoomID string
}

// Removal describes the outcome of removing a vote. Tally is nil when
// the owning proposal no longer exists.
type Removal struct {
	ProposalID string
	RoomID     string
	Tally      *Tally
}
