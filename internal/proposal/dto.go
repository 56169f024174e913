package proposal

import "time"

// AddProposalRequest represents the request to nominate a restaurant
type AddProposalRequest struct {
	SalleID        string   `json:"salleId"`
	NomUtilisateur string   `json:"nomUtilisateur"`
	NomRestaurant  string   `json:"nomRestaurant"`
	Description    string   `json:"description"`
	Jour           string   `json:"jour"`
	Prix           *float64 `json:"prix,omitempty"`
}

// UpdateProposalRequest represents the request to edit a proposal.
// Only the fields explicitly provided are touched; room, weekday and
// author are immutable.
type UpdateProposalRequest struct {
	NomUtilisateur string   `json:"nomUtilisateur"`
	NomRestaurant  *string  `json:"nomRestaurant,omitempty"`
	Description    *string  `json:"description,omitempty"`
	Prix           *float64 `json:"prix,omitempty"`
}

// DeleteProposalRequest identifies who is asking for the deletion
type DeleteProposalRequest struct {
	NomUtilisateur string `json:"nomUtilisateur"`
}

// ProposalResponse represents a proposal as returned to clients
type ProposalResponse struct {
	ID               string   `json:"id"`
	SalleID          string   `json:"salleId"`
	NomUtilisateur   string   `json:"nomUtilisateur"`
	NomRestaurant    string   `json:"nomRestaurant"`
	Description      string   `json:"description"`
	Jour             string   `json:"jour"`
	Prix             *float64 `json:"prix"`
	DateCreation     string   `json:"dateCreation"`
	DateModification string   `json:"dateModification,omitempty"`
	NombreVotes      int      `json:"nombreVotes"`
	VotesPour        int      `json:"votesPour"`
	VotesContre      int      `json:"votesContre"`
}

// ToResponse converts a Proposal model to a ProposalResponse DTO
func (p *Proposal) ToResponse() *ProposalResponse {
	resp := &ProposalResponse{
		ID:             p.ID,
		SalleID:        p.RoomID,
		NomUtilisateur: p.Author,
		NomRestaurant:  p.Restaurant,
		Description:    p.Description,
		Jour:           p.Weekday,
		Prix:           p.Price,
		DateCreation:   p.CreatedAt.UTC().Format(time.RFC3339),
		NombreVotes:    p.VoteCount,
		VotesPour:      p.VotesFor,
		VotesContre:    p.VotesAgainst,
	}
	if p.ModifiedAt != nil {
		resp.DateModification = p.ModifiedAt.UTC().Format(time.RFC3339)
	}
	return resp
}
