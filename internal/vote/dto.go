package vote

import (
	"math"
	"time"
)

// CastVoteRequest represents the request to vote on a proposal
type CastVoteRequest struct {
	PropositionID  string `json:"propositionId"`
	NomUtilisateur string `json:"nomUtilisateur"`
	TypeVote       string `json:"typeVote"`
}

// RemoveVoteRequest identifies who is asking for the removal
type RemoveVoteRequest struct {
	NomUtilisateur string `json:"nomUtilisateur"`
}

// VoteResponse represents a vote as returned to clients
type VoteResponse struct {
	ID               string `json:"id"`
	PropositionID    string `json:"propositionId"`
	NomUtilisateur   string `json:"nomUtilisateur"`
	TypeVote         string `json:"typeVote"`
	DateCreation     string `json:"dateCreation"`
	DateModification string `json:"dateModification,omitempty"`
}

// TallyResponse carries the refreshed counters after a vote mutation
type TallyResponse struct {
	TotalVotes  int `json:"totalVotes"`
	VotesPour   int `json:"votesPour"`
	VotesContre int `json:"votesContre"`
}

// StatsResponse extends the tally with the share of favourable votes,
// as the vote listing endpoint reports it
type StatsResponse struct {
	TotalVotes      int `json:"totalVotes"`
	VotesPour       int `json:"votesPour"`
	VotesContre     int `json:"votesContre"`
	PourcentagePour int `json:"pourcentagePour"`
}

// CastVoteResponse is the payload returned after casting a vote
type CastVoteResponse struct {
	Vote         *VoteResponse `json:"vote"`
	Statistiques TallyResponse `json:"statistiques"`
}

// ListVotesResponse is the payload returned when listing a proposal's votes
type ListVotesResponse struct {
	Votes        []*VoteResponse `json:"votes"`
	Statistiques StatsResponse   `json:"statistiques"`
}

// ToResponse converts a Vote model to a VoteResponse DTO
func (v *Vote) ToResponse() *VoteResponse {
	resp := &VoteResponse{
		ID:             v.ID,
		PropositionID:  v.ProposalID,
		NomUtilisateur: v.Voter,
		TypeVote:       v.Value,
		DateCreation:   v.CreatedAt.UTC().Format(time.RFC3339),
	}
	if v.ModifiedAt != nil {
		resp.DateModification = v.ModifiedAt.UTC().Format(time.RFC3339)
	}
	return resp
}

// ToResponse converts a Tally to a TallyResponse DTO
func (t Tally) ToResponse() TallyResponse {
	return TallyResponse{
		TotalVotes:  t.Total,
		VotesPour:   t.For,
		VotesContre: t.Against,
	}
}

// ToStatsResponse converts a Tally to a StatsResponse DTO
func (t Tally) ToStatsResponse() StatsResponse {
	pct := 0
	if t.Total > 0 {
		pct = int(math.Round(float64(t.For) / float64(t.Total) * 100))
	}
	return StatsResponse{
		TotalVotes:      t.Total,
		VotesPour:       t.For,
		VotesContre:     t.Against,
		PourcentagePour: pct,
	}
}
