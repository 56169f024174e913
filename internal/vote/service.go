package vote

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Synchroneyes/keskonmange/internal/proposal"
	"github.com/Synchroneyes/keskonmange/internal/room"
	"github.com/Synchroneyes/keskonmange/internal/storage"
	"github.com/Synchroneyes/keskonmange/pkg/ident"
)

// Common errors
var (
	ErrNotFound         = errors.New("vote not found")
	ErrProposalNotFound = errors.New("proposal not found")
	ErrMissingFields    = errors.New("missing required fields")
	ErrInvalidValue     = errors.New("invalid vote value")
	ErrNotMember        = errors.New("user is not a member of the room")
	ErrNotOwner         = errors.New("users may only remove their own votes")
)

// Service handles vote business logic
type Service struct {
	store     *storage.Memory
	repo      *Repository
	proposals *proposal.Repository
	rooms     *room.Repository
	log       *zap.Logger
}

// NewService creates a new vote service
func NewService(store *storage.Memory, repo *Repository, proposals *proposal.Repository, rooms *room.Repository, log *zap.Logger) *Service {
	return &Service{store: store, repo: repo, proposals: proposals, rooms: rooms, log: log}
}

// Cast records a member's stance on a proposal. A second cast by the
// same voter overwrites the value and stamps the modification time
// instead of creating a second record. The proposal's cached counters
// are recomputed from the votes before returning; holding the store
// lock for the whole operation keeps that read-modify-write atomic.
func (s *Service) Cast(ctx context.Context, req *CastVoteRequest) (*Result, error) {
	voter := strings.TrimSpace(req.NomUtilisateur)
	if req.PropositionID == "" || voter == "" || req.TypeVote == "" {
		return nil, ErrMissingFields
	}
	if !ValidValue(req.TypeVote) {
		return nil, ErrInvalidValue
	}

	s.store.Lock()
	defer s.store.Unlock()

	p, ok := s.proposals.Get(req.PropositionID)
	if !ok {
		return nil, ErrProposalNotFound
	}
	if !s.rooms.IsMember(p.RoomID, voter) {
		return nil, ErrNotMember
	}

	v, exists := s.repo.ByVoter(req.PropositionID, voter)
	if exists {
		now := time.Now().UTC()
		v.Value = req.TypeVote
		v.ModifiedAt = &now
		s.repo.Update(v)
	} else {
		v = Vote{
			ID:         ident.New(),
			ProposalID: req.PropositionID,
			Voter:      voter,
			Value:      req.TypeVote,
			CreatedAt:  time.Now().UTC(),
		}
		s.repo.Insert(v)
	}

	tally := s.refreshTally(p)

	s.log.Info("vote cast",
		zap.String("proposalId", req.PropositionID),
		zap.String("voter", voter),
		zap.String("value", req.TypeVote),
		zap.Bool("overwrite", exists))

	return &Result{Vote: v, Tally: tally, RoomID: p.RoomID}, nil
}

// ListForProposal retrieves every vote for a proposal with its tally
func (s *Service) ListForProposal(ctx context.Context, proposalID string) ([]Vote, Tally, error) {
	s.store.RLock()
	defer s.store.RUnlock()

	if _, ok := s.proposals.Get(proposalID); !ok {
		return nil, Tally{}, ErrProposalNotFound
	}

	votes := s.repo.ByProposal(proposalID)
	return votes, count(votes), nil
}

// GetUserVote retrieves the single vote a user holds on a proposal
func (s *Service) GetUserVote(ctx context.Context, proposalID, userName string) (*Vote, error) {
	s.store.RLock()
	defer s.store.RUnlock()

	if _, ok := s.proposals.Get(proposalID); !ok {
		return nil, ErrProposalNotFound
	}

	v, ok := s.repo.ByVoter(proposalID, userName)
	if !ok {
		return nil, ErrNotFound
	}
	return &v, nil
}

// Remove deletes a vote. Only the recorded voter may remove it. The
// owning proposal's counters are recomputed if the proposal still
// exists.
func (s *Service) Remove(ctx context.Context, voteID, userName string) (*Removal, error) {
	s.store.Lock()
	defer s.store.Unlock()

	v, ok := s.repo.Get(voteID)
	if !ok {
		return nil, ErrNotFound
	}
	if v.Voter != userName {
		return nil, ErrNotOwner
	}

	s.repo.Delete(voteID)

	removal := &Removal{ProposalID: v.ProposalID}
	if p, ok := s.proposals.Get(v.ProposalID); ok {
		tally := s.refreshTally(p)
		removal.RoomID = p.RoomID
		removal.Tally = &tally
	}

	s.log.Info("vote removed",
		zap.String("voteId", voteID),
		zap.String("proposalId", v.ProposalID),
		zap.String("voter", userName))

	return removal, nil
}

// refreshTally recomputes a proposal's counters from its votes and
// persists them. Callers must hold the store lock for writing.
func (s *Service) refreshTally(p proposal.Proposal) Tally {
	tally := count(s.repo.ByProposal(p.ID))
	p.VoteCount = tally.Total
	p.VotesFor = tally.For
	p.VotesAgainst = tally.Against
	s.proposals.Update(p)
	return tally
}

// count derives a tally from a set of votes
func count(votes []Vote) Tally {
	t := Tally{Total: len(votes)}
	for _, v := range votes {
		if v.Value == For {
			t.For++
		} else {
			t.Against++
		}
	}
	return t
}
