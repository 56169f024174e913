package proposal

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Synchroneyes/keskonmange/internal/room"
	"github.com/Synchroneyes/keskonmange/internal/storage"
	"github.com/Synchroneyes/keskonmange/pkg/ident"
)

// Common errors
var (
	ErrNotFound      = errors.New("proposal not found")
	ErrMissingFields = errors.New("missing required fields")
	ErrInvalidDay    = errors.New("invalid weekday")
	ErrNotMember     = errors.New("user is not a member of the room")
	ErrNotOwner      = errors.New("only the author may change this proposal")
)

// VoteStore is the part of the vote collection the proposal operations
// need: cascading removal when a proposal is deleted.
type VoteStore interface {
	DeleteByProposal(proposalID string) int
}

// Service handles proposal business logic
type Service struct {
	store *storage.Memory
	repo  *Repository
	rooms *room.Repository
	votes VoteStore
	log   *zap.Logger
}

// NewService creates a new proposal service
func NewService(store *storage.Memory, repo *Repository, rooms *room.Repository, votes VoteStore, log *zap.Logger) *Service {
	return &Service{store: store, repo: repo, rooms: rooms, votes: votes, log: log}
}

// Add nominates a restaurant for one weekday in a room. Checks run in
// a fixed order: field presence, weekday shape, room existence, then
// membership.
func (s *Service) Add(ctx context.Context, req *AddProposalRequest) (*Proposal, error) {
	author := strings.TrimSpace(req.NomUtilisateur)
	restaurant := strings.TrimSpace(req.NomRestaurant)
	if req.SalleID == "" || author == "" || restaurant == "" || req.Jour == "" {
		return nil, ErrMissingFields
	}
	if !ValidWeekday(req.Jour) {
		return nil, ErrInvalidDay
	}

	s.store.Lock()
	defer s.store.Unlock()

	if _, ok := s.rooms.Get(req.SalleID); !ok {
		return nil, room.ErrNotFound
	}
	if !s.rooms.IsMember(req.SalleID, author) {
		return nil, ErrNotMember
	}

	p := Proposal{
		ID:          ident.New(),
		RoomID:      req.SalleID,
		Author:      author,
		Restaurant:  restaurant,
		Description: strings.TrimSpace(req.Description),
		Weekday:     req.Jour,
		Price:       req.Prix,
		CreatedAt:   time.Now().UTC(),
	}
	s.repo.Insert(p)

	s.log.Info("proposal added",
		zap.String("proposalId", p.ID),
		zap.String("roomId", p.RoomID),
		zap.String("restaurant", p.Restaurant),
		zap.String("author", p.Author))

	return &p, nil
}

// List retrieves a room's proposals in insertion order, optionally
// filtered to one weekday
func (s *Service) List(ctx context.Context, roomID, jour string) ([]Proposal, error) {
	s.store.RLock()
	defer s.store.RUnlock()

	if _, ok := s.rooms.Get(roomID); !ok {
		return nil, room.ErrNotFound
	}
	return s.repo.ByRoom(roomID, jour), nil
}

// Get retrieves a proposal by its ID
func (s *Service) Get(ctx context.Context, id string) (*Proposal, error) {
	s.store.RLock()
	defer s.store.RUnlock()

	p, ok := s.repo.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

// Edit updates a proposal's restaurant name, description or price.
// Only the original author may edit; room, weekday and author are
// immutable.
func (s *Service) Edit(ctx context.Context, id string, req *UpdateProposalRequest) (*Proposal, error) {
	s.store.Lock()
	defer s.store.Unlock()

	p, ok := s.repo.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	if p.Author != req.NomUtilisateur {
		return nil, ErrNotOwner
	}

	if req.NomRestaurant != nil {
		if name := strings.TrimSpace(*req.NomRestaurant); name != "" {
			p.Restaurant = name
		}
	}
	if req.Description != nil {
		p.Description = strings.TrimSpace(*req.Description)
	}
	if req.Prix != nil {
		p.Price = req.Prix
	}
	now := time.Now().UTC()
	p.ModifiedAt = &now
	s.repo.Update(p)

	s.log.Info("proposal edited",
		zap.String("proposalId", p.ID),
		zap.String("author", p.Author))

	return &p, nil
}

// Delete removes a proposal and cascades the deletion to every vote
// referencing it. Only the original author may delete. Returns the
// deleted proposal.
func (s *Service) Delete(ctx context.Context, id, userName string) (*Proposal, error) {
	s.store.Lock()
	defer s.store.Unlock()

	p, ok := s.repo.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	if p.Author != userName {
		return nil, ErrNotOwner
	}

	s.repo.Delete(id)
	removed := s.votes.DeleteByProposal(id)

	s.log.Info("proposal deleted",
		zap.String("proposalId", id),
		zap.String("author", userName),
		zap.Int("votesRemoved", removed))

	return &p, nil
}
