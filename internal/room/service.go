package room

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Synchroneyes/keskonmange/internal/storage"
	"github.com/Synchroneyes/keskonmange/pkg/ident"
)

// Common errors
var (
	ErrNotFound            = errors.New("room not found")
	ErrNameRequired        = errors.New("creator name is required")
	ErrPasswordTooShort    = errors.New("password must be at least 3 characters")
	ErrPasswordRequired    = errors.New("password is required")
	ErrCredentialsRequired = errors.New("password and user name are required")
	ErrWrongPassword       = errors.New("wrong password")
)

// Service handles room business logic
type Service struct {
	store *storage.Memory
	repo  *Repository
	log   *zap.Logger
}

// NewService creates a new room service
func NewService(store *storage.Memory, repo *Repository, log *zap.Logger) *Service {
	return &Service{store: store, repo: repo, log: log}
}

// Create creates a new room and admits the creator as its first member
func (s *Service) Create(ctx context.Context, req *CreateRoomRequest) (*Details, error) {
	name := strings.TrimSpace(req.NomCreateur)
	if name == "" {
		return nil, ErrNameRequired
	}
	if len(req.MotDePasse) < 3 {
		return nil, ErrPasswordTooShort
	}

	s.store.Lock()
	defer s.store.Unlock()

	rm := Room{
		ID:        ident.New(),
		Creator:   name,
		Password:  req.MotDePasse,
		CreatedAt: time.Now().UTC(),
		Active:    true,
	}
	s.repo.Insert(rm)
	s.repo.AddMember(rm.ID, name)

	s.log.Info("room created",
		zap.String("roomId", rm.ID),
		zap.String("creator", name))

	return &Details{Room: rm, Members: s.repo.Members(rm.ID)}, nil
}

// Get retrieves a room with its current member list
func (s *Service) Get(ctx context.Context, id string) (*Details, error) {
	s.store.RLock()
	defer s.store.RUnlock()

	rm, ok := s.repo.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &Details{Room: rm, Members: s.repo.Members(id)}, nil
}

// Exists reports whether a room is present
func (s *Service) Exists(ctx context.Context, id string) bool {
	s.store.RLock()
	defer s.store.RUnlock()

	_, ok := s.repo.Get(id)
	return ok
}

// Join admits a user into a room after checking its password. Joining
// a room the user already belongs to is a no-op, not an error.
func (s *Service) Join(ctx context.Context, id string, req *JoinRoomRequest) (*Details, error) {
	name := strings.TrimSpace(req.NomUtilisateur)
	if name == "" || req.MotDePasse == "" {
		return nil, ErrCredentialsRequired
	}

	s.store.Lock()
	defer s.store.Unlock()

	rm, ok := s.repo.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	if rm.Password != req.MotDePasse {
		return nil, ErrWrongPassword
	}

	s.repo.AddMember(id, name)

	s.log.Info("user joined room",
		zap.String("roomId", id),
		zap.String("user", name))

	return &Details{Room: rm, Members: s.repo.Members(id)}, nil
}

// VerifyPassword checks a room password without any side effect
func (s *Service) VerifyPassword(ctx context.Context, id, password string) (bool, error) {
	if password == "" {
		return false, ErrPasswordRequired
	}

	s.store.RLock()
	defer s.store.RUnlock()

	rm, ok := s.repo.Get(id)
	if !ok {
		return false, ErrNotFound
	}
	return rm.Password == password, nil
}

// List retrieves every room with its member list. Debugging and
// administrative use only.
func (s *Service) List(ctx context.Context) ([]Details, error) {
	s.store.RLock()
	defer s.store.RUnlock()

	rooms := s.repo.All()
	details := make([]Details, len(rooms))
	for i, rm := range rooms {
		details[i] = Details{Room: rm, Members: s.repo.Members(rm.ID)}
	}
	return details, nil
}
