package room

import "sort"

// Repository holds rooms and, per room, the set of member names.
//
// It does no locking of its own: callers must hold the shared
// storage.Memory lock around every call.
type Repository struct {
	rooms   map[string]Room
	members map[string]map[string]struct{}
}

// NewRepository creates an empty room repository
func NewRepository() *Repository {
	return &Repository{
		rooms:   make(map[string]Room),
		members: make(map[string]map[string]struct{}),
	}
}

// Insert stores a new room
func (r *Repository) Insert(rm Room) {
	r.rooms[rm.ID] = rm
}

// Get retrieves a room by its ID
func (r *Repository) Get(id string) (Room, bool) {
	rm, ok := r.rooms[id]
	return rm, ok
}

// All retrieves every room, ordered by creation time
func (r *Repository) All() []Room {
	rooms := make([]Room, 0, len(r.rooms))
	for _, rm := range r.rooms {
		rooms = append(rooms, rm)
	}
	sort.Slice(rooms, func(i, j int) bool {
		if rooms[i].CreatedAt.Equal(rooms[j].CreatedAt) {
			return rooms[i].ID < rooms[j].ID
		}
		return rooms[i].CreatedAt.Before(rooms[j].CreatedAt)
	})
	return rooms
}

// AddMember adds a user to a room's member set. Adding an existing
// member is a no-op.
func (r *Repository) AddMember(roomID, name string) {
	set, ok := r.members[roomID]
	if !ok {
		set = make(map[string]struct{})
		r.members[roomID] = set
	}
	set[name] = struct{}{}
}

// IsMember reports whether a user belongs to a room's member set
func (r *Repository) IsMember(roomID, name string) bool {
	set, ok := r.members[roomID]
	if !ok {
		return false
	}
	_, ok = set[name]
	return ok
}

// Members retrieves a room's member names, sorted
func (r *Repository) Members(roomID string) []string {
	set := r.members[roomID]
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
