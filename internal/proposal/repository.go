package proposal

// Repository holds meal proposals, keyed by identifier, and remembers
// their insertion order so listings stay stable.
//
// It does no locking of its own: callers must hold the shared
// storage.Memory lock around every call.
type Repository struct {
	proposals map[string]Proposal
	order     []string
}

// NewRepository creates an empty proposal repository
func NewRepository() *Repository {
	return &Repository{
		proposals: make(map[string]Proposal),
	}
}

// Insert stores a new proposal
func (r *Repository) Insert(p Proposal) {
	r.proposals[p.ID] = p
	r.order = append(r.order, p.ID)
}

// Get retrieves a proposal by its ID
func (r *Repository) Get(id string) (Proposal, bool) {
	p, ok := r.proposals[id]
	return p, ok
}

// Update replaces a stored proposal. The proposal must already exist.
func (r *Repository) Update(p Proposal) {
	r.proposals[p.ID] = p
}

// Delete removes a proposal
func (r *Repository) Delete(id string) {
	delete(r.proposals, id)
	for i, pid := range r.order {
		if pid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// ByRoom retrieves a room's proposals in insertion order, optionally
// filtered to one weekday. jour == "" means no filter.
func (r *Repository) ByRoom(roomID, jour string) []Proposal {
	out := make([]Proposal, 0)
	for _, id := range r.order {
		p := r.proposals[id]
		if p.RoomID != roomID {
			continue
		}
		if jour != "" && p.Weekday != jour {
			continue
		}
		out = append(out, p)
	}
	return out
}
