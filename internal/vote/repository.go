package vote

// Repository holds votes, keyed by identifier, and remembers their
// insertion order so listings stay stable.
//
// It does no locking of its own: callers must hold the shared
// storage.Memory lock around every call.
type Repository struct {
	votes map[string]Vote
	order []string
}

// NewRepository creates an empty vote repository
func NewRepository() *Repository {
	return &Repository{
		votes: make(map[string]Vote),
	}
}

// Insert stores a new vote
func (r *Repository) Insert(v Vote) {
	r.votes[v.ID] = v
	r.order = append(r.order, v.ID)
}

// Get retrieves a vote by its ID
func (r *Repository) Get(id string) (Vote, bool) {
	v, ok := r.votes[id]
	return v, ok
}

// Update replaces a stored vote. The vote must already exist.
func (r *Repository) Update(v Vote) {
	r.votes[v.ID] = v
}

// Delete removes a vote
func (r *Repository) Delete(id string) {
	delete(r.votes, id)
	for i, vid := range r.order {
		if vid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// ByProposal retrieves every vote for a proposal in insertion order
func (r *Repository) ByProposal(proposalID string) []Vote {
	out := make([]Vote, 0)
	for _, id := range r.order {
		if v := r.votes[id]; v.ProposalID == proposalID {
			out = append(out, v)
		}
	}
	return out
}

// ByVoter retrieves the single vote a user holds on a proposal
func (r *Repository) ByVoter(proposalID, voter string) (Vote, bool) {
	for _, id := range r.order {
		v := r.votes[id]
		if v.ProposalID == proposalID && v.Voter == voter {
			return v, true
		}
	}
	return Vote{}, false
}

// DeleteByProposal removes every vote referencing a proposal and
// reports how many were deleted. This is the cascade behind proposal
// deletion.
func (r *Repository) DeleteByProposal(proposalID string) int {
	removed := 0
	kept := r.order[:0]
	for _, id := range r.order {
		if r.votes[id].ProposalID == proposalID {
			delete(r.votes, id)
			removed++
			continue
		}
		kept = append(kept, id)
	}
	r.order = kept
	return removed
}
