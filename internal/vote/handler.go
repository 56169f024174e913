package vote

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Synchroneyes/keskonmange/internal/live"
	"github.com/Synchroneyes/keskonmange/pkg/response"
)

// Handler handles HTTP requests for vote operations
type Handler struct {
	service *Service
	feed    *live.Hub
}

// NewHandler creates a new vote handler. feed may be nil when the live
// feed is disabled.
func NewHandler(service *Service, feed *live.Hub) *Handler {
	return &Handler{service: service, feed: feed}
}

// Routes returns the router for vote endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Cast)
	r.Get("/", h.List)
	r.Get("/proposition/{propositionId}", h.ListByProposal)
	r.Get("/utilisateur/{nomUtilisateur}/proposition/{propositionId}", h.GetUserVote)
	r.Delete("/{id}", h.Delete)

	return r
}

// Cast handles POST /votes
// @Summary      Vote on a proposal
// @Description  Cast a for/against vote. A second vote by the same member overwrites the first.
// @Tags         votes
// @Accept       json
// @Produce      json
// @Param        request body CastVoteRequest true "Vote to cast"
// @Success      200 {object} response.APIResponse{data=CastVoteResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      403 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /votes [post]
func (h *Handler) Cast(w http.ResponseWriter, r *http.Request) {
	var req CastVoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Corps de requête invalide")
		return
	}

	result, err := h.service.Cast(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingFields):
			response.BadRequest(w, "Tous les champs sont requis (propositionId, nomUtilisateur, typeVote)")
		case errors.Is(err, ErrInvalidValue):
			response.BadRequest(w, "Type de vote invalide. Utilisez: pour, contre")
		case errors.Is(err, ErrProposalNotFound):
			response.NotFound(w, "Proposition non trouvée")
		case errors.Is(err, ErrNotMember):
			response.Forbidden(w, "Vous devez être dans la salle pour voter")
		default:
			response.InternalError(w, "Erreur lors de l'enregistrement du vote")
		}
		return
	}

	if h.feed != nil {
		h.feed.Publish(result.RoomID, live.Event{
			Type: live.EventVoteCast,
			Data: map[string]interface{}{
				"propositionId": result.Vote.ProposalID,
				"statistiques":  result.Tally.ToResponse(),
			},
		})
	}

	message := "Vote enregistré avec succès"
	if result.Vote.ModifiedAt != nil {
		message = "Vote modifié avec succès"
	}

	response.JSONMessage(w, http.StatusOK, &CastVoteResponse{
		Vote:         result.Vote.ToResponse(),
		Statistiques: result.Tally.ToResponse(),
	}, message)
}

// List handles GET /votes?propositionId=
// @Summary      List a proposal's votes
// @Description  List every vote for a proposal together with its tally
// @Tags         votes
// @Produce      json
// @Param        propositionId query string true "Proposal ID"
// @Success      200 {object} response.APIResponse{data=ListVotesResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /votes [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	proposalID := r.URL.Query().Get("propositionId")
	if proposalID == "" {
		response.BadRequest(w, "Le paramètre propositionId est requis")
		return
	}

	h.listVotes(w, r, proposalID, true)
}

// ListByProposal handles GET /votes/proposition/{propositionId}
// @Summary      List a proposal's votes (path variant)
// @Tags         votes
// @Produce      json
// @Param        propositionId path string true "Proposal ID"
// @Success      200 {object} response.APIResponse{data=[]VoteResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /votes/proposition/{propositionId} [get]
func (h *Handler) ListByProposal(w http.ResponseWriter, r *http.Request) {
	h.listVotes(w, r, chi.URLParam(r, "propositionId"), false)
}

// listVotes serves both vote listing routes. The query-parameter route
// wraps the votes with statistics; the path route returns them bare.
func (h *Handler) listVotes(w http.ResponseWriter, r *http.Request, proposalID string, withStats bool) {
	votes, tally, err := h.service.ListForProposal(r.Context(), proposalID)
	if err != nil {
		if errors.Is(err, ErrProposalNotFound) {
			response.NotFound(w, "Proposition non trouvée")
			return
		}
		response.InternalError(w, "Erreur lors de la récupération des votes")
		return
	}

	resp := make([]*VoteResponse, len(votes))
	for i := range votes {
		resp[i] = votes[i].ToResponse()
	}

	if !withStats {
		response.JSON(w, http.StatusOK, resp)
		return
	}

	response.JSON(w, http.StatusOK, &ListVotesResponse{
		Votes:        resp,
		Statistiques: tally.ToStatsResponse(),
	})
}

// GetUserVote handles GET /votes/utilisateur/{nomUtilisateur}/proposition/{propositionId}
// @Summary      Get a member's vote on a proposal
// @Tags         votes
// @Produce      json
// @Param        nomUtilisateur path string true "User name"
// @Param        propositionId path string true "Proposal ID"
// @Success      200 {object} response.APIResponse{data=VoteResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /votes/utilisateur/{nomUtilisateur}/proposition/{propositionId} [get]
func (h *Handler) GetUserVote(w http.ResponseWriter, r *http.Request) {
	proposalID := chi.URLParam(r, "propositionId")
	userName := chi.URLParam(r, "nomUtilisateur")

	v, err := h.service.GetUserVote(r.Context(), proposalID, userName)
	if err != nil {
		switch {
		case errors.Is(err, ErrProposalNotFound):
			response.NotFound(w, "Proposition non trouvée")
		case errors.Is(err, ErrNotFound):
			response.NotFound(w, "Aucun vote trouvé pour cet utilisateur sur cette proposition")
		default:
			response.InternalError(w, "Erreur lors de la récupération du vote")
		}
		return
	}

	response.JSON(w, http.StatusOK, v.ToResponse())
}

// Delete handles DELETE /votes/{id}
// @Summary      Remove a vote
// @Description  Delete a vote. Members may only remove their own votes.
// @Tags         votes
// @Accept       json
// @Produce      json
// @Param        id path string true "Vote ID"
// @Param        request body RemoveVoteRequest true "Requesting user"
// @Success      200 {object} response.APIResponse
// @Failure      403 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /votes/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req RemoveVoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Corps de requête invalide")
		return
	}

	removal, err := h.service.Remove(r.Context(), id, req.NomUtilisateur)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.NotFound(w, "Vote non trouvé")
		case errors.Is(err, ErrNotOwner):
			response.Forbidden(w, "Vous ne pouvez supprimer que vos propres votes")
		default:
			response.InternalError(w, "Erreur lors de la suppression du vote")
		}
		return
	}

	if h.feed != nil && removal.Tally != nil {
		h.feed.Publish(removal.RoomID, live.Event{
			Type: live.EventVoteRemoved,
			Data: map[string]interface{}{
				"propositionId": removal.ProposalID,
				"statistiques":  removal.Tally.ToResponse(),
			},
		})
	}

	response.Message(w, http.StatusOK, "Vote supprimé avec succès")
}
