package proposal

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Synchroneyes/keskonmange/internal/live"
	"github.com/Synchroneyes/keskonmange/internal/room"
	"github.com/Synchroneyes/keskonmange/pkg/response"
)

// Handler handles HTTP requests for proposal operations
type Handler struct {
	service *Service
	feed    *live.Hub
}

// NewHandler creates a new proposal handler. feed may be nil when the
// live feed is disabled.
func NewHandler(service *Service, feed *live.Hub) *Handler {
	return &Handler{service: service, feed: feed}
}

// Routes returns the router for proposal endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/{id}", h.GetByID)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)

	return r
}

// Create handles POST /propositions
// @Summary      Add a meal proposal
// @Description  Nominate a restaurant for one weekday in a room. The submitter must be a room member.
// @Tags         propositions
// @Accept       json
// @Produce      json
// @Param        request body AddProposalRequest true "Proposal to add"
// @Success      201 {object} response.APIResponse{data=ProposalResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      403 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /propositions [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req AddProposalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Corps de requête invalide")
		return
	}

	p, err := h.service.Add(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingFields):
			response.BadRequest(w, "Tous les champs obligatoires doivent être renseignés (salleId, nomUtilisateur, nomRestaurant, jour)")
		case errors.Is(err, ErrInvalidDay):
			response.BadRequest(w, "Jour invalide. Utilisez: "+strings.Join(Weekdays, ", "))
		case errors.Is(err, room.ErrNotFound):
			response.NotFound(w, "Salle non trouvée")
		case errors.Is(err, ErrNotMember):
			response.Forbidden(w, "Vous devez rejoindre la salle avant de proposer un repas")
		default:
			response.InternalError(w, "Erreur lors de l'ajout de la proposition")
		}
		return
	}

	if h.feed != nil {
		h.feed.Publish(p.RoomID, live.Event{Type: live.EventProposalAdded, Data: p.ToResponse()})
	}

	response.JSONMessage(w, http.StatusCreated, p.ToResponse(), "Proposition ajoutée avec succès")
}

// List handles GET /propositions?salleId=&jour=
// @Summary      List a room's proposals
// @Description  List proposals for a room in insertion order, optionally filtered to one weekday
// @Tags         propositions
// @Produce      json
// @Param        salleId query string true "Room ID"
// @Param        jour query string false "Weekday filter (lundi..vendredi)"
// @Success      200 {object} response.APIResponse{data=[]ProposalResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /propositions [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	roomID := r.URL.Query().Get("salleId")
	if roomID == "" {
		response.BadRequest(w, "Le paramètre salleId est requis")
		return
	}
	jour := r.URL.Query().Get("jour")

	proposals, err := h.service.List(r.Context(), roomID, jour)
	if err != nil {
		if errors.Is(err, room.ErrNotFound) {
			response.NotFound(w, "Salle non trouvée")
			return
		}
		response.InternalError(w, "Erreur lors de la récupération des propositions")
		return
	}

	resp := make([]*ProposalResponse, len(proposals))
	for i := range proposals {
		resp[i] = proposals[i].ToResponse()
	}

	response.JSONMessage(w, http.StatusOK, resp, fmt.Sprintf("%d proposition(s) trouvée(s)", len(resp)))
}

// GetByID handles GET /propositions/{id}
// @Summary      Get proposal by ID
// @Tags         propositions
// @Produce      json
// @Param        id path string true "Proposal ID"
// @Success      200 {object} response.APIResponse{data=ProposalResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /propositions/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	p, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFound(w, "Proposition non trouvée")
			return
		}
		response.InternalError(w, "Erreur lors de la récupération de la proposition")
		return
	}

	response.JSON(w, http.StatusOK, p.ToResponse())
}

// Update handles PUT /propositions/{id}
// @Summary      Edit a proposal
// @Description  Update the restaurant name, description or price. Only the author may edit.
// @Tags         propositions
// @Accept       json
// @Produce      json
// @Param        id path string true "Proposal ID"
// @Param        request body UpdateProposalRequest true "Fields to update"
// @Success      200 {object} response.APIResponse{data=ProposalResponse}
// @Failure      403 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /propositions/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UpdateProposalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Corps de requête invalide")
		return
	}

	p, err := h.service.Edit(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.NotFound(w, "Proposition non trouvée")
		case errors.Is(err, ErrNotOwner):
			response.Forbidden(w, "Seul le créateur peut modifier cette proposition")
		default:
			response.InternalError(w, "Erreur lors de la modification de la proposition")
		}
		return
	}

	if h.feed != nil {
		h.feed.Publish(p.RoomID, live.Event{Type: live.EventProposalEdited, Data: p.ToResponse()})
	}

	response.JSONMessage(w, http.StatusOK, p.ToResponse(), "Proposition modifiée avec succès")
}

// Delete handles DELETE /propositions/{id}
// @Summary      Delete a proposal
// @Description  Delete a proposal and every vote referencing it. Only the author may delete.
// @Tags         propositions
// @Accept       json
// @Produce      json
// @Param        id path string true "Proposal ID"
// @Param        request body DeleteProposalRequest true "Requesting user"
// @Success      200 {object} response.APIResponse
// @Failure      403 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /propositions/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req DeleteProposalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Corps de requête invalide")
		return
	}

	p, err := h.service.Delete(r.Context(), id, req.NomUtilisateur)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.NotFound(w, "Proposition non trouvée")
		case errors.Is(err, ErrNotOwner):
			response.Forbidden(w, "Seul le créateur peut supprimer cette proposition")
		default:
			response.InternalError(w, "Erreur lors de la suppression de la proposition")
		}
		return
	}

	if h.feed != nil {
		h.feed.Publish(p.RoomID, live.Event{
			Type: live.EventProposalDeleted,
			Data: map[string]string{"propositionId": id},
		})
	}

	response.Message(w, http.StatusOK, "Proposition supprimée avec succès")
}
