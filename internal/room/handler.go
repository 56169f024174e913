package room

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Synchroneyes/keskonmange/pkg/response"
)

// Handler handles HTTP requests for room operations
type Handler struct {
	service *Service
	feed    http.HandlerFunc
}

// NewHandler creates a new room handler. feed serves the live room
// feed and may be nil when the feature is disabled.
func NewHandler(service *Service, feed http.HandlerFunc) *Handler {
	return &Handler{service: service, feed: feed}
}

// Routes returns the router for room endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/{id}", h.GetByID)
	r.Post("/{id}/rejoindre", h.Join)
	r.Post("/{id}/verifier-mot-de-passe", h.VerifyPassword)

	if h.feed != nil {
		r.Get("/{id}/flux", h.feed)
	}

	return r
}

// Create handles POST /salles
// @Summary      Create a voting room
// @Description  Create a new room and admit the creator as its first member
// @Tags         salles
// @Accept       json
// @Produce      json
// @Param        request body CreateRoomRequest true "Room creation request"
// @Success      201 {object} response.APIResponse{data=RoomResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /salles [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Corps de requête invalide")
		return
	}

	details, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNameRequired):
			response.BadRequest(w, "Le nom du créateur est requis")
		case errors.Is(err, ErrPasswordTooShort):
			response.BadRequest(w, "Le mot de passe doit contenir au moins 3 caractères")
		default:
			response.InternalError(w, "Erreur lors de la création de la salle")
		}
		return
	}

	response.JSONMessage(w, http.StatusCreated, details.Room.ToResponse(), "Salle créée avec succès")
}

// GetByID handles GET /salles/{id}
// @Summary      Get room by ID
// @Description  Get a room with its member list and member count
// @Tags         salles
// @Produce      json
// @Param        id path string true "Room ID"
// @Success      200 {object} response.APIResponse{data=RoomResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /salles/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	details, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFound(w, "Salle non trouvée")
			return
		}
		response.InternalError(w, "Erreur lors de la récupération de la salle")
		return
	}

	response.JSON(w, http.StatusOK, details.ToResponse())
}

// Join handles POST /salles/{id}/rejoindre
// @Summary      Join a room
// @Description  Join a room with its shared password; joining twice is a no-op
// @Tags         salles
// @Accept       json
// @Produce      json
// @Param        id path string true "Room ID"
// @Param        request body JoinRoomRequest true "Join request"
// @Success      200 {object} response.APIResponse{data=RoomResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      401 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /salles/{id}/rejoindre [post]
func (h *Handler) Join(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req JoinRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Corps de requête invalide")
		return
	}

	details, err := h.service.Join(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrCredentialsRequired):
			response.BadRequest(w, "Mot de passe et nom d'utilisateur requis")
		case errors.Is(err, ErrNotFound):
			response.NotFound(w, "Salle non trouvée")
		case errors.Is(err, ErrWrongPassword):
			response.Unauthorized(w, "Mot de passe incorrect")
		default:
			response.InternalError(w, "Erreur lors de la connexion à la salle")
		}
		return
	}

	response.JSONMessage(w, http.StatusOK, details.ToResponse(), "Vous avez rejoint la salle avec succès")
}

// VerifyPassword handles POST /salles/{id}/verifier-mot-de-passe
// @Summary      Verify a room password
// @Description  Check a room password without joining. The envelope's success flag mirrors the comparison result.
// @Tags         salles
// @Accept       json
// @Produce      json
// @Param        id path string true "Room ID"
// @Param        request body VerifyPasswordRequest true "Password to check"
// @Success      200 {object} response.APIResponse{data=VerifyPasswordResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /salles/{id}/verifier-mot-de-passe [post]
func (h *Handler) VerifyPassword(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req VerifyPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Corps de requête invalide")
		return
	}

	correct, err := h.service.VerifyPassword(r.Context(), id, req.MotDePasse)
	if err != nil {
		switch {
		case errors.Is(err, ErrPasswordRequired):
			response.BadRequest(w, "Mot de passe requis")
		case errors.Is(err, ErrNotFound):
			response.NotFound(w, "Salle non trouvée")
		default:
			response.InternalError(w, "Erreur lors de la vérification")
		}
		return
	}

	message := "Mot de passe incorrect"
	if correct {
		message = "Mot de passe correct"
	}

	// Historical contract: the envelope's success flag carries the
	// comparison result itself.
	response.Write(w, http.StatusOK, response.APIResponse{
		Success: correct,
		Data:    &VerifyPasswordResponse{MotDePasseCorrect: correct},
		Message: message,
	})
}

// List handles GET /salles
// @Summary      List all rooms
// @Description  List every room with its member count (debugging aid)
// @Tags         salles
// @Produce      json
// @Success      200 {object} response.APIResponse{data=[]RoomResponse}
// @Router       /salles [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	details, err := h.service.List(r.Context())
	if err != nil {
		response.InternalError(w, "Erreur lors de la récupération des salles")
		return
	}

	rooms := make([]*RoomResponse, len(details))
	for i := range details {
		rooms[i] = details[i].ToSummaryResponse()
	}

	response.JSONMessage(w, http.StatusOK, rooms, fmt.Sprintf("%d salle(s) trouvée(s)", len(rooms)))
}
