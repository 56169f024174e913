package room

import "time"

// CreateRoomRequest represents the request to create a new room
type CreateRoomRequest struct {
	NomCreateur string `json:"nomCreateur"`
	MotDePasse  string `json:"motDePasse"`
}

// JoinRoomRequest represents the request to join an existing room
type JoinRoomRequest struct {
	NomUtilisateur string `json:"nomUtilisateur"`
	MotDePasse     string `json:"motDePasse"`
}

// VerifyPasswordRequest represents the request to check a room password
type VerifyPasswordRequest struct {
	MotDePasse string `json:"motDePasse"`
}

// RoomResponse represents a room as returned to clients. The password
// is never part of it.
type RoomResponse struct {
	ID                 string   `json:"id"`
	NomCreateur        string   `json:"nomCreateur"`
	DateCreation       string   `json:"dateCreation"`
	EstActive          bool     `json:"estActive"`
	NombreUtilisateurs int      `json:"nombreUtilisateurs,omitempty"`
	Utilisateurs       []string `json:"utilisateurs,omitempty"`
}

// VerifyPasswordResponse carries the outcome of a password check
type VerifyPasswordResponse struct {
	MotDePasseCorrect bool `json:"motDePasseCorrect"`
}

// ToResponse converts a Room model to a RoomResponse DTO without member details
func (r *Room) ToResponse() *RoomResponse {
	return &RoomResponse{
		ID:           r.ID,
		NomCreateur:  r.Creator,
		DateCreation: r.CreatedAt.UTC().Format(time.RFC3339),
		EstActive:    r.Active,
	}
}

// ToResponse converts room details to a RoomResponse DTO with member
// list and member count attached
func (d *Details) ToResponse() *RoomResponse {
	resp := d.Room.ToResponse()
	resp.NombreUtilisateurs = len(d.Members)
	resp.Utilisateurs = d.Members
	return resp
}

// ToSummaryResponse converts room details to a RoomResponse DTO with
// only the member count attached
func (d *Details) ToSummaryResponse() *RoomResponse {
	resp := d.Room.ToResponse()
	resp.NombreUtilisateurs = len(d.Members)
	return resp
}
