package proposal

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func newTestServer(t *testing.T) (*httptest.Server, *fixture) {
	t.Helper()
	f := newFixture(t)
	srv := httptest.NewServer(NewHandler(f.service, nil).Routes())
	t.Cleanup(srv.Close)
	return srv, f
}

func doJSON(t *testing.T, method, url string, body interface{}) (*http.Response, envelope) {
	t.Helper()

	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshaling request: %v", err)
	}
	req, err := http.NewRequest(method, url, bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("building request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decoding envelope: %v", err)
	}
	return resp, env
}

func TestCreateProposalEndpoint(t *testing.T) {
	srv, f := newTestServer(t)

	resp, env := doJSON(t, http.MethodPost, srv.URL+"/", AddProposalRequest{
		SalleID:        f.roomID,
		NomUtilisateur: "Bob",
		NomRestaurant:  "Chez Mario",
		Jour:           Tuesday,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}
	if env.Message != "Proposition ajoutée avec succès" {
		t.Errorf("message = %q", env.Message)
	}

	var prop ProposalResponse
	if err := json.Unmarshal(env.Data, &prop); err != nil {
		t.Fatalf("decoding proposal: %v", err)
	}
	if prop.Prix != nil {
		t.Errorf("prix = %v, want null when omitted", prop.Prix)
	}
	if !bytes.Contains(env.Data, []byte(`"prix":null`)) {
		t.Errorf("prix should be serialized as null: %s", env.Data)
	}
}

func TestCreateProposalEndpointErrors(t *testing.T) {
	srv, f := newTestServer(t)

	tests := []struct {
		name       string
		req        AddProposalRequest
		wantStatus int
		wantMsg    string
	}{
		{
			"missing fields",
			AddProposalRequest{SalleID: f.roomID, NomUtilisateur: "Bob", Jour: Monday},
			http.StatusBadRequest,
			"Tous les champs obligatoires doivent être renseignés (salleId, nomUtilisateur, nomRestaurant, jour)",
		},
		{
			"invalid weekday",
			AddProposalRequest{SalleID: f.roomID, NomUtilisateur: "Bob", NomRestaurant: "Chez Mario", Jour: "dimanche"},
			http.StatusBadRequest,
			"Jour invalide. Utilisez: lundi, mardi, mercredi, jeudi, vendredi",
		},
		{
			"unknown room",
			AddProposalRequest{SalleID: "nope", NomUtilisateur: "Bob", NomRestaurant: "Chez Mario", Jour: Monday},
			http.StatusNotFound,
			"Salle non trouvée",
		},
		{
			"non-member",
			AddProposalRequest{SalleID: f.roomID, NomUtilisateur: "Eve", NomRestaurant: "Chez Mario", Jour: Monday},
			http.StatusForbidden,
			"Vous devez rejoindre la salle avant de proposer un repas",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, env := doJSON(t, http.MethodPost, srv.URL+"/", tt.req)
			if resp.StatusCode != tt.wantStatus {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			if env.Success {
				t.Error("expected error envelope")
			}
			if env.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", env.Message, tt.wantMsg)
			}
		})
	}
}

func TestListProposalsEndpoint(t *testing.T) {
	srv, f := newTestServer(t)
	f.add(t, "Alice", "Chez Mario", Monday)
	f.add(t, "Bob", "Le Bistrot", Tuesday)

	resp, err := http.Get(srv.URL + "/?salleId=" + f.roomID)
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decoding envelope: %v", err)
	}
	if env.Message != "2 proposition(s) trouvée(s)" {
		t.Errorf("message = %q", env.Message)
	}

	// Missing salleId is a 400, not an empty listing.
	resp, err = http.Get(srv.URL + "/")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status without salleId = %d, want 400", resp.StatusCode)
	}
}

func TestUpdateProposalEndpoint(t *testing.T) {
	srv, f := newTestServer(t)
	p := f.add(t, "Bob", "Chez Mario", Tuesday)

	name := "Chez Luigi"
	resp, env := doJSON(t, http.MethodPut, srv.URL+"/"+p.ID, UpdateProposalRequest{
		NomUtilisateur: "Alice",
		NomRestaurant:  &name,
	})
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", resp.StatusCode)
	}
	if env.Message != "Seul le créateur peut modifier cette proposition" {
		t.Errorf("message = %q", env.Message)
	}

	resp, env = doJSON(t, http.MethodPut, srv.URL+"/"+p.ID, UpdateProposalRequest{
		NomUtilisateur: "Bob",
		NomRestaurant:  &name,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var updated ProposalResponse
	if err := json.Unmarshal(env.Data, &updated); err != nil {
		t.Fatalf("decoding proposal: %v", err)
	}
	if updated.NomRestaurant != "Chez Luigi" {
		t.Errorf("nomRestaurant = %q, want Chez Luigi", updated.NomRestaurant)
	}
	if updated.DateModification == "" {
		t.Error("expected dateModification to be set")
	}
}

func TestDeleteProposalEndpoint(t *testing.T) {
	srv, f := newTestServer(t)
	p := f.add(t, "Bob", "Chez Mario", Tuesday)

	resp, env := doJSON(t, http.MethodDelete, srv.URL+"/"+p.ID, DeleteProposalRequest{NomUtilisateur: "Alice"})
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", resp.StatusCode)
	}
	if env.Message != "Seul le créateur peut supprimer cette proposition" {
		t.Errorf("message = %q", env.Message)
	}

	resp, env = doJSON(t, http.MethodDelete, srv.URL+"/"+p.ID, DeleteProposalRequest{NomUtilisateur: "Bob"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if env.Message != "Proposition supprimée avec succès" {
		t.Errorf("message = %q", env.Message)
	}

	if _, err := f.service.Get(context.Background(), p.ID); err == nil {
		t.Error("proposal still retrievable after delete")
	}
}
