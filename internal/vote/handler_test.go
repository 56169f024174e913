package vote

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Synchroneyes/keskonmange/internal/proposal"
	"github.com/Synchroneyes/keskonmange/internal/room"
	"github.com/Synchroneyes/keskonmange/internal/storage"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// newAPIServer mounts the three feature routers the way the API binary
// does, without the live feed.
func newAPIServer(t *testing.T) *httptest.Server {
	t.Helper()

	store := storage.NewMemory()
	roomRepo := room.NewRepository()
	proposalRepo := proposal.NewRepository()
	voteRepo := NewRepository()

	logger := zap.NewNop()
	roomService := room.NewService(store, roomRepo, logger)
	proposalService := proposal.NewService(store, proposalRepo, roomRepo, voteRepo, logger)
	voteService := NewService(store, voteRepo, proposalRepo, roomRepo, logger)

	r := chi.NewRouter()
	r.Mount("/salles", room.NewHandler(roomService, nil).Routes())
	r.Mount("/propositions", proposal.NewHandler(proposalService, nil).Routes())
	r.Mount("/votes", NewHandler(voteService, nil).Routes())

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
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

func unmarshalData(t *testing.T, env envelope, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(env.Data, out); err != nil {
		t.Fatalf("decoding data: %v", err)
	}
}

// TestVotingScenario walks the whole flow: Alice opens a room, Bob
// joins and proposes a restaurant, both vote, then the votes are read
// back with their statistics.
func TestVotingScenario(t *testing.T) {
	srv := newAPIServer(t)

	// Alice creates the room.
	resp, env := doJSON(t, http.MethodPost, srv.URL+"/salles", room.CreateRoomRequest{
		NomCreateur: "Alice",
		MotDePasse:  "secret",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create room status = %d, want 201", resp.StatusCode)
	}
	var rm room.RoomResponse
	unmarshalData(t, env, &rm)

	// Bob joins.
	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/salles/"+rm.ID+"/rejoindre", room.JoinRoomRequest{
		NomUtilisateur: "Bob",
		MotDePasse:     "secret",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("join status = %d, want 200", resp.StatusCode)
	}

	// Bob proposes a restaurant for Tuesday.
	resp, env = doJSON(t, http.MethodPost, srv.URL+"/propositions", proposal.AddProposalRequest{
		SalleID:        rm.ID,
		NomUtilisateur: "Bob",
		NomRestaurant:  "Chez Mario",
		Jour:           proposal.Tuesday,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("add proposal status = %d, want 201", resp.StatusCode)
	}
	var prop proposal.ProposalResponse
	unmarshalData(t, env, &prop)

	// Alice votes for, Bob votes against.
	resp, env = doJSON(t, http.MethodPost, srv.URL+"/votes", CastVoteRequest{
		PropositionID:  prop.ID,
		NomUtilisateur: "Alice",
		TypeVote:       For,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("cast status = %d, want 200", resp.StatusCode)
	}
	if env.Message != "Vote enregistré avec succès" {
		t.Errorf("cast message = %q", env.Message)
	}

	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/votes", CastVoteRequest{
		PropositionID:  prop.ID,
		NomUtilisateur: "Bob",
		TypeVote:       Against,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("cast status = %d, want 200", resp.StatusCode)
	}

	// Eve never joined; her vote is rejected.
	resp, env = doJSON(t, http.MethodPost, srv.URL+"/votes", CastVoteRequest{
		PropositionID:  prop.ID,
		NomUtilisateur: "Eve",
		TypeVote:       For,
	})
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("outsider cast status = %d, want 403", resp.StatusCode)
	}
	if env.Message != "Vous devez être dans la salle pour voter" {
		t.Errorf("outsider message = %q", env.Message)
	}

	// Read the votes back with their statistics.
	req, err := http.Get(srv.URL + "/votes?propositionId=" + prop.ID)
	if err != nil {
		t.Fatalf("GET votes: %v", err)
	}
	if req.StatusCode != http.StatusOK {
		t.Fatalf("list votes status = %d, want 200", req.StatusCode)
	}
	var listEnv envelope
	if err := json.NewDecoder(req.Body).Decode(&listEnv); err != nil {
		t.Fatalf("decoding envelope: %v", err)
	}
	req.Body.Close()

	var list ListVotesResponse
	unmarshalData(t, listEnv, &list)
	if len(list.Votes) != 2 {
		t.Fatalf("got %d votes, want 2", len(list.Votes))
	}
	want := StatsResponse{TotalVotes: 2, VotesPour: 1, VotesContre: 1, PourcentagePour: 50}
	if list.Statistiques != want {
		t.Errorf("statistiques = %+v, want %+v", list.Statistiques, want)
	}

	// The proposal carries the refreshed counters.
	pResp, err := http.Get(srv.URL + "/propositions/" + prop.ID)
	if err != nil {
		t.Fatalf("GET proposal: %v", err)
	}
	var pEnv envelope
	if err := json.NewDecoder(pResp.Body).Decode(&pEnv); err != nil {
		t.Fatalf("decoding envelope: %v", err)
	}
	pResp.Body.Close()

	var refreshed proposal.ProposalResponse
	unmarshalData(t, pEnv, &refreshed)
	if refreshed.NombreVotes != 2 || refreshed.VotesPour != 1 || refreshed.VotesContre != 1 {
		t.Errorf("counters = %d/%d/%d, want 2/1/1", refreshed.NombreVotes, refreshed.VotesPour, refreshed.VotesContre)
	}
}

func TestCastVoteEndpointOverwriteMessage(t *testing.T) {
	srv := newAPIServer(t)

	_, env := doJSON(t, http.MethodPost, srv.URL+"/salles", room.CreateRoomRequest{
		NomCreateur: "Alice", MotDePasse: "secret",
	})
	var rm room.RoomResponse
	unmarshalData(t, env, &rm)

	_, env = doJSON(t, http.MethodPost, srv.URL+"/propositions", proposal.AddProposalRequest{
		SalleID: rm.ID, NomUtilisateur: "Alice", NomRestaurant: "Chez Mario", Jour: proposal.Monday,
	})
	var prop proposal.ProposalResponse
	unmarshalData(t, env, &prop)

	_, env = doJSON(t, http.MethodPost, srv.URL+"/votes", CastVoteRequest{
		PropositionID: prop.ID, NomUtilisateur: "Alice", TypeVote: For,
	})
	if env.Message != "Vote enregistré avec succès" {
		t.Errorf("first cast message = %q", env.Message)
	}

	_, env = doJSON(t, http.MethodPost, srv.URL+"/votes", CastVoteRequest{
		PropositionID: prop.ID, NomUtilisateur: "Alice", TypeVote: Against,
	})
	if env.Message != "Vote modifié avec succès" {
		t.Errorf("recast message = %q", env.Message)
	}
}

func TestRemoveVoteEndpoint(t *testing.T) {
	srv := newAPIServer(t)

	_, env := doJSON(t, http.MethodPost, srv.URL+"/salles", room.CreateRoomRequest{
		NomCreateur: "Alice", MotDePasse: "secret",
	})
	var rm room.RoomResponse
	unmarshalData(t, env, &rm)

	_, env = doJSON(t, http.MethodPost, srv.URL+"/propositions", proposal.AddProposalRequest{
		SalleID: rm.ID, NomUtilisateur: "Alice", NomRestaurant: "Chez Mario", Jour: proposal.Monday,
	})
	var prop proposal.ProposalResponse
	unmarshalData(t, env, &prop)

	_, env = doJSON(t, http.MethodPost, srv.URL+"/votes", CastVoteRequest{
		PropositionID: prop.ID, NomUtilisateur: "Alice", TypeVote: For,
	})
	var cast CastVoteResponse
	unmarshalData(t, env, &cast)

	// Bob cannot remove Alice's vote.
	resp, env := doJSON(t, http.MethodDelete, srv.URL+"/votes/"+cast.Vote.ID, RemoveVoteRequest{
		NomUtilisateur: "Bob",
	})
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("foreign removal status = %d, want 403", resp.StatusCode)
	}
	if env.Message != "Vous ne pouvez supprimer que vos propres votes" {
		t.Errorf("foreign removal message = %q", env.Message)
	}

	resp, env = doJSON(t, http.MethodDelete, srv.URL+"/votes/"+cast.Vote.ID, RemoveVoteRequest{
		NomUtilisateur: "Alice",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("removal status = %d, want 200", resp.StatusCode)
	}
	if env.Message != "Vote supprimé avec succès" {
		t.Errorf("removal message = %q", env.Message)
	}

	resp, _ = doJSON(t, http.MethodDelete, srv.URL+"/votes/"+cast.Vote.ID, RemoveVoteRequest{
		NomUtilisateur: "Alice",
	})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("second removal status = %d, want 404", resp.StatusCode)
	}
}

func TestListVotesEndpointMissingParam(t *testing.T) {
	srv := newAPIServer(t)

	resp, err := http.Get(srv.URL + "/votes")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}
