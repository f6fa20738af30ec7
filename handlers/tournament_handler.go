package handlers

import (
	"net/http"

	"github.com/rubickshop/rubick-cup/models"
	"github.com/rubickshop/rubick-cup/services"
)

// TournamentHandler — read-only API дашборда плюс организаторский
// запуск жеребьёвки.
type TournamentHandler struct {
	roster     services.RosterService
	bracketSvc services.BracketService
	matches    services.MatchService
}

func NewTournamentHandler(
	roster services.RosterService,
	bracketSvc services.BracketService,
	matches services.MatchService,
) *TournamentHandler {
	return &TournamentHandler{
		roster:     roster,
		bracketSvc: bracketSvc,
		matches:    matches,
	}
}

func (h *TournamentHandler) ListTeams(w http.ResponseWriter, r *http.Request) {
	teams := h.roster.ListTeams()
	response := jsonResponse{
		"teams": teams,
		"count": len(teams),
		"quota": models.TeamQuota,
	}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w)
	}
}

func (h *TournamentHandler) GetBracket(w http.ResponseWriter, r *http.Request) {
	matches := h.matches.ListMatches()
	if err := writeJSON(w, http.StatusOK, jsonResponse{"matches": matches}, nil); err != nil {
		serverErrorResponse(w)
	}
}

func (h *TournamentHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	results := h.matches.ListResults()
	if err := writeJSON(w, http.StatusOK, jsonResponse{"results": results}, nil); err != nil {
		serverErrorResponse(w)
	}
}

func (h *TournamentHandler) GenerateBracket(w http.ResponseWriter, r *http.Request) {
	matches, err := h.bracketSvc.GenerateBracket(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}
	if err := writeJSON(w, http.StatusCreated, jsonResponse{"matches": matches}, nil); err != nil {
		serverErrorResponse(w)
	}
}
