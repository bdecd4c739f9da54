package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Syug0/LOL-team-assignment/internal/api"
	"github.com/Syug0/LOL-team-assignment/internal/cache"
	"github.com/Syug0/LOL-team-assignment/internal/domain"
	"github.com/Syug0/LOL-team-assignment/internal/service"

	"github.com/rs/zerolog"
)

type TeamServer struct {
	playerSvc *service.PlayerService
	teamSvc   *service.TeamService
	riot      *api.RiotClient
	cache     *cache.Cache
	logger    zerolog.Logger
}

func NewTeamServer(playerSvc *service.PlayerService, teamSvc *service.TeamService, riot *api.RiotClient, c *cache.Cache, logger zerolog.Logger) *TeamServer {
	return &TeamServer{playerSvc: playerSvc, teamSvc: teamSvc, riot: riot, cache: c, logger: logger}
}

func (s *TeamServer) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/players/{handle}", s.GetPlayer)
	mux.HandleFunc("POST /api/teams/split", s.SplitTeams)
	mux.HandleFunc("GET /api/health", s.Health)
	return mux
}

func (s *TeamServer) GetPlayer(w http.ResponseWriter, r *http.Request) {
	profile, err := s.playerSvc.Resolve(r.Context(), r.PathValue("handle"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, profile)
}

type splitRequest struct {
	Players []domain.ScoredPlayer `json:"players"`
	Policy  string                `json:"policy"`
}

func (s *TeamServer) SplitTeams(w http.ResponseWriter, r *http.Request) {
	var req splitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, domain.NewValidationError("body", err.Error()))
		return
	}

	result, err := s.teamSvc.Split(req.Players, req.Policy)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

func (s *TeamServer) Health(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"status":        "ok",
		"cache_entries": s.cache.Len(),
		"rate_limit":    s.riot.GetRateLimitInfo(),
	})
}

// writeError passes upstream failures through with Riot's status and body.
func (s *TeamServer) writeError(w http.ResponseWriter, r *http.Request, err error) {
	logger := zerolog.Ctx(r.Context())

	var apiErr *api.APIError
	var validationErr *domain.ValidationError
	switch {
	case errors.As(err, &validationErr):
		logger.Info().Err(err).Msg("invalid request")
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": validationErr.Error()})
	case errors.As(err, &apiErr):
		logger.Warn().Err(err).Int("upstream_status", apiErr.StatusCode).Msg("upstream error")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(apiErr.StatusCode)
		w.Write([]byte(apiErr.Body))
	default:
		logger.Error().Err(err).Msg("request failed")
		s.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

func (s *TeamServer) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn().Err(err).Msg("failed to encode response")
	}
}
