package adapthttp

import (
	"encoding/json"
	"errors"
	"net/http"

	"grindtrack/internal/domain"
)

// handleData is the legacy blob contract: the client fetches and stores
// the whole roster as one JSON array.
func (s *Server) handleData(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	switch r.Method {
	case http.MethodGet:
		people, err := s.tracker.Roster(ctx)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		writeJSON(w, http.StatusOK, people)

	case http.MethodPost:
		var raw json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			writeError(w, http.StatusBadRequest, errors.New("payload must be a JSON array of people"))
			return
		}
		// A bare null decodes into a nil slice without error; only an
		// actual array may replace the roster.
		if len(raw) == 0 || raw[0] != '[' {
			writeError(w, http.StatusBadRequest, errors.New("payload must be a JSON array of people"))
			return
		}
		var people []domain.Person
		if err := json.Unmarshal(raw, &people); err != nil {
			writeError(w, http.StatusBadRequest, errors.New("payload must be a JSON array of people"))
			return
		}
		if err := s.tracker.ReplaceRoster(ctx, people); err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Data saved successfully"})

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
