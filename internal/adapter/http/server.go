// Package adapthttp is the driving HTTP adapter that routes requests to
// the tracker service.
package adapthttp

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"grindtrack/internal/app"
)

// Server routes HTTP requests to the application services.
type Server struct {
	tracker     *app.TrackerService
	webDir      string
	historyDays int
}

// New creates a Server wired to the given tracker service. historyDays
// is the lookback window served when a history request names none; pass
// 0 for the built-in default.
func New(tracker *app.TrackerService, webDir string, historyDays int) *Server {
	if historyDays <= 0 {
		historyDays = app.DefaultHistoryDays
	}
	return &Server{tracker: tracker, webDir: webDir, historyDays: historyDays}
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "message": "Server is running"})
	})

	api.HandleFunc("/data", s.handleData)

	api.HandleFunc("/people", s.handlePeople)
	api.HandleFunc("/people/remove", s.handlePeopleRemove)

	api.HandleFunc("/submissions", s.handleSubmissions)
	api.HandleFunc("/weight", s.handleWeight)

	api.HandleFunc("/activities", s.handleActivities)
	api.HandleFunc("/progress", s.handleProgress)
	api.HandleFunc("/leaderboard", s.handleLeaderboard)
	api.HandleFunc("/history/daily", s.handleHistoryDaily)

	root := http.NewServeMux()
	root.Handle("/api/", http.StripPrefix("/api", api))
	root.Handle("/metrics", promhttp.Handler())
	root.Handle("/", spaFromDisk(s.webDir))

	return s.loggingMiddleware(withCORS(withNoCache(root)))
}
