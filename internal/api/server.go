// Package api exposes the projection engine over HTTP.
package api

import (
	"net/http"

	"github.com/aiof/projection-engine/internal/calculation"
	"github.com/aiof/projection-engine/internal/config"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// maxBodyBytes caps request bodies
const maxBodyBytes = 1 << 20

// Server routes HTTP requests to an engine
type Server struct {
	engine *calculation.Engine
	log    *logrus.Logger
	cfg    config.ServerConfig
}

// NewServer creates a server over engine
func NewServer(engine *calculation.Engine, log *logrus.Logger, cfg config.ServerConfig) *Server {
	return &Server{engine: engine, log: log, cfg: cfg}
}

// Handler returns the full handler chain: CORS, request logging and routing
func (s *Server) Handler() http.Handler {
	return s.cors(s.logRequests(s.Router()))
}

// Router registers every route on a new mux router
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeMessage(w, http.StatusNotFound, "route not found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeMessage(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.HandleFunc("/health", s.Health).Methods(http.MethodGet)

	r.HandleFunc("/api/analytics/analyze", s.Analyze).Methods(http.MethodPost)
	r.HandleFunc("/api/analytics/assets/fv", s.AssetsFutureValue).Methods(http.MethodPost)
	r.HandleFunc("/api/analytics/debt/income/ratio", s.DebtToIncome).Methods(http.MethodPost)
	r.HandleFunc("/api/analytics/life/event/types", s.LifeEventTypes).Methods(http.MethodGet)
	r.HandleFunc("/api/analytics/life/event", s.LifeEvent).Methods(http.MethodPost)
	r.HandleFunc("/api/analytics/life/event/csv", s.LifeEventCSV).Methods(http.MethodPost)

	r.HandleFunc("/api/fi/coast/fire/savings", s.CoastFire).Methods(http.MethodPost)
	r.HandleFunc("/api/fi/coast/fire/savings/csv", s.CoastFireCSV).Methods(http.MethodPost)
	r.HandleFunc("/api/fi/cost/of/raising/children", s.CostOfRaisingChildren).Methods(http.MethodPost)

	return r
}

// ListenAndServe blocks serving on the configured port
func (s *Server) ListenAndServe() error {
	srv := &http.Server{
		Addr:         s.cfg.Addr(),
		Handler:      s.Handler(),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}
	s.log.Infof("Starting server on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
