package api

import (
	"net/http"

	"github.com/aiof/projection-engine/internal/domain"
	"github.com/aiof/projection-engine/internal/output"
)

func (s *Server) respond(w http.ResponseWriter, r *http.Request, f output.Formatter, contentType string, report *output.Report) {
	data, err := f.Format(report)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (s *Server) respondJSON(w http.ResponseWriter, r *http.Request, report *output.Report) {
	s.respond(w, r, output.JSONFormatter{}, "application/json", report)
}

func (s *Server) respondCSV(w http.ResponseWriter, r *http.Request, filename string, report *output.Report) {
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	s.respond(w, r, output.CSVFormatter{}, "text/csv", report)
}

// Health reports liveness
func (s *Server) Health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("Healthy"))
}

func (s *Server) Analyze(w http.ResponseWriter, r *http.Request) {
	var req domain.SnapshotRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	res, err := s.engine.Analyze(req.Assets, req.Liabilities)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.respondJSON(w, r, output.NewAnalyzeReport(res))
}

func (s *Server) AssetsFutureValue(w http.ResponseWriter, r *http.Request) {
	var req domain.SnapshotRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.respondJSON(w, r, output.NewAssetsFVReport(s.engine.AssetsFutureValue(req.Assets)))
}

func (s *Server) DebtToIncome(w http.ResponseWriter, r *http.Request) {
	var req domain.DebtToIncomeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	ratio, err := s.engine.DebtToIncomeRatio(req.Income, req.Liabilities)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.respondJSON(w, r, output.NewDebtToIncomeReport(ratio))
}

func (s *Server) LifeEventTypes(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, r, output.NewLifeEventTypesReport(s.engine.LifeEventTypes()))
}

func (s *Server) simulate(w http.ResponseWriter, r *http.Request) (*domain.LifeEventResult, bool) {
	var req domain.LifeEventRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return nil, false
	}
	res, err := s.engine.SimulateLifeEvent(req.Type, req.Assets, req.Liabilities)
	if err != nil {
		s.writeError(w, r, err)
		return nil, false
	}
	return res, true
}

func (s *Server) LifeEvent(w http.ResponseWriter, r *http.Request) {
	if res, ok := s.simulate(w, r); ok {
		s.respondJSON(w, r, output.NewLifeEventReport(res))
	}
}

func (s *Server) LifeEventCSV(w http.ResponseWriter, r *http.Request) {
	if res, ok := s.simulate(w, r); ok {
		s.respondCSV(w, r, "life_event.csv", output.NewLifeEventReport(res))
	}
}

func (s *Server) coastFire(w http.ResponseWriter, r *http.Request) ([]domain.CoastFireYear, bool) {
	var req domain.CoastFireRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return nil, false
	}
	years, err := s.engine.CoastFireRequest(req)
	if err != nil {
		s.writeError(w, r, err)
		return nil, false
	}
	return years, true
}

func (s *Server) CoastFire(w http.ResponseWriter, r *http.Request) {
	if years, ok := s.coastFire(w, r); ok {
		s.respondJSON(w, r, output.NewCoastFireReport(years))
	}
}

func (s *Server) CoastFireCSV(w http.ResponseWriter, r *http.Request) {
	if years, ok := s.coastFire(w, r); ok {
		s.respondCSV(w, r, "coast_fire_savings.csv", output.NewCoastFireReport(years))
	}
}

func (s *Server) CostOfRaisingChildren(w http.ResponseWriter, r *http.Request) {
	var req domain.ChildCostRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	costs, err := s.engine.CostOfRaisingChildren(req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.respondJSON(w, r, output.NewChildCostReport(costs))
}
