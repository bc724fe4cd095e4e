package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, metrics http.Handler) {
	mux.HandleFunc("GET /api/health", handler.Health)
	mux.HandleFunc("POST /api/actualizar-datos", handler.RefreshData)
	mux.HandleFunc("GET /api/scheduler/estado", handler.SchedulerStatus)
	if metrics != nil {
		mux.Handle("GET /metrics", metrics)
	}
}

func registerPhysicalRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/fisicos/barras-colectivas", handler.CollectiveBars)
	mux.HandleFunc("GET /api/fisicos/partidos", handler.ListMatches)
	mux.HandleFunc("GET /api/fisicos/scatter-individual", handler.IndividualScatter)
	mux.HandleFunc("GET /api/fisicos/barras-individuales", handler.IndividualLeaderboard)
	mux.HandleFunc("GET /api/fisicos/evolutivo", handler.Evolution)
}

func registerMicrocycleRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/microciclos/lista", handler.ListMicrocycles)
	mux.HandleFunc("GET /api/microciclos/equipo", handler.TeamMicrocycle)
}

func registerLeagueRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/rankings/global", handler.GlobalRanking)
	mux.HandleFunc("GET /api/rankings/verticales", handler.Verticals)
	mux.HandleFunc("GET /api/estilo-juego/scatter-ofensivo", handler.OffensiveStyle)
	mux.HandleFunc("GET /api/estilo-juego/scatter-defensivo", handler.DefensiveStyle)
	mux.HandleFunc("GET /api/estadisticos/resumen", handler.LeagueSummary)
	mux.HandleFunc("GET /api/estadisticos/comparativa", handler.LeagueComparison)
}
