package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerLeagueRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/standings", handler.ListStandings)
	mux.HandleFunc("GET /v1/standings/race", handler.GetTitleRace)
	mux.HandleFunc("GET /v1/scorers", handler.ListTopScorers)
	mux.HandleFunc("GET /v1/assists", handler.ListTopAssists)
}

func registerMatchRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/matches", handler.ListMatches)
	mux.HandleFunc("GET /v1/matches/{matchID}", handler.GetMatch)
	mux.HandleFunc("GET /v1/matches/{matchID}/timeline", handler.GetMatchTimeline)
	mux.HandleFunc("GET /v1/matches/{matchID}/stats", handler.GetMatchStats)
	mux.HandleFunc("GET /v1/matches/{matchID}/lineups", handler.GetMatchLineups)
	mux.HandleFunc("GET /v1/matches/{matchID}/shots", handler.GetMatchShots)
	mux.HandleFunc("GET /v1/matches/{matchID}/xg", handler.GetMatchXGFlow)
	mux.HandleFunc("GET /v1/matches/{matchID}/pass-network", handler.GetMatchPassNetwork)
}

func registerTeamRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/teams/{teamID}", handler.GetTeamOverview)
	mux.HandleFunc("GET /v1/teams/{teamID}/shots", handler.GetTeamShots)
}

func registerPlayerRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/players/{playerID}", handler.GetPlayer)
	mux.HandleFunc("GET /v1/players/{playerID}/heatmap", handler.GetPlayerHeatmap)
	mux.HandleFunc("GET /v1/players/{playerID}/shots", handler.GetPlayerShots)
}
