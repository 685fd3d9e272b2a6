package httpapi

import (
	"net/http"
)

const defaultListLimit = 10

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, teamsToDTO(h.leagueService.ListTeams(ctx)))
}

func (h *Handler) ListStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListStandings")
	defer span.End()

	items, err := h.leagueService.Standings(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list standings failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, standingsToDTO(items))
}

func (h *Handler) GetTitleRace(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTitleRace")
	defer span.End()

	items, err := h.leagueService.TitleRace(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get title race failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, raceToDTO(items))
}

func (h *Handler) ListTopScorers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTopScorers")
	defer span.End()

	query, err := h.parseLimit(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.leagueService.TopScorers(ctx, query.Limit)
	if err != nil {
		h.logger.WarnContext(ctx, "list top scorers failed", "limit", query.Limit, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, scorersToDTO(items))
}

func (h *Handler) ListTopAssists(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTopAssists")
	defer span.End()

	query, err := h.parseLimit(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.leagueService.TopAssists(ctx, query.Limit)
	if err != nil {
		h.logger.WarnContext(ctx, "list top assists failed", "limit", query.Limit, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, assistsToDTO(items))
}

func (h *Handler) parseLimit(r *http.Request) (limitQuery, error) {
	limit, err := queryInt(r, "limit", defaultListLimit)
	if err != nil {
		return limitQuery{}, err
	}
	query := limitQuery{Limit: limit}
	if err := h.validateRequest(r.Context(), query); err != nil {
		return limitQuery{}, err
	}
	return query, nil
}
