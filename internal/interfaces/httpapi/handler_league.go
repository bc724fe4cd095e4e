package httpapi

import "net/http"

func (h *Handler) GlobalRanking(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GlobalRanking")
	defer span.End()

	ranking, err := h.leagueService.Ranking(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "global ranking failed", "team", h.leagueService.Team(), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, globalRankingToDTO(ranking))
}

func (h *Handler) Verticals(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Verticals")
	defer span.End()

	verticals, err := h.leagueService.Verticals(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "vertical rankings failed", "team", h.leagueService.Team(), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, verticalsToDTO(verticals))
}

func (h *Handler) OffensiveStyle(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.OffensiveStyle")
	defer span.End()

	style, err := h.leagueService.OffensiveStyle(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "offensive style failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, styleToDTO(style))
}

func (h *Handler) DefensiveStyle(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DefensiveStyle")
	defer span.End()

	style, err := h.leagueService.DefensiveStyle(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "defensive style failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, styleToDTO(style))
}

func (h *Handler) LeagueSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.LeagueSummary")
	defer span.End()

	summary, err := h.leagueService.Summary(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "league summary failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leagueSummaryToDTO(h.leagueService.Team(), summary))
}

func (h *Handler) LeagueComparison(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.LeagueComparison")
	defer span.End()

	comparison, err := h.leagueService.Comparison(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "league comparison failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, comparisonToDTO(comparison))
}
