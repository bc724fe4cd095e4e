package httpapi

import "net/http"

func (h *Handler) CollectiveBars(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CollectiveBars")
	defer span.End()

	bars, err := h.physicalService.CollectiveBars(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "collective bars failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, collectiveBarsToDTO(bars))
}

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	list, err := h.physicalService.ListMatches(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchListToDTO(list))
}

func (h *Handler) IndividualScatter(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.IndividualScatter")
	defer span.End()

	query := scatterQuery{Partido: queryValue(r.URL.Query(), "partido")}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	scatter, err := h.physicalService.IndividualScatter(ctx, query.Partido)
	if err != nil {
		h.logger.WarnContext(ctx, "individual scatter failed", "partido", query.Partido, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, individualScatterToDTO(scatter))
}

func (h *Handler) IndividualLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.IndividualLeaderboard")
	defer span.End()

	board, err := h.physicalService.IndividualLeaderboard(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "individual leaderboard failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leaderboardToDTO(board))
}

func (h *Handler) Evolution(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Evolution")
	defer span.End()

	evolution, err := h.physicalService.Evolution(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "evolution failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, evolutionToDTO(evolution))
}
