package httpapi

import "net/http"

func (h *Handler) ListMicrocycles(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMicrocycles")
	defer span.End()

	items, err := h.microcycleService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list microcycles failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, microcycleListToDTO(items))
}

// TeamMicrocycle defaults jornada to the configured current round.
func (h *Handler) TeamMicrocycle(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.TeamMicrocycle")
	defer span.End()

	values := r.URL.Query()
	query := microcycleQuery{
		Jornada:       queryValue(values, "jornada"),
		TipoDistancia: queryValue(values, "tipo_distancia"),
	}
	if query.Jornada == "" {
		query.Jornada = h.defaultRound
	}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	cycle, err := h.microcycleService.Compose(ctx, query.Jornada, query.TipoDistancia)
	if err != nil {
		h.logger.WarnContext(ctx, "compose microcycle failed",
			"jornada", query.Jornada,
			"tipo_distancia", query.TipoDistancia,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, microcycleToDTO(cycle))
}
