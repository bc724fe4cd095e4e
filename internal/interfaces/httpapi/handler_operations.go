package httpapi

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/usecase"
	jsoniter "github.com/json-iterator/go"
)

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Health")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, healthToDTO(h.healthService.Check(ctx)))
}

// RefreshData runs a scheduler job synchronously. The body is optional and
// defaults to the refresh job.
func (h *Handler) RefreshData(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RefreshData")
	defer span.End()

	var req refreshRequest
	if r.Body != nil {
		payload, err := io.ReadAll(io.LimitReader(r.Body, 1<<12))
		if err != nil {
			writeError(ctx, w, fmt.Errorf("%w: read body: %v", usecase.ErrInvalidInput, err))
			return
		}
		if len(bytes.TrimSpace(payload)) > 0 {
			if err := jsoniter.Unmarshal(payload, &req); err != nil {
				writeError(ctx, w, fmt.Errorf("%w: invalid body: %v", usecase.ErrInvalidInput, err))
				return
			}
		}
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if req.Job == "" {
		req.Job = usecase.JobRefresh
	}

	run, err := h.scheduler.RunNow(ctx, req.Job)
	if err == nil {
		err = run.Err
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "manual job run failed", "job", req.Job, "error", err)
		writeError(ctx, w, err)
		return
	}

	message := "Datos actualizados correctamente"
	if run.Skipped {
		message = "La actualización ya está en curso"
	}
	writeJSON(ctx, w, http.StatusOK, responseEnvelope{
		Status:  statusSuccess,
		Data:    jobRunDTO{Job: run.Job, Omitido: run.Skipped, DuracionMs: run.Duration.Milliseconds()},
		Message: message,
	})
}

func (h *Handler) SchedulerStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SchedulerStatus")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, schedulerStatusToDTO(h.scheduler.Status()))
}
