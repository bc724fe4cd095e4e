package httpapi

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/platform/logging"
	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/usecase"
	"github.com/go-playground/validator/v10"
)

type Handler struct {
	physicalService   *usecase.PhysicalService
	microcycleService *usecase.MicrocycleService
	leagueService     *usecase.LeagueService
	healthService     *usecase.HealthService
	scheduler         *usecase.Scheduler
	defaultRound      string
	logger            *logging.Logger
	validator         *validator.Validate
}

func NewHandler(
	physicalService *usecase.PhysicalService,
	microcycleService *usecase.MicrocycleService,
	leagueService *usecase.LeagueService,
	healthService *usecase.HealthService,
	scheduler *usecase.Scheduler,
	defaultRound string,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		physicalService:   physicalService,
		microcycleService: microcycleService,
		leagueService:     leagueService,
		healthService:     healthService,
		scheduler:         scheduler,
		defaultRound:      strings.TrimSpace(defaultRound),
		logger:            logger,
		validator:         validator.New(),
	}
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func queryValue(values url.Values, key string) string {
	return strings.TrimSpace(values.Get(key))
}
