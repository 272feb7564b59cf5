package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/school-tournament/internal/platform/dateutil"
	"github.com/riskibarqy/school-tournament/internal/platform/logging"
	"github.com/riskibarqy/school-tournament/internal/usecase"
)

// Services groups the use cases served over HTTP.
type Services struct {
	Auth       *usecase.AuthService
	Sports     *usecase.SportService
	Teams      *usecase.TeamService
	Tournament *usecase.TournamentService
	Matches    *usecase.MatchService
	Standings  *usecase.StandingService
	Discipline *usecase.DisciplineService
	Dashboard  *usecase.DashboardService
}

type Handler struct {
	authService       *usecase.AuthService
	sportService      *usecase.SportService
	teamService       *usecase.TeamService
	tournamentService *usecase.TournamentService
	matchService      *usecase.MatchService
	standingService   *usecase.StandingService
	disciplineService *usecase.DisciplineService
	dashboardService  *usecase.DashboardService
	logger            *logging.Logger
	validator         *validator.Validate
}

func NewHandler(services Services, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		authService:       services.Auth,
		sportService:      services.Sports,
		teamService:       services.Teams,
		tournamentService: services.Tournament,
		matchService:      services.Matches,
		standingService:   services.Standings,
		disciplineService: services.Discipline,
		dashboardService:  services.Dashboard,
		logger:            logger.Named("handler"),
		validator:         validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDashboard")
	defer span.End()

	overview, err := h.dashboardService.Overview(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get dashboard failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, dashboardToDTO(overview))
}

// decodeAndValidate reads a JSON body into req, rejecting unknown fields.
func (h *Handler) decodeAndValidate(ctx context.Context, r *http.Request, req any) error {
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(req); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return h.validateRequest(ctx, req)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func pathID(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer, got %q", usecase.ErrInvalidInput, name, raw)
	}
	return v, nil
}

// queryID reads an optional positive id filter. Absent means 0.
func queryID(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer, got %q", usecase.ErrInvalidInput, name, raw)
	}
	return v, nil
}

func parseDate(field, raw string) (time.Time, error) {
	v, err := dateutil.ParseOptional(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s: %v", usecase.ErrInvalidInput, field, err)
	}
	return v, nil
}
