package httpapi

import (
	"net/http"

	"github.com/riskibarqy/school-tournament/internal/domain/standing"
)

func (h *Handler) ListStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListStandings")
	defer span.End()

	tournamentID, err := pathID(r, "tournamentID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rows, err := h.standingService.ListByTournament(ctx, tournamentID)
	if err != nil {
		h.logger.ErrorContext(ctx, "list standings failed", "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(rows, standingToDTO))
}

func (h *Handler) ListLeaders(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeaders")
	defer span.End()

	leaders, err := h.standingService.ListLeaders(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list leaders failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(leaders, func(v standing.Leader) leaderDTO {
		return leaderDTO{
			TournamentID:   v.Tournament.ID,
			TournamentName: v.Tournament.Name,
			SportID:        v.Tournament.SportID,
			Leader:         standingToDTO(v.Row),
		}
	}))
}
