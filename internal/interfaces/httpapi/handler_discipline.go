package httpapi

import (
	"net/http"

	"github.com/riskibarqy/school-tournament/internal/domain/discipline"
	"github.com/riskibarqy/school-tournament/internal/usecase"
)

func (h *Handler) ListDisciplinaryActions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListDisciplinaryActions")
	defer span.End()

	tournamentID, err := queryID(r, "tournament_id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.disciplineService.List(ctx, tournamentID)
	if err != nil {
		h.logger.ErrorContext(ctx, "list disciplinary actions failed", "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, disciplineToDTO))
}

func (h *Handler) GetDisciplineSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDisciplineSummary")
	defer span.End()

	tournamentID, err := queryID(r, "tournament_id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.disciplineService.PlayerSummary(ctx, tournamentID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, playerSummaryToDTO))
}

func (h *Handler) RecordDisciplinaryAction(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordDisciplinaryAction")
	defer span.End()

	var req disciplineRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	matchDate, err := parseDate("matchDate", req.MatchDate)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.disciplineService.Record(ctx, usecase.DisciplineInput{
		TournamentID: req.TournamentID,
		TeamID:       req.TeamID,
		PlayerName:   req.PlayerName,
		ActionType:   discipline.ActionType(req.ActionType),
		Reason:       req.Reason,
		MatchDate:    matchDate,
		Referee:      req.Referee,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "record disciplinary action failed", "tournament_id", req.TournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, disciplineToDTO(item))
}

func (h *Handler) DeleteDisciplinaryAction(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteDisciplinaryAction")
	defer span.End()

	actionID, err := pathID(r, "actionID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.disciplineService.Delete(ctx, actionID); err != nil {
		writeError(ctx, w, err)
		return
	}

	writeNoContent(w)
}
