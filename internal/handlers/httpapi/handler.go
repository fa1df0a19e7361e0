package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/KirkDiggler/stagedraw/internal/common/uuid"
	"github.com/KirkDiggler/stagedraw/internal/models"
	participantRepo "github.com/KirkDiggler/stagedraw/internal/repositories/participant"
	prizeRepo "github.com/KirkDiggler/stagedraw/internal/repositories/prize"
	winnerRepo "github.com/KirkDiggler/stagedraw/internal/repositories/winner"
	"github.com/KirkDiggler/stagedraw/internal/services/draw"
	"github.com/KirkDiggler/stagedraw/internal/services/export"
)

// Config holds configuration for the HTTP handler
type Config struct {
	DrawService     draw.Service
	ExportService   *export.Service
	ParticipantRepo participantRepo.Repository
	PrizeRepo       prizeRepo.Repository
	WinnerRepo      winnerRepo.Repository
	Hub             *Hub
	UUIDGenerator   uuid.UUID
	Clock           clockwork.Clock
}

// Handler serves the operator API and the display websocket
type Handler struct {
	drawService     draw.Service
	exportService   *export.Service
	participantRepo participantRepo.Repository
	prizeRepo       prizeRepo.Repository
	winnerRepo      winnerRepo.Repository
	hub             *Hub
	uuidGen         uuid.UUID
	clock           clockwork.Clock
}

// New creates a new HTTP handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.DrawService == nil {
		return nil, errors.New("draw service cannot be nil")
	}
	if cfg.ExportService == nil {
		return nil, errors.New("export service cannot be nil")
	}
	if cfg.ParticipantRepo == nil {
		return nil, errors.New("participant repository cannot be nil")
	}
	if cfg.PrizeRepo == nil {
		return nil, errors.New("prize repository cannot be nil")
	}
	if cfg.WinnerRepo == nil {
		return nil, errors.New("winner repository cannot be nil")
	}
	if cfg.Hub == nil {
		return nil, errors.New("hub cannot be nil")
	}
	if cfg.UUIDGenerator == nil {
		return nil, errors.New("UUID generator cannot be nil")
	}

	clock := cfg.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &Handler{
		drawService:     cfg.DrawService,
		exportService:   cfg.ExportService,
		participantRepo: cfg.ParticipantRepo,
		prizeRepo:       cfg.PrizeRepo,
		winnerRepo:      cfg.WinnerRepo,
		hub:             cfg.Hub,
		uuidGen:         cfg.UUIDGenerator,
		clock:           clock,
	}, nil
}

// Routes builds the chi router
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Route("/participants", func(r chi.Router) {
			r.Get("/", h.listParticipants)
			r.Post("/", h.addParticipant)
			r.Post("/batch", h.addParticipants)
			r.Post("/batch-delete", h.deleteParticipants)
			r.Delete("/{id}", h.deleteParticipant)
		})

		r.Route("/prizes", func(r chi.Router) {
			r.Get("/", h.listPrizes)
			r.Post("/", h.addPrize)
			r.Put("/{id}", h.updatePrize)
			r.Delete("/{id}", h.deletePrize)
			r.Post("/{id}/select", h.selectPrize)
			r.Post("/deselect", h.deselectPrize)
		})

		r.Get("/winners", h.listWinners)
		r.Get("/pool", h.eligiblePool)

		r.Route("/draw", func(r chi.Router) {
			r.Get("/state", h.drawState)
			r.Post("/commit", h.commit)
			r.Post("/spin", h.startSpin)
			r.Post("/stop", h.stop)
			r.Post("/clear", h.clear)
		})

		r.Get("/status", h.status)
		r.Get("/export/winners.csv", h.exportWinners)
	})

	r.Get("/ws", h.hub.ServeHTTP)

	return r
}

func (h *Handler) listParticipants(w http.ResponseWriter, r *http.Request) {
	out, err := h.participantRepo.ListParticipants(r.Context(), &participantRepo.ListParticipantsInput{})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, out.Participants)
}

func (h *Handler) addParticipant(w http.ResponseWriter, r *http.Request) {
	var req addParticipantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeStatus(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if req.Name == "" {
		h.writeStatus(w, http.StatusBadRequest, "name is required")
		return
	}

	p := &models.Participant{
		ID:       h.uuidGen.NewUUID(),
		Name:     req.Name,
		Tag:      req.Tag,
		Contact:  req.Contact,
		JoinedAt: h.clock.Now(),
	}

	if err := h.participantRepo.SaveParticipant(r.Context(), &participantRepo.SaveParticipantInput{Participant: p}); err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, p)
}

func (h *Handler) addParticipants(w http.ResponseWriter, r *http.Request) {
	var req addParticipantsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeStatus(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if len(req.Participants) == 0 {
		h.writeStatus(w, http.StatusBadRequest, "participants are required")
		return
	}

	now := h.clock.Now()
	participants := make([]*models.Participant, 0, len(req.Participants))
	for _, entry := range req.Participants {
		if entry.Name == "" {
			h.writeStatus(w, http.StatusBadRequest, "every participant needs a name")
			return
		}
		participants = append(participants, &models.Participant{
			ID:       h.uuidGen.NewUUID(),
			Name:     entry.Name,
			Tag:      entry.Tag,
			Contact:  entry.Contact,
			JoinedAt: now,
		})
	}

	if err := h.participantRepo.SaveParticipants(r.Context(), &participantRepo.SaveParticipantsInput{Participants: participants}); err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, participants)
}

func (h *Handler) deleteParticipant(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	err := h.participantRepo.DeleteParticipant(r.Context(), &participantRepo.DeleteParticipantInput{ParticipantID: id})
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteParticipants(w http.ResponseWriter, r *http.Request) {
	var req deleteParticipantsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeStatus(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if len(req.IDs) == 0 {
		h.writeStatus(w, http.StatusBadRequest, "ids are required")
		return
	}

	err := h.participantRepo.DeleteParticipants(r.Context(), &participantRepo.DeleteParticipantsInput{ParticipantIDs: req.IDs})
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listPrizes(w http.ResponseWriter, r *http.Request) {
	out, err := h.prizeRepo.ListPrizes(r.Context(), &prizeRepo.ListPrizesInput{})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, out.Prizes)
}

func (h *Handler) addPrize(w http.ResponseWriter, r *http.Request) {
	var req addPrizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeStatus(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if req.Name == "" || req.Quota <= 0 {
		h.writeStatus(w, http.StatusBadRequest, "name and a positive quota are required")
		return
	}

	p := &models.Prize{
		ID:             h.uuidGen.NewUUID(),
		Name:           req.Name,
		Image:          req.Image,
		Description:    req.Description,
		Quota:          req.Quota,
		RemainingQuota: req.Quota,
		CreatedAt:      h.clock.Now(),
	}

	if err := h.prizeRepo.SavePrize(r.Context(), &prizeRepo.SavePrizeInput{Prize: p}); err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, p)
}

func (h *Handler) updatePrize(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req addPrizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeStatus(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if req.Name == "" || req.Quota <= 0 {
		h.writeStatus(w, http.StatusBadRequest, "name and a positive quota are required")
		return
	}

	p, err := h.prizeRepo.GetPrize(r.Context(), &prizeRepo.GetPrizeInput{PrizeID: id})
	if err != nil {
		h.writeError(w, err)
		return
	}

	// Raising the total quota grants the difference back to the remaining
	// count; lowering it clamps remaining to the new total.
	remaining := p.RemainingQuota + (req.Quota - p.Quota)
	if remaining < 0 {
		remaining = 0
	}
	if remaining > req.Quota {
		remaining = req.Quota
	}

	p.Name = req.Name
	p.Image = req.Image
	p.Description = req.Description
	p.Quota = req.Quota
	p.RemainingQuota = remaining

	if err := h.prizeRepo.SavePrize(r.Context(), &prizeRepo.SavePrizeInput{Prize: p}); err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, p)
}

func (h *Handler) deletePrize(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.prizeRepo.DeletePrize(r.Context(), &prizeRepo.DeletePrizeInput{PrizeID: id}); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) selectPrize(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	out, err := h.drawService.SelectPrize(r.Context(), &draw.SelectPrizeInput{PrizeID: id})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, out.Session)
}

func (h *Handler) deselectPrize(w http.ResponseWriter, r *http.Request) {
	out, err := h.drawService.SelectPrize(r.Context(), &draw.SelectPrizeInput{})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, out.Session)
}

func (h *Handler) listWinners(w http.ResponseWriter, r *http.Request) {
	out, err := h.winnerRepo.ListWinners(r.Context(), &winnerRepo.ListWinnersInput{})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, out.Winners)
}

func (h *Handler) eligiblePool(w http.ResponseWriter, r *http.Request) {
	out, err := h.drawService.EligiblePool(r.Context(), &draw.EligiblePoolInput{})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, out.Participants)
}

func (h *Handler) drawState(w http.ResponseWriter, r *http.Request) {
	out, err := h.drawService.Status(r.Context(), &draw.StatusInput{})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, out.Session)
}

func (h *Handler) commit(w http.ResponseWriter, r *http.Request) {
	var req commitRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.writeStatus(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
	}

	out, err := h.drawService.Commit(r.Context(), &draw.CommitInput{PrizeID: req.PrizeID})
	if err != nil {
		h.writeError(w, err)
		return
	}

	// The predetermined winners stay server-side; the operator console
	// only needs the correlation id and the count
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"sessionId":   out.SessionID,
		"winnerCount": len(out.Winners),
	})
}

func (h *Handler) startSpin(w http.ResponseWriter, r *http.Request) {
	out, err := h.drawService.StartSpin(r.Context(), &draw.StartSpinInput{})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, out.Session)
}

func (h *Handler) stop(w http.ResponseWriter, r *http.Request) {
	out, err := h.drawService.Stop(r.Context(), &draw.StopInput{})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, out.Session)
}

func (h *Handler) clear(w http.ResponseWriter, r *http.Request) {
	out, err := h.drawService.Clear(r.Context(), &draw.ClearInput{})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, out.Session)
}

func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	out, err := h.drawService.Status(r.Context(), &draw.StatusInput{})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"phase":             out.Session.Phase,
		"sessionId":         out.Session.SessionID,
		"activeControllers": out.ActiveControllers,
		"leaseOwner":        out.LeaseOwner,
	})
}

func (h *Handler) exportWinners(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="winners.csv"`)

	if err := h.exportService.WriteWinnersCSV(r.Context(), w); err != nil {
		log.Error().Err(err).Msg("winners export failed")
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

func (h *Handler) writeStatus(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, errorResponse{Error: msg})
}

// writeError maps service errors onto HTTP statuses so the operator sees
// blocking conditions as blocking, not as server failures
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, draw.ErrSessionInProgress),
		errors.Is(err, draw.ErrOtherControllerActive):
		h.writeStatus(w, http.StatusConflict, err.Error())
	case errors.Is(err, draw.ErrNoPrizeSelected),
		errors.Is(err, draw.ErrPrizeExhausted),
		errors.Is(err, draw.ErrEmptyPool),
		errors.Is(err, draw.ErrNoActiveSession),
		errors.Is(err, draw.ErrInvalidPhase):
		h.writeStatus(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, participantRepo.ErrParticipantNotFound),
		errors.Is(err, prizeRepo.ErrPrizeNotFound),
		errors.Is(err, winnerRepo.ErrWinnerNotFound):
		h.writeStatus(w, http.StatusNotFound, err.Error())
	default:
		log.Error().Err(err).Msg("request failed")
		h.writeStatus(w, http.StatusInternalServerError, "internal error")
	}
}
