package api

import (
	"errors"
	"net/http"

	reqdto "locker-hub/internal/handler/dto/request"
	resdto "locker-hub/internal/handler/dto/response"
	"locker-hub/internal/handler/httperr"
	"locker-hub/internal/handler/middleware"
	"locker-hub/internal/usecase/commands"
	"locker-hub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	idempotencyKeyHeader     = "Idempotency-Key"
	idempotentReplayedHeader = "Idempotent-Replayed"
)

type ReservationHandler struct {
	cmds commands.ReservationCommands
	q    queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q}
}

// @Summary Reserve locker
// @Description Occupy an available locker for durationHours and issue an access code
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "UUID; repeating a request with the same key returns the first result"
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReserveResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	key, ok := idempotencyKey(c)
	if !ok {
		return
	}
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Reserve(c.Request.Context(), userID, req.LockerID, req.DurationHours, key)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	if result.Replayed {
		c.Header(idempotentReplayedHeader, "true")
	}
	c.Header("Location", "/api/reservations/"+result.ReservationID.String())
	c.JSON(http.StatusCreated, resdto.FromReserveResult(result))
}

// @Summary Get reservation
// @Description Get a reservation by ID (own reservations only unless admin)
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	role, _ := middleware.GetUserRole(c)

	view, err := h.q.GetByID(c.Request.Context(), id, userID, role)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resp, err := resdto.FromReservationView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List my reservations
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param status query string false "ACTIVE, COMPLETED or CANCELLED"
// @Param limit query int false "Max items (1-200)"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Router /api/reservations [get]
func (h *ReservationHandler) List(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var q reqdto.ListReservationsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}

	views, err := h.q.ListByUser(c.Request.Context(), userID, q.Status, q.Limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resp, err := resdto.FromReservationViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Reservation history
// @Description Completed reservations of the caller, newest first
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (1-200)"
// @Success 200 {array} resdto.HistoryResponse
// @Router /api/reservations/history [get]
func (h *ReservationHandler) History(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var q reqdto.ListReservationsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}

	views, err := h.q.History(c.Request.Context(), userID, q.Limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resp, err := resdto.FromHistoryViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Extend reservation
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.ExtendReservationRequest true "Extension"
// @Success 200 {object} resdto.ExtendResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/reservations/{id}/extend [post]
func (h *ReservationHandler) Extend(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var req reqdto.ExtendReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Extend(c.Request.Context(), id, userID, req.AdditionalHours)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromExtendResult(result))
}

// @Summary Release reservation
// @Description Complete the reservation, free the locker and record history
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReleaseResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/reservations/{id}/release [post]
func (h *ReservationHandler) Release(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	result, err := h.cmds.Release(c.Request.Context(), id, userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReleaseResult(result))
}

// @Summary Cancel reservation
// @Tags reservations
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/reservations/{id}/cancel [post]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	if err := h.cmds.Cancel(c.Request.Context(), id, userID); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}

func requireUser(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return uuid.Nil, false
	}
	return userID, true
}

// idempotencyKey returns uuid.Nil when the header is absent.
func idempotencyKey(c *gin.Context) (uuid.UUID, bool) {
	raw := c.GetHeader(idempotencyKeyHeader)
	if raw == "" {
		return uuid.Nil, true
	}
	key, err := uuid.Parse(raw)
	if err == nil && key == uuid.Nil {
		err = errors.New("idempotency key must not be the nil UUID")
	}
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid Idempotency-Key header", map[string]any{"header": idempotencyKeyHeader})
		return uuid.Nil, false
	}
	return key, true
}
