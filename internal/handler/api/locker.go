package api

import (
	"net/http"

	reqdto "locker-hub/internal/handler/dto/request"
	resdto "locker-hub/internal/handler/dto/response"
	"locker-hub/internal/handler/httperr"
	"locker-hub/internal/pkg/errs"
	"locker-hub/internal/usecase/commands"
	"locker-hub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const defaultSearchRadiusMeters = 1000

var errUnauthenticated = errs.New("no authenticated user in context")

type LockerHandler struct {
	cmds commands.LockerCommands
	q    queries.LockerQueries
}

func NewLockerHandler(cmds commands.LockerCommands, q queries.LockerQueries) *LockerHandler {
	return &LockerHandler{cmds: cmds, q: q}
}

// @Summary List available lockers
// @Tags lockers
// @Produce json
// @Param locationId query string false "Location ID"
// @Param size query string false "SMALL, MEDIUM or LARGE"
// @Param limit query int false "Max items (1-200)"
// @Success 200 {array} resdto.LockerResponse
// @Failure 400 {object} httperr.Response
// @Router /api/lockers [get]
func (h *LockerHandler) ListAvailable(c *gin.Context) {
	var q reqdto.ListLockersQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}

	var locationID *uuid.UUID
	if q.LocationID != "" {
		id := uuid.MustParse(q.LocationID) // validated by binding
		locationID = &id
	}

	views, err := h.q.FindAvailable(c.Request.Context(), locationID, q.Size, q.Limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resp, err := resdto.FromLockerViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get locker
// @Tags lockers
// @Produce json
// @Param id path string true "Locker ID"
// @Success 200 {object} resdto.LockerResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/lockers/{id} [get]
func (h *LockerHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resp, err := resdto.FromLockerView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Nearby locations
// @Description Locations within radius meters, nearest first
// @Tags lockers
// @Produce json
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Param radius query number false "Radius in meters (default 1000, max 50000)"
// @Param limit query int false "Max items (1-200)"
// @Success 200 {array} resdto.LocationResponse
// @Failure 400 {object} httperr.Response
// @Router /api/locations/nearby [get]
func (h *LockerHandler) NearbyLocations(c *gin.Context) {
	var q reqdto.NearbyLocationsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	radius := q.Radius
	if radius == 0 {
		radius = defaultSearchRadiusMeters
	}

	views, err := h.q.FindNearbyLocations(c.Request.Context(), *q.Lat, *q.Lon, radius, q.Limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resp, err := resdto.FromLocationViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Start locker maintenance
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Locker ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/lockers/{id}/maintenance [post]
func (h *LockerHandler) StartMaintenance(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.cmds.StartMaintenance(c.Request.Context(), id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary End locker maintenance
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Locker ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/lockers/{id}/maintenance [delete]
func (h *LockerHandler) EndMaintenance(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.cmds.EndMaintenance(c.Request.Context(), id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
