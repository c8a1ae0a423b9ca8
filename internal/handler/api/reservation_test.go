//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"locker-hub/internal/domain/reservation"
	"locker-hub/internal/domain/user"
	"locker-hub/internal/handler/api"
	resdto "locker-hub/internal/handler/dto/response"
	"locker-hub/internal/pkg/errs"
	"locker-hub/internal/usecase/commands"
	"locker-hub/internal/usecase/queries"
	"locker-hub/tests/common/builder"
	"locker-hub/tests/common/httptest"
	"locker-hub/tests/common/testutil"
	commandsmock "locker-hub/tests/mock/commands"
	queriesmock "locker-hub/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
	userID       uuid.UUID
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	authMiddleware := fakeAuth(s.userID, user.RoleCustomer)

	s.router.POST("/reservations", authMiddleware, s.handler.Create)
	s.router.GET("/reservations", authMiddleware, s.handler.List)
	s.router.GET("/reservations/history", authMiddleware, s.handler.History)
	s.router.GET("/reservations/:id", authMiddleware, s.handler.Get)
	s.router.POST("/reservations/:id/extend", authMiddleware, s.handler.Extend)
	s.router.POST("/reservations/:id/release", authMiddleware, s.handler.Release)
	s.router.POST("/reservations/:id/cancel", authMiddleware, s.handler.Cancel)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

type testCaseReservation struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// fakeAuth stands in for the JWT middleware.
func fakeAuth(userID uuid.UUID, role user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", userID)
		c.Set("user_role", role)
		c.Next()
	}
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCreate() {
	url := "/reservations"
	b := builder.NewReservationBuilder()
	reqBody := b.BuildCreateRequestDTO()
	result := &commands.ReserveResult{
		ReservationID: b.ID,
		LockerID:      b.LockerID,
		AccessCode:    b.AccessCode,
		Status:        reservation.StatusActive,
		StartTime:     b.StartTime,
		ExpiresAt:     b.ExpectedEndTime(),
		TotalCost:     reservation.NewMoney(3000),
	}

	s.Run("success: returns 201 Created with access code", func() {
		s.mockCommands.EXPECT().Reserve(gomock.Any(), s.userID, b.LockerID, 3.0, uuid.Nil).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.ReserveResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(b.ID, body.ReservationID)
		s.Equal("482913", body.AccessCode)
		s.Equal(int64(3000), body.TotalCostCents)
		s.Equal("ACTIVE", body.Status)
		s.True(b.ExpectedEndTime().Equal(body.ExpiresAt))
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/reservations/" + b.ID.String()})
		s.Empty(rec.Header().Get("Idempotent-Replayed"))
	})

	s.Run("success: Idempotency-Key is passed through and replays are flagged", func() {
		key := uuid.New()
		replayed := *result
		replayed.Replayed = true
		s.mockCommands.EXPECT().Reserve(gomock.Any(), s.userID, b.LockerID, 3.0, key).
			Return(&replayed, nil).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody,
			map[string]string{"Idempotency-Key": key.String()}, "bearer-token")

		var body resdto.ReserveResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(b.ID, body.ReservationID)
		s.Equal("482913", body.AccessCode)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Idempotent-Replayed": "true"})
	})

	s.Run("error: 400 Bad Request for malformed Idempotency-Key", func() {
		for _, key := range []string{"abc", uuid.Nil.String()} {
			rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody,
				map[string]string{"Idempotency-Key": key}, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid Idempotency-Key header")
		}
	})

	validation := []testCaseReservation{
		{name: "missing field: lockerId", mutate: testutil.Field("lockerId", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: durationHours", mutate: testutil.Field("durationHours", nil), expectCode: http.StatusBadRequest},
		{name: "malformed lockerId", mutate: testutil.Field("lockerId", "not-a-uuid"), expectCode: http.StatusBadRequest},
		{name: "zero durationHours", mutate: testutil.Field("durationHours", 0), expectCode: http.StatusBadRequest},
	}

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, tc := range validation {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{"negative hours", errs.Mark(reservation.ErrInvalidDuration, errs.ErrInvalidInput), http.StatusBadRequest, "Invalid request"},
			{"locker missing", errs.Mark(errors.New("locker not found"), errs.ErrNotFound), http.StatusNotFound, "Not found"},
			{"locker taken", errs.Mark(errors.New("locker is not available"), errs.ErrResourceUnavailable), http.StatusConflict, "not available"},
			{"idempotency key reused", errs.Mark(commands.ErrIdempotencyKeyReused, errs.ErrConflict), http.StatusConflict, "Conflicting state"},
			{"lock timeout", errs.Mark(errors.New("lock timeout"), errs.ErrTransient), http.StatusServiceUnavailable, "retry"},
			{"unexpected", errors.New("database error"), http.StatusInternalServerError, "Internal server error"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Reserve(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *ReservationHandlerTestSuite) TestGet() {
	b := builder.NewReservationBuilder()
	url := "/reservations/" + b.ID.String()

	s.Run("success: returns 200 OK with ReservationResponse", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), b.ID, s.userID, user.RoleCustomer).
			Return(b.BuildView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(b.ID, response.ID)
		s.Equal(b.LockerID, response.LockerID)
		s.Equal("ACTIVE", response.Status)
		s.Nil(response.ExtendedEndTime)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/invalid-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 403 Forbidden for another user's reservation", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), b.ID, s.userID, user.RoleCustomer).
			Return(nil, errs.Mark(queries.ErrReservationAccess, errs.ErrForbidden)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Forbidden")
	})

	s.Run("error: 404 Not Found for missing reservation", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), b.ID, gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errors.New("reservation not found"), errs.ErrNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})
}

// ================================================================================
// TestList / TestHistory
// ================================================================================

func (s *ReservationHandlerTestSuite) TestList() {
	s.Run("success: status and limit are forwarded", func() {
		views := []*queries.ReservationView{builder.NewReservationBuilder().BuildView()}
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID, "ACTIVE", 10).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations?status=ACTIVE&limit=10", nil, "bearer-token")

		var response []resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})

	s.Run("error: 400 Bad Request for out of range limit", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations?limit=500", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
	})

	s.Run("error: 400 Bad Request for unknown status", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID, "PENDING", 0).
			Return(nil, errs.Mark(reservation.ErrInvalidStatus, errs.ErrInvalidInput)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations?status=PENDING", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *ReservationHandlerTestSuite) TestHistory() {
	s.Run("success: returns history records", func() {
		views := []*queries.HistoryView{{
			ReservationID:  uuid.New(),
			LockerID:       uuid.New(),
			StartTime:      time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC),
			EndTime:        time.Date(2025, 1, 1, 13, 0, 0, 0, time.UTC),
			TotalHours:     3,
			TotalCostCents: 3000,
		}}
		s.mockQueries.EXPECT().History(gomock.Any(), s.userID, 0).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/history", nil, "bearer-token")

		var response []resdto.HistoryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 1)
		s.Equal(int64(3), response[0].TotalHours)
		s.Equal(int64(3000), response[0].TotalCostCents)
	})
}

// ================================================================================
// TestExtend / TestRelease / TestCancel
// ================================================================================

func (s *ReservationHandlerTestSuite) TestExtend() {
	id := uuid.New()
	url := "/reservations/" + id.String() + "/extend"
	newEnd := time.Date(2025, 1, 1, 15, 0, 0, 0, time.UTC)

	s.Run("success: returns accrued totals", func() {
		s.mockCommands.EXPECT().Extend(gomock.Any(), id, s.userID, 2.0).Return(&commands.ExtendResult{
			ReservationID:  id,
			LockerID:       uuid.New(),
			NewEndTime:     newEnd,
			AdditionalCost: reservation.NewMoney(2000),
			TotalCost:      reservation.NewMoney(5000),
			ExtensionCount: 1,
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"additionalHours": 2}, "bearer-token")

		var body resdto.ExtendResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(2000), body.AdditionalCostCents)
		s.Equal(int64(5000), body.TotalCostCents)
		s.Equal(1, body.ExtensionCount)
		s.True(newEnd.Equal(body.NewEndTime))
	})

	s.Run("error: 400 Bad Request without additionalHours", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 409 Conflict for a finished reservation", func() {
		s.mockCommands.EXPECT().Extend(gomock.Any(), id, s.userID, 1.0).
			Return(nil, errs.Mark(reservation.ErrNotActive, errs.ErrConflict)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"additionalHours": 1}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})

	s.Run("error: 403 Forbidden for another user's reservation", func() {
		s.mockCommands.EXPECT().Extend(gomock.Any(), id, s.userID, 1.0).
			Return(nil, errs.Mark(reservation.ErrNotOwner, errs.ErrForbidden)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"additionalHours": 1}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Forbidden")
	})
}

func (s *ReservationHandlerTestSuite) TestRelease() {
	id := uuid.New()
	url := "/reservations/" + id.String() + "/release"
	end := time.Date(2025, 1, 1, 12, 30, 0, 0, time.UTC)

	s.Run("success: returns settlement", func() {
		s.mockCommands.EXPECT().Release(gomock.Any(), id, s.userID).Return(&commands.ReleaseResult{
			ReservationID: id,
			ActualEndTime: end,
			TotalHours:    3,
			TotalCost:     reservation.NewMoney(3000),
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var body resdto.ReleaseResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(3), body.TotalHours)
		s.Equal(int64(3000), body.TotalCostCents)
	})

	s.Run("error: 404 Not Found", func() {
		s.mockCommands.EXPECT().Release(gomock.Any(), id, s.userID).
			Return(nil, errs.Mark(errors.New("reservation not found"), errs.ErrNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})
}

func (s *ReservationHandlerTestSuite) TestCancel() {
	id := uuid.New()
	url := "/reservations/" + id.String() + "/cancel"

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), id, s.userID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 Conflict when already cancelled", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), id, s.userID).
			Return(errs.Mark(reservation.ErrNotActive, errs.ErrConflict)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})
}
