//go:build e2e

package reservation_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	stdhttptest "net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"locker-hub/internal/domain/user"
	"locker-hub/internal/handler/dto/request"
	"locker-hub/internal/handler/dto/response"
	"locker-hub/tests/common/authtest"
	"locker-hub/tests/common/dbtest"
	"locker-hub/tests/common/httptest"
	"locker-hub/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/sync/errgroup"
)

const (
	reservationsURL = "/api/reservations"
	reservationURL  = "/api/reservations/%s"
	historyURL      = "/api/reservations/history"
)

type ReservationSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func (s *ReservationSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *ReservationSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestReservationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ReservationSuite))
}

func (s *ReservationSuite) reserve(token string, lockerID uuid.UUID, hours float64) response.ReserveResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
		request.CreateReservationRequest{LockerID: lockerID, DurationHours: hours}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created response.ReserveResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
	return created
}

// fire sends the requests at once and returns their status codes in order.
func (s *ReservationSuite) fire(token string, reqs ...firedRequest) []int {
	t := s.T()
	codes := make([]int, len(reqs))
	var g errgroup.Group
	for i, fr := range reqs {
		g.Go(func() error {
			var raw []byte
			if fr.body != nil {
				var err error
				if raw, err = json.Marshal(fr.body); err != nil {
					return err
				}
			}
			req := stdhttptest.NewRequest(http.MethodPost, fr.path, bytes.NewReader(raw))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Authorization", "Bearer "+token)
			w := stdhttptest.NewRecorder()
			s.Router.ServeHTTP(w, req)

			switch w.Code {
			case http.StatusOK, http.StatusNoContent, http.StatusConflict:
				codes[i] = w.Code
				return nil
			default:
				return fmt.Errorf("%s: unexpected status %d: %s", fr.path, w.Code, w.Body.String())
			}
		})
	}
	require.NoError(t, g.Wait())
	return codes
}

type firedRequest struct {
	path string
	body any
}

func succeeded(code int) bool {
	return code == http.StatusOK || code == http.StatusNoContent
}

// =============================================================================
// TestReserve
// =============================================================================

func (s *ReservationSuite) TestReserve() {
	s.Run("Normal case: locker becomes occupied and reservation is readable", func() {
		t := s.T()
		lockerID := dbtest.CreateAvailableLocker(t, s.DB, "A-101")
		userID, token := s.jwt.NewCustomer(t)

		created := s.reserve(token, lockerID, 3)

		require.Len(t, created.AccessCode, 6)
		require.Equal(t, int64(3000), created.TotalCostCents)
		require.Equal(t, "ACTIVE", created.Status)
		require.Equal(t, "OCCUPIED", dbtest.LockerStatus(t, s.DB, lockerID))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(reservationURL, created.ReservationID), nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		var actual response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &actual))

		expected := response.ReservationResponse{
			ID:              created.ReservationID,
			UserID:          userID,
			LockerID:        lockerID,
			Status:          "ACTIVE",
			HourlyRateCents: 1000,
			TotalCostCents:  3000,
			AccessCode:      created.AccessCode,
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.ReservationResponse{}, "StartTime", "ExpectedEndTime", "CreatedAt"),
		}
		if diff := cmp.Diff(expected, actual, opts...); diff != "" {
			t.Errorf("Reservation response mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Normal case: fractional hours bill the started hour", func() {
		t := s.T()
		lockerID := dbtest.CreateAvailableLocker(t, s.DB, "A-102")
		_, token := s.jwt.NewCustomer(t)

		created := s.reserve(token, lockerID, 1.5)

		require.Equal(t, int64(2000), created.TotalCostCents)
	})

	s.Run("Concurrency: exactly one of many simultaneous requests wins", func() {
		t := s.T()
		lockerID := dbtest.CreateAvailableLocker(t, s.DB, "A-103")

		const contenders = 8
		tokens := make([]string, contenders)
		for i := range tokens {
			_, tokens[i] = s.jwt.NewCustomer(t)
		}
		body, err := json.Marshal(request.CreateReservationRequest{LockerID: lockerID, DurationHours: 2})
		require.NoError(t, err)

		var created, unavailable atomic.Int32
		var g errgroup.Group
		for _, token := range tokens {
			g.Go(func() error {
				req := stdhttptest.NewRequest(http.MethodPost, reservationsURL, bytes.NewReader(body))
				req.Header.Set("Content-Type", "application/json")
				req.Header.Set("Authorization", "Bearer "+token)
				w := stdhttptest.NewRecorder()
				s.Router.ServeHTTP(w, req)

				switch w.Code {
				case http.StatusCreated:
					created.Add(1)
				case http.StatusConflict:
					unavailable.Add(1)
				default:
					return fmt.Errorf("unexpected status %d: %s", w.Code, w.Body.String())
				}
				return nil
			})
		}
		require.NoError(t, g.Wait())

		require.Equal(t, int32(1), created.Load())
		require.Equal(t, int32(contenders-1), unavailable.Load())
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "reservations", "locker_id = $1 AND status = 'ACTIVE'", lockerID))
	})

	s.Run("Normal case: repeated Idempotency-Key returns the first reservation", func() {
		t := s.T()
		lockerID := dbtest.CreateAvailableLocker(t, s.DB, "A-107")
		userID, token := s.jwt.NewCustomer(t)
		body := request.CreateReservationRequest{LockerID: lockerID, DurationHours: 2}
		headers := map[string]string{"Idempotency-Key": uuid.NewString()}

		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, reservationsURL, body, headers, token)
		var first response.ReserveResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &first)
		require.Empty(t, w.Header().Get("Idempotent-Replayed"))

		w = httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, reservationsURL, body, headers, token)
		var second response.ReserveResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &second)
		require.Equal(t, "true", w.Header().Get("Idempotent-Replayed"))

		require.Equal(t, first.ReservationID, second.ReservationID)
		require.Equal(t, first.AccessCode, second.AccessCode)
		require.True(t, first.ExpiresAt.Equal(second.ExpiresAt))
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "reservations", "user_id = $1", userID))
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "idempotency_keys", "user_id = $1 AND reservation_id = $2", userID, first.ReservationID))

		other := request.CreateReservationRequest{LockerID: lockerID, DurationHours: 3}
		w = httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, reservationsURL, other, headers, token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "")
	})

	s.Run("Concurrency: one key sent in parallel reserves once", func() {
		t := s.T()
		lockerID := dbtest.CreateAvailableLocker(t, s.DB, "A-108")
		userID, token := s.jwt.NewCustomer(t)
		body, err := json.Marshal(request.CreateReservationRequest{LockerID: lockerID, DurationHours: 1})
		require.NoError(t, err)
		key := uuid.NewString()

		const attempts = 4
		ids := make([]uuid.UUID, attempts)
		var g errgroup.Group
		for i := range attempts {
			g.Go(func() error {
				req := stdhttptest.NewRequest(http.MethodPost, reservationsURL, bytes.NewReader(body))
				req.Header.Set("Content-Type", "application/json")
				req.Header.Set("Authorization", "Bearer "+token)
				req.Header.Set("Idempotency-Key", key)
				w := stdhttptest.NewRecorder()
				s.Router.ServeHTTP(w, req)
				if w.Code != http.StatusCreated {
					return fmt.Errorf("unexpected status %d: %s", w.Code, w.Body.String())
				}
				var created response.ReserveResponse
				if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
					return err
				}
				ids[i] = created.ReservationID
				return nil
			})
		}
		require.NoError(t, g.Wait())

		for _, id := range ids[1:] {
			require.Equal(t, ids[0], id)
		}
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "reservations", "user_id = $1", userID))
	})

	s.Run("Error case: occupied and maintenance lockers are unavailable", func() {
		t := s.T()
		occupied := dbtest.CreateTestLocker(t, s.DB, dbtest.DefaultLocationID, "B-201", "SMALL", "OCCUPIED", 500)
		maintenance := dbtest.CreateTestLocker(t, s.DB, dbtest.DefaultLocationID, "B-202", "SMALL", "MAINTENANCE", 500)
		_, token := s.jwt.NewCustomer(t)

		for _, id := range []uuid.UUID{occupied, maintenance} {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
				request.CreateReservationRequest{LockerID: id, DurationHours: 1}, token)
			httptest.AssertErrorResponse(t, w, http.StatusConflict, "not available")
		}
		require.Equal(t, 0, dbtest.CountRows(t, s.DB, "reservations", "true"))
	})

	s.Run("Error case: unknown locker", func() {
		t := s.T()
		_, token := s.jwt.NewCustomer(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
			request.CreateReservationRequest{LockerID: uuid.New(), DurationHours: 1}, token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Not found")
	})

	s.Run("Error case: duration above the maximum", func() {
		t := s.T()
		lockerID := dbtest.CreateAvailableLocker(t, s.DB, "A-104")
		_, token := s.jwt.NewCustomer(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
			request.CreateReservationRequest{LockerID: lockerID, DurationHours: 100}, token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid request")
		require.Equal(t, "AVAILABLE", dbtest.LockerStatus(t, s.DB, lockerID))
	})

	s.Run("Error case: missing and expired tokens", func() {
		t := s.T()
		lockerID := dbtest.CreateAvailableLocker(t, s.DB, "A-105")
		body := request.CreateReservationRequest{LockerID: lockerID, DurationHours: 1}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, body, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Access token required")

		expired := s.jwt.CreateExpiredToken(t, uuid.New(), user.RoleCustomer)
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, body, expired)
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("Normal case: access token cookie is accepted", func() {
		t := s.T()
		lockerID := dbtest.CreateAvailableLocker(t, s.DB, "A-106")
		_, token := s.jwt.NewCustomer(t)
		cookies := []*http.Cookie{{Name: "access_token", Value: token}}

		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, reservationsURL,
			request.CreateReservationRequest{LockerID: lockerID, DurationHours: 1}, cookies, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})
}

// =============================================================================
// TestExtend
// =============================================================================

func (s *ReservationSuite) TestExtend() {
	s.Run("Normal case: cost accrues across extensions", func() {
		t := s.T()
		lockerID := dbtest.CreateAvailableLocker(t, s.DB, "C-301")
		_, token := s.jwt.NewCustomer(t)
		created := s.reserve(token, lockerID, 3)
		url := fmt.Sprintf(reservationURL, created.ReservationID) + "/extend"

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url, request.ExtendReservationRequest{AdditionalHours: 2}, token)
		var first response.ExtendResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &first)
		require.Equal(t, int64(2000), first.AdditionalCostCents)
		require.Equal(t, int64(5000), first.TotalCostCents)
		require.Equal(t, 1, first.ExtensionCount)
		require.WithinDuration(t, created.ExpiresAt.Add(2*time.Hour), first.NewEndTime, time.Millisecond)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, url, request.ExtendReservationRequest{AdditionalHours: 0.25}, token)
		var second response.ExtendResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &second)
		require.Equal(t, int64(1000), second.AdditionalCostCents)
		require.Equal(t, int64(6000), second.TotalCostCents)
		require.Equal(t, 2, second.ExtensionCount)
	})

	s.Run("Error case: another customer cannot extend", func() {
		t := s.T()
		lockerID := dbtest.CreateAvailableLocker(t, s.DB, "C-302")
		_, owner := s.jwt.NewCustomer(t)
		_, stranger := s.jwt.NewCustomer(t)
		created := s.reserve(owner, lockerID, 1)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(reservationURL, created.ReservationID)+"/extend",
			request.ExtendReservationRequest{AdditionalHours: 1}, stranger)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Forbidden")
	})
}

// =============================================================================
// TestRelease / TestCancel
// =============================================================================

func (s *ReservationSuite) TestRelease() {
	s.Run("Normal case: release frees the locker and records history", func() {
		t := s.T()
		lockerID := dbtest.CreateAvailableLocker(t, s.DB, "D-401")
		userID, token := s.jwt.NewCustomer(t)
		created := s.reserve(token, lockerID, 3)
		url := fmt.Sprintf(reservationURL, created.ReservationID) + "/release"

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url, nil, token)
		var released response.ReleaseResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &released)
		require.Equal(t, int64(1), released.TotalHours)
		require.Equal(t, int64(3000), released.TotalCostCents)

		require.Equal(t, "AVAILABLE", dbtest.LockerStatus(t, s.DB, lockerID))
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "reservation_histories", "user_id = $1", userID))

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, historyURL, nil, token)
		var history []response.HistoryResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &history)
		require.Len(t, history, 1)
		require.Equal(t, created.ReservationID, history[0].ReservationID)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, url, nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "")
	})

	s.Run("Normal case: a released locker can be reserved again", func() {
		t := s.T()
		lockerID := dbtest.CreateAvailableLocker(t, s.DB, "D-402")
		_, first := s.jwt.NewCustomer(t)
		_, second := s.jwt.NewCustomer(t)

		created := s.reserve(first, lockerID, 1)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(reservationURL, created.ReservationID)+"/release", nil, first)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		again := s.reserve(second, lockerID, 1)
		require.NotEqual(t, created.ReservationID, again.ReservationID)
		require.Equal(t, "OCCUPIED", dbtest.LockerStatus(t, s.DB, lockerID))
	})

	s.Run("Concurrency: extend racing release never leaves mixed totals", func() {
		t := s.T()
		const rounds = 6
		for i := range rounds {
			lockerID := dbtest.CreateAvailableLocker(t, s.DB, fmt.Sprintf("D-41%d", i))
			userID, token := s.jwt.NewCustomer(t)
			created := s.reserve(token, lockerID, 2)
			base := fmt.Sprintf(reservationURL, created.ReservationID)

			codes := s.fire(token,
				firedRequest{path: base + "/extend", body: request.ExtendReservationRequest{AdditionalHours: 1}},
				firedRequest{path: base + "/release"},
			)
			extendCode, releaseCode := codes[0], codes[1]

			// release always applies; extend conflicts when release commits first
			require.Equal(t, http.StatusOK, releaseCode)
			totals := dbtest.LoadReservationTotals(t, s.DB, created.ReservationID)
			require.Equal(t, "COMPLETED", totals.Status)
			require.Equal(t, "AVAILABLE", dbtest.LockerStatus(t, s.DB, lockerID))

			var historyCost int64
			require.NoError(t, s.DB.QueryRow(context.Background(),
				"SELECT total_cost_cents FROM reservation_histories WHERE reservation_id = $1", created.ReservationID).
				Scan(&historyCost))
			require.Equal(t, totals.TotalCostCents, historyCost)
			require.Equal(t, 1, dbtest.CountRows(t, s.DB, "reservation_histories", "user_id = $1", userID))

			if extendCode == http.StatusConflict {
				require.Equal(t, 0, totals.ExtensionCount)
				require.Equal(t, created.TotalCostCents, totals.TotalCostCents)
			} else {
				require.Equal(t, http.StatusOK, extendCode)
				require.Equal(t, 1, totals.ExtensionCount)
				require.Equal(t, created.TotalCostCents+1000, totals.TotalCostCents)
			}
		}
	})

	s.Run("Concurrency: release racing cancel has exactly one winner", func() {
		t := s.T()
		lockerID := dbtest.CreateAvailableLocker(t, s.DB, "D-420")
		userID, token := s.jwt.NewCustomer(t)
		created := s.reserve(token, lockerID, 2)
		base := fmt.Sprintf(reservationURL, created.ReservationID)

		codes := s.fire(token,
			firedRequest{path: base + "/release"},
			firedRequest{path: base + "/cancel"},
		)
		releaseCode, cancelCode := codes[0], codes[1]

		require.NotEqual(t, succeeded(releaseCode), succeeded(cancelCode), "release=%d cancel=%d", releaseCode, cancelCode)
		totals := dbtest.LoadReservationTotals(t, s.DB, created.ReservationID)
		histories := dbtest.CountRows(t, s.DB, "reservation_histories", "user_id = $1", userID)
		if succeeded(releaseCode) {
			require.Equal(t, http.StatusConflict, cancelCode)
			require.Equal(t, "COMPLETED", totals.Status)
			require.Equal(t, 1, histories)
		} else {
			require.Equal(t, http.StatusConflict, releaseCode)
			require.Equal(t, "CANCELLED", totals.Status)
			require.Equal(t, 0, histories)
		}
		require.Equal(t, "AVAILABLE", dbtest.LockerStatus(t, s.DB, lockerID))
	})
}

func (s *ReservationSuite) TestCancel() {
	s.Run("Normal case: cancel frees the locker without history", func() {
		t := s.T()
		lockerID := dbtest.CreateAvailableLocker(t, s.DB, "E-501")
		userID, token := s.jwt.NewCustomer(t)
		created := s.reserve(token, lockerID, 2)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(reservationURL, created.ReservationID)+"/cancel", nil, token)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		require.Equal(t, "AVAILABLE", dbtest.LockerStatus(t, s.DB, lockerID))
		require.Equal(t, 0, dbtest.CountRows(t, s.DB, "reservation_histories", "user_id = $1", userID))

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL+"?status=CANCELLED", nil, token)
		var list []response.ReservationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &list)
		require.Len(t, list, 1)
		require.NotNil(t, list[0].ActualEndTime)
	})
}
