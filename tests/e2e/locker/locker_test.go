//go:build e2e

package locker_test

import (
	"fmt"
	"net/http"
	"testing"

	"locker-hub/internal/domain/user"
	"locker-hub/internal/handler/dto/request"
	"locker-hub/internal/handler/dto/response"
	"locker-hub/tests/common/authtest"
	"locker-hub/tests/common/dbtest"
	"locker-hub/tests/common/httptest"
	"locker-hub/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	lockersURL     = "/api/lockers"
	nearbyURL      = "/api/locations/nearby"
	maintenanceURL = "/api/admin/lockers/%s/maintenance"
)

type LockerSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func (s *LockerSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *LockerSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestLockerSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(LockerSuite))
}

func lockerIDs(lockers []response.LockerResponse) []uuid.UUID {
	ids := make([]uuid.UUID, len(lockers))
	for i, l := range lockers {
		ids[i] = l.ID
	}
	return ids
}

// =============================================================================
// TestListAvailable
// =============================================================================

func (s *LockerSuite) TestListAvailable() {
	s.Run("Normal case: only available lockers are listed", func() {
		t := s.T()
		small := dbtest.CreateTestLocker(t, s.DB, dbtest.DefaultLocationID, "S-1", "SMALL", "AVAILABLE", 500)
		large := dbtest.CreateTestLocker(t, s.DB, dbtest.DefaultLocationID, "L-1", "LARGE", "AVAILABLE", 1500)
		occupied := dbtest.CreateTestLocker(t, s.DB, dbtest.DefaultLocationID, "S-2", "SMALL", "OCCUPIED", 500)
		maintenance := dbtest.CreateTestLocker(t, s.DB, dbtest.DefaultLocationID, "S-3", "SMALL", "MAINTENANCE", 500)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, lockersURL, nil, "")
		var all []response.LockerResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &all)
		ids := lockerIDs(all)
		require.ElementsMatch(t, []uuid.UUID{small, large}, ids)
		require.NotContains(t, ids, occupied)
		require.NotContains(t, ids, maintenance)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, lockersURL+"?size=small", nil, "")
		var smalls []response.LockerResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &smalls)
		require.Equal(t, []uuid.UUID{small}, lockerIDs(smalls))
	})

	s.Run("Normal case: location filter", func() {
		t := s.T()
		osaka := dbtest.CreateTestLocation(t, s.DB, "Umeda", 34.702485, 135.495951)
		inTokyo := dbtest.CreateAvailableLocker(t, s.DB, "T-1")
		inOsaka := dbtest.CreateTestLocker(t, s.DB, osaka, "O-1", "MEDIUM", "AVAILABLE", 800)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, lockersURL+"?locationId="+osaka.String(), nil, "")
		var lockers []response.LockerResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &lockers)
		require.Equal(t, []uuid.UUID{inOsaka}, lockerIDs(lockers))
		require.NotContains(t, lockerIDs(lockers), inTokyo)
	})

	s.Run("Error case: unknown size", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, lockersURL+"?size=HUGE", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "")
	})
}

// =============================================================================
// TestNearbyLocations
// =============================================================================

func (s *LockerSuite) TestNearbyLocations() {
	s.Run("Normal case: nearest first within radius", func() {
		t := s.T()
		harajuku := dbtest.CreateTestLocation(t, s.DB, "Harajuku", 35.670168, 139.702687)
		dbtest.CreateTestLocation(t, s.DB, "Umeda", 34.702485, 135.495951)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, nearbyURL+"?lat=35.6595&lon=139.7005&radius=2000", nil, "")
		var locations []response.LocationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &locations)

		require.Len(t, locations, 2)
		require.Equal(t, dbtest.DefaultLocationID, locations[0].ID)
		require.Equal(t, harajuku, locations[1].ID)
		require.Less(t, locations[0].DistanceMeters, locations[1].DistanceMeters)
		require.Less(t, locations[1].DistanceMeters, 2000.0)
	})

	s.Run("Normal case: near-antipodal location does not break distance math", func() {
		t := s.T()
		// for this pair the haversine term rounds to 1+4ulp, outside asin's domain
		here := dbtest.CreateTestLocation(t, s.DB, "Khabarovsk Krai", 57.589244637849845, 132.14413769713377)
		dbtest.CreateTestLocation(t, s.DB, "South Atlantic", -57.58924459846636, -47.855862550899815)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, nearbyURL+"?lat=57.589244637849845&lon=132.14413769713377&radius=2000", nil, "")
		var locations []response.LocationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &locations)

		require.Len(t, locations, 1)
		require.Equal(t, here, locations[0].ID)
	})

	s.Run("Error case: radius above the maximum", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, nearbyURL+"?lat=35.6&lon=139.7&radius=100000", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "")
	})
}

// =============================================================================
// TestMaintenance
// =============================================================================

func (s *LockerSuite) TestMaintenance() {
	s.Run("Normal case: admin takes a locker out of service and back", func() {
		t := s.T()
		lockerID := dbtest.CreateAvailableLocker(t, s.DB, "M-1")
		admin := s.jwt.GenerateToken(t, uuid.New(), user.RoleAdmin)
		_, customer := s.jwt.NewCustomer(t)
		url := fmt.Sprintf(maintenanceURL, lockerID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url, nil, admin)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
		require.Equal(t, "MAINTENANCE", dbtest.LockerStatus(t, s.DB, lockerID))

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/reservations",
			request.CreateReservationRequest{LockerID: lockerID, DurationHours: 1}, customer)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "not available")

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, url, nil, admin)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
		require.Equal(t, "AVAILABLE", dbtest.LockerStatus(t, s.DB, lockerID))
	})

	s.Run("Error case: occupied locker cannot enter maintenance", func() {
		t := s.T()
		lockerID := dbtest.CreateTestLocker(t, s.DB, dbtest.DefaultLocationID, "M-2", "SMALL", "OCCUPIED", 500)
		admin := s.jwt.GenerateToken(t, uuid.New(), user.RoleAdmin)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(maintenanceURL, lockerID), nil, admin)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "")
		require.Equal(t, "OCCUPIED", dbtest.LockerStatus(t, s.DB, lockerID))
	})

	s.Run("Error case: customers are forbidden", func() {
		t := s.T()
		lockerID := dbtest.CreateAvailableLocker(t, s.DB, "M-3")
		_, customer := s.jwt.NewCustomer(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(maintenanceURL, lockerID), nil, customer)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Insufficient permissions")
		require.Equal(t, "AVAILABLE", dbtest.LockerStatus(t, s.DB, lockerID))
	})
}
