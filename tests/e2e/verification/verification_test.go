//go:build e2e

package verification_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	stdhttptest "net/http/httptest"
	"sync/atomic"
	"testing"

	"locker-hub/internal/handler/dto/request"
	"locker-hub/internal/handler/dto/response"
	"locker-hub/tests/common/dbtest"
	"locker-hub/tests/common/httptest"
	"locker-hub/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/sync/errgroup"
)

const (
	requestURL = "/api/auth/otp/request"
	verifyURL  = "/api/auth/otp/verify"

	phone = "+819012345678"
)

type VerificationSuite struct {
	e2e.SharedSuite
}

func (s *VerificationSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestVerificationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(VerificationSuite))
}

func (s *VerificationSuite) requestCode(purpose string) response.RequestOTPResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, requestURL,
		request.RequestOTPRequest{Phone: phone, Purpose: purpose}, "")

	var body response.RequestOTPResponse
	httptest.AssertSuccessResponse(t, w, http.StatusAccepted, &body)
	return body
}

func (s *VerificationSuite) verify(code, purpose string) bool {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, verifyURL,
		request.VerifyOTPRequest{Phone: phone, Code: code, Purpose: purpose}, "")

	var body response.VerifyOTPResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
	return body.Valid
}

func (s *VerificationSuite) TestOTPFlow() {
	s.Run("Normal case: a code verifies exactly once", func() {
		t := s.T()
		sent := s.requestCode("LOGIN")
		require.True(t, sent.Sent)
		require.NotNil(t, sent.ExpiresAt)

		code := s.SMS.LastCode(t, phone)
		require.True(t, s.verify(code, "LOGIN"))
		require.False(t, s.verify(code, "LOGIN"), "second use must fail")

		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "verification_codes", "phone = $1 AND used", phone))
	})

	s.Run("Normal case: the stored value is not the plain code", func() {
		t := s.T()
		s.requestCode("SIGNUP")
		code := s.SMS.LastCode(t, phone)

		require.Equal(t, 0, dbtest.CountRows(t, s.DB, "verification_codes", "code_hash = $1", code))
	})

	s.Run("Error case: a wrong code does not consume the real one", func() {
		t := s.T()
		s.requestCode("LOGIN")
		code := s.SMS.LastCode(t, phone)

		wrong := "000000"
		if code == wrong {
			wrong = "111111"
		}
		require.False(t, s.verify(wrong, "LOGIN"))
		require.True(t, s.verify(code, "LOGIN"))
	})

	s.Run("Error case: purpose must match", func() {
		t := s.T()
		s.requestCode("SIGNUP")
		code := s.SMS.LastCode(t, phone)

		require.False(t, s.verify(code, "LOGIN"))
		require.True(t, s.verify(code, "SIGNUP"))
	})

	s.Run("Error case: expired codes are rejected", func() {
		t := s.T()
		s.requestCode("LOGIN")
		code := s.SMS.LastCode(t, phone)
		dbtest.ExpireVerificationCodes(t, s.DB, phone)

		require.False(t, s.verify(code, "LOGIN"))
	})

	s.Run("Concurrency: parallel verifications of one code succeed once", func() {
		t := s.T()
		s.requestCode("LOGIN")
		code := s.SMS.LastCode(t, phone)
		body, err := json.Marshal(request.VerifyOTPRequest{Phone: phone, Code: code, Purpose: "LOGIN"})
		require.NoError(t, err)

		const callers = 8
		var valid, rejected atomic.Int32
		var g errgroup.Group
		for range callers {
			g.Go(func() error {
				req := stdhttptest.NewRequest(http.MethodPost, verifyURL, bytes.NewReader(body))
				req.Header.Set("Content-Type", "application/json")
				w := stdhttptest.NewRecorder()
				s.Router.ServeHTTP(w, req)
				if w.Code != http.StatusOK {
					return fmt.Errorf("unexpected status %d: %s", w.Code, w.Body.String())
				}

				var res response.VerifyOTPResponse
				if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
					return err
				}
				if res.Valid {
					valid.Add(1)
				} else {
					rejected.Add(1)
				}
				return nil
			})
		}
		require.NoError(t, g.Wait())

		require.Equal(t, int32(1), valid.Load())
		require.Equal(t, int32(callers-1), rejected.Load())
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "verification_codes", "phone = $1 AND used", phone))
	})

	s.Run("Normal case: national and international forms are the same phone", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, requestURL,
			request.RequestOTPRequest{Phone: "090-1234-5678", Purpose: "LOGIN"}, "")
		require.Equal(t, http.StatusAccepted, w.Code, w.Body.String())
		code := s.SMS.LastCode(t, phone)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, verifyURL,
			request.VerifyOTPRequest{Phone: "+81 90 1234 5678", Code: code, Purpose: "LOGIN"}, "")
		var res response.VerifyOTPResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.True(t, res.Valid)
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "verification_codes", "phone = $1", phone))
	})

	s.Run("Error case: malformed phone", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, requestURL,
			request.RequestOTPRequest{Phone: "call me", Purpose: "LOGIN"}, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid request")
	})
}
