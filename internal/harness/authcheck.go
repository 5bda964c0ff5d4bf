package harness

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-employee-catalog/models"
)

// authChecks confirms that a protected call without a token is rejected
// with 401 and one with a well-formed but wrong token with 403.
func (s *Suite) authChecks(ctx context.Context, session *models.Session) []StepResult {
	forged := models.NewSession(session.Username(), InvalidToken, s.now())

	missing := timeStep(ctx, StageAuthMissingToken, func(ctx context.Context) (int, error) {
		resp, err := s.employees.List(ctx, models.AnonymousSession())
		return callStatus(resp.StatusCode, err), expectRejected(err, http.StatusUnauthorized)
	})

	invalid := timeStep(ctx, StageAuthInvalidToken, func(ctx context.Context) (int, error) {
		resp, err := s.employees.List(ctx, forged)
		return callStatus(resp.StatusCode, err), expectRejected(err, http.StatusForbidden)
	})

	return []StepResult{missing, invalid}
}
