package stub

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-employee-catalog/internal/logger"
	"github.com/MKhiriev/go-employee-catalog/internal/utils"
)

// withAuth rejects a request without an Authorization header with 401 and one
// whose bearer token does not verify with 403. On success the token subject
// is stored under [utils.SubjectCtxKey].
func (h *Handler) withAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Warn().Err(ErrMissingToken).Send()
			writeMessage(w, MsgMissingToken, http.StatusUnauthorized)
			return
		}

		token, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Warn().Err(err).Send()
			writeMessage(w, MsgInvalidToken, http.StatusForbidden)
			return
		}

		subject, err := h.auth.Verify(token)
		if err != nil {
			log.Warn().Err(err).Msg("token rejected")
			writeMessage(w, MsgInvalidToken, http.StatusForbidden)
			return
		}

		ctx := context.WithValue(r.Context(), utils.SubjectCtxKey, subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
