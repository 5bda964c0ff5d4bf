package stub

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-employee-catalog/internal/config"
	"github.com/MKhiriev/go-employee-catalog/internal/logger"
	"github.com/MKhiriev/go-employee-catalog/internal/utils"
	"github.com/MKhiriev/go-employee-catalog/internal/validators"
	"github.com/MKhiriev/go-employee-catalog/models"
)

type Handler struct {
	store     *memoryStore
	auth      *authenticator
	validator validators.Validator

	logger *logger.Logger
}

func NewHandler(cfg config.StubConfig, logger *logger.Logger) (*Handler, error) {
	auth, err := newAuthenticator(cfg)
	if err != nil {
		return nil, err
	}

	logger.Info().Msg("stub handler created")
	return &Handler{
		store:     newMemoryStore(utils.NewUUIDGenerator().Generate),
		auth:      auth,
		validator: validators.NewCatalogValidator(),
		logger:    logger,
	}, nil
}

func writeMessage(w http.ResponseWriter, message string, statusCode int) {
	_, _ = utils.WriteJSON(w, models.MessageResponse{Message: message}, statusCode)
}

func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return ErrMalformedBody
	}
	return nil
}
