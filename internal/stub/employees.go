package stub

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-employee-catalog/internal/logger"
	"github.com/MKhiriev/go-employee-catalog/internal/utils"
	"github.com/MKhiriev/go-employee-catalog/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := decodeBody(r, &creds); err != nil {
		writeMessage(w, err.Error(), http.StatusBadRequest)
		return
	}

	token, err := h.auth.Login(creds)
	if err != nil {
		log.Warn().Err(err).Str("username", creds.Username).Msg("login rejected")
		writeMessage(w, MsgInvalidCredentials, http.StatusUnauthorized)
		return
	}

	_, _ = utils.WriteJSON(w, models.LoginResponse{Token: token}, http.StatusOK)
}

func (h *Handler) createEmployee(w http.ResponseWriter, r *http.Request) {
	employee, ok := h.readEmployee(w, r)
	if !ok {
		return
	}

	created := h.store.Create(employee)
	subject, _ := utils.GetSubjectFromContext(r.Context())
	logger.FromRequest(r).Info().
		Str("employee_id", created.EmployeeID).
		Str("created_by", subject).
		Msg("employee created")

	_, _ = utils.WriteJSON(w, models.CreateEmployeeResponse{
		EmployeeID: created.EmployeeID,
		Message:    MsgEmployeeCreated,
	}, http.StatusCreated)
}

func (h *Handler) listEmployees(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, h.store.List(), http.StatusOK)
}

func (h *Handler) getEmployee(w http.ResponseWriter, r *http.Request) {
	employee, err := h.store.Get(chi.URLParam(r, "employeeId"))
	if err != nil {
		writeStoreError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, employee, http.StatusOK)
}

func (h *Handler) updateEmployee(w http.ResponseWriter, r *http.Request) {
	employee, ok := h.readEmployee(w, r)
	if !ok {
		return
	}

	if err := h.store.Update(chi.URLParam(r, "employeeId"), employee); err != nil {
		writeStoreError(w, err)
		return
	}

	writeMessage(w, MsgEmployeeUpdated, http.StatusOK)
}

func (h *Handler) deleteEmployee(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Delete(chi.URLParam(r, "employeeId")); err != nil {
		writeStoreError(w, err)
		return
	}

	writeMessage(w, MsgEmployeeDeleted, http.StatusOK)
}

// readEmployee decodes and validates the request body. It writes a 400 and
// returns false when the body is unusable.
func (h *Handler) readEmployee(w http.ResponseWriter, r *http.Request) (models.Employee, bool) {
	var employee models.Employee
	if err := decodeBody(r, &employee); err != nil {
		writeMessage(w, err.Error(), http.StatusBadRequest)
		return employee, false
	}

	if err := h.validator.Validate(r.Context(), employee); err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("employee rejected")
		writeMessage(w, err.Error(), http.StatusBadRequest)
		return employee, false
	}

	return employee, true
}

func writeStoreError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrEmployeeNotFound) {
		writeMessage(w, MsgEmployeeNotFound, http.StatusNotFound)
		return
	}
	writeMessage(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
