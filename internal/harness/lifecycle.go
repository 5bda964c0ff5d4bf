package harness

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-employee-catalog/internal/adapter"
	"github.com/MKhiriev/go-employee-catalog/internal/service"
	"github.com/MKhiriev/go-employee-catalog/models"
)

type stepFunc func(ctx context.Context) (statusCode int, err error)

func timeStep(ctx context.Context, stage Stage, fn stepFunc) StepResult {
	start := time.Now()
	code, err := fn(ctx)
	return StepResult{Stage: stage, Duration: time.Since(start), StatusCode: code, Err: err}
}

// caseRun walks one employee through the lifecycle. EmployeeID is recorded
// as soon as create succeeds so that cleanup knows what to remove.
type caseRun struct {
	employees service.EmployeeService
	session   *models.Session
	result    CaseResult
}

func (c *caseRun) run(ctx context.Context, original, replacement models.Employee) {
	steps := []struct {
		stage Stage
		fn    stepFunc
	}{
		{StageCreated, c.create(original)},
		{StageVerified, c.verify(original)},
		{StageListed, c.listed},
		{StageUpdated, c.update(replacement)},
		{StageVerifiedUpdated, c.verify(replacement)},
		{StageDeleted, c.delete},
		{StageVerifiedAbsent, c.verifyAbsent},
		{StageDeleteRepeated, c.deleteRepeated},
	}

	for _, s := range steps {
		step := timeStep(ctx, s.stage, s.fn)
		c.result.Steps = append(c.result.Steps, step)
		if !step.Passed() {
			return
		}
	}
}

func (c *caseRun) create(e models.Employee) stepFunc {
	return func(ctx context.Context) (int, error) {
		resp, err := c.employees.Create(ctx, c.session, e)
		if err != nil {
			return adapter.StatusCode(err), err
		}
		// any returned id is cleaned up, even under an unexpected status
		c.result.EmployeeID = resp.Data.EmployeeID

		if err = expectStatus(resp.StatusCode, http.StatusCreated); err != nil {
			return resp.StatusCode, err
		}
		if resp.Data.EmployeeID == "" {
			return resp.StatusCode, ErrMissingEmployeeID
		}
		return resp.StatusCode, expectMessage(resp.Data.Message, CreatedMessage)
	}
}

func (c *caseRun) verify(want models.Employee) stepFunc {
	return func(ctx context.Context) (int, error) {
		resp, err := c.employees.Get(ctx, c.session, c.result.EmployeeID)
		if err != nil {
			return adapter.StatusCode(err), err
		}
		if err = expectStatus(resp.StatusCode, http.StatusOK); err != nil {
			return resp.StatusCode, err
		}
		if !want.SameIdentity(resp.Data) {
			return resp.StatusCode, fmt.Errorf("%w: got %q, want %q", ErrIdentityMismatch, resp.Data.FullName(), want.FullName())
		}
		return resp.StatusCode, nil
	}
}

func (c *caseRun) listed(ctx context.Context) (int, error) {
	resp, err := c.employees.List(ctx, c.session)
	if err != nil {
		return adapter.StatusCode(err), err
	}
	if err = expectStatus(resp.StatusCode, http.StatusOK); err != nil {
		return resp.StatusCode, err
	}
	if !models.ContainsEmployee(resp.Data, c.result.EmployeeID) {
		return resp.StatusCode, fmt.Errorf("%w: %s", ErrNotListed, c.result.EmployeeID)
	}
	return resp.StatusCode, nil
}

func (c *caseRun) update(e models.Employee) stepFunc {
	return func(ctx context.Context) (int, error) {
		resp, err := c.employees.Update(ctx, c.session, c.result.EmployeeID, e)
		if err != nil {
			return adapter.StatusCode(err), err
		}
		return resp.StatusCode, expectStatus(resp.StatusCode, http.StatusOK)
	}
}

func (c *caseRun) delete(ctx context.Context) (int, error) {
	resp, err := c.employees.Delete(ctx, c.session, c.result.EmployeeID)
	if err != nil {
		return adapter.StatusCode(err), err
	}
	if err = expectStatus(resp.StatusCode, http.StatusOK); err != nil {
		return resp.StatusCode, err
	}
	return resp.StatusCode, expectMessage(resp.Data.Message, DeletedMessage)
}

func (c *caseRun) verifyAbsent(ctx context.Context) (int, error) {
	resp, err := c.employees.Get(ctx, c.session, c.result.EmployeeID)
	if rejErr := expectRejected(err, http.StatusNotFound); rejErr != nil {
		return callStatus(resp.StatusCode, err), rejErr
	}
	return http.StatusNotFound, expectMessage(adapter.ErrorMessage(err), NotFoundMessage)
}

func (c *caseRun) deleteRepeated(ctx context.Context) (int, error) {
	resp, err := c.employees.Delete(ctx, c.session, c.result.EmployeeID)
	return callStatus(resp.StatusCode, err), expectRejected(err, http.StatusNotFound)
}

// callStatus is the status recorded for a call that was expected to fail.
// A call that succeeded reports the status the catalog answered with.
func callStatus(status int, err error) int {
	if code := adapter.StatusCode(err); code != 0 {
		return code
	}
	return status
}

func expectStatus(got, want int) error {
	if got != want {
		return fmt.Errorf("%w: got %d, want %d", ErrUnexpectedStatus, got, want)
	}
	return nil
}

func expectMessage(got, want string) error {
	if got != want {
		return fmt.Errorf("%w: got %q, want %q", ErrUnexpectedMessage, got, want)
	}
	return nil
}

// expectRejected checks that err is a response with status want. Transport
// failures are returned as they are.
func expectRejected(err error, want int) error {
	if err == nil {
		return fmt.Errorf("%w: call succeeded, want %d", ErrUnexpectedStatus, want)
	}

	var reqErr *adapter.RequestError
	if !errors.As(err, &reqErr) {
		return err
	}
	if reqErr.StatusCode != want {
		return fmt.Errorf("%w: got %d, want %d", ErrUnexpectedStatus, reqErr.StatusCode, want)
	}
	return nil
}
