package stub

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-employee-catalog/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// makeRequest attaches a buffer-backed logger the way withTraceID does.
func makeRequest(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	l := zerolog.New(buf)
	return req.WithContext(l.WithContext(req.Context()))
}

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name    string
		method  string
		path    string
		status  int
		body    string
		wantLog []string
	}{
		{
			name:    "list 200",
			method:  http.MethodGet,
			path:    "/employees",
			status:  http.StatusOK,
			body:    "[]",
			wantLog: []string{`"method":"GET"`, `"uri":"/employees"`, `"status":200`, `"size":2`},
		},
		{
			name:    "delete 404",
			method:  http.MethodDelete,
			path:    "/employees/gone",
			status:  http.StatusNotFound,
			body:    `{"message":"Employee not found"}`,
			wantLog: []string{`"method":"DELETE"`, `"status":404`, `"size":32`},
		},
	}

	h := &Handler{logger: logger.Nop()}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			rr := httptest.NewRecorder()
			h.withLogging(next).ServeHTTP(rr, makeRequest(tt.method, tt.path, buf))

			assert.Equal(t, tt.status, rr.Code)
			for _, want := range tt.wantLog {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestResponseWriter_ImplicitOKAndSingleHeader(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	_, _ = w.Write([]byte("hello"))
	w.WriteHeader(http.StatusTeapot)

	assert.Equal(t, http.StatusOK, w.status)
	assert.Equal(t, 5, w.size)
	assert.Equal(t, http.StatusOK, rr.Code)
}
