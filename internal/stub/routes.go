package stub

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging)

	// routes without authorization
	router.Post("/hr/login", h.login)

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.withAuth)

		r.Route("/employees", func(r chi.Router) {
			r.Post("/", h.createEmployee)
			r.Get("/", h.listEmployees)
			r.Get("/{employeeId}", h.getEmployee)
			r.Put("/{employeeId}", h.updateEmployee)
			r.Delete("/{employeeId}", h.deleteEmployee)
		})
	})

	return router
}
