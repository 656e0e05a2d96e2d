package ui

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all UI routes on the given router.
func (ui *UI) RegisterRoutes(r chi.Router) {
	// Public routes (signed-in users are redirected away).
	r.Group(func(r chi.Router) {
		r.Use(ui.GuestGuard)
		r.Get("/login", ui.HandleLogin)
		r.Post("/login", ui.HandleLoginPost)
		r.Get("/register", ui.HandleRegister)
		r.Post("/register", ui.HandleRegisterPost)
	})

	// Protected routes.
	r.Group(func(r chi.Router) {
		r.Use(ui.AuthGuard)

		r.Get("/", ui.HandleDashboard)
		r.Get("/logout", ui.HandleLogout)

		r.Route("/patients", func(r chi.Router) {
			r.Get("/", ui.HandlePatientList)
			r.Get("/new", ui.HandlePatientCreate)
			r.Post("/new", ui.HandlePatientCreatePost)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", ui.HandlePatientDetail)
				r.Get("/edit", ui.HandlePatientEdit)
				r.Post("/edit", ui.HandlePatientEditPost)
				r.Post("/deactivate", ui.HandlePatientDeactivate)
				r.Get("/vitals", ui.HandlePatientVitals)
				r.Post("/vitals", ui.HandleVitalsPost)
			})
		})

		r.Route("/appointments", func(r chi.Router) {
			r.Get("/", ui.HandleAppointmentList)
			r.Get("/new", ui.HandleAppointmentCreate)
			r.Post("/new", ui.HandleAppointmentCreatePost)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", ui.HandleAppointmentDetail)
				r.Post("/cancel", ui.HandleAppointmentCancel)
			})
		})

		r.Get("/alerts", ui.HandleCriticalAlerts)
	})
}
