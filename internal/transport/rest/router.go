package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/frahmantamala/dorm-management/internal/auth"
	"github.com/frahmantamala/dorm-management/internal/complaint"
	"github.com/frahmantamala/dorm-management/internal/fee"
	"github.com/frahmantamala/dorm-management/internal/menu"
	"github.com/frahmantamala/dorm-management/internal/payment"
	"github.com/frahmantamala/dorm-management/internal/room"
	"github.com/frahmantamala/dorm-management/internal/transport/middleware"
	"github.com/frahmantamala/dorm-management/internal/transport/swagger"
	"github.com/frahmantamala/dorm-management/internal/user"
	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
)

func RegisterAllRoutes(
	router *chi.Mux,
	db *sql.DB,
	authHandler *auth.Handler,
	userHandler *user.Handler,
	feeHandler *fee.Handler,
	paymentHandler *payment.Handler,
	roomHandler *room.Handler,
	complaintHandler *complaint.Handler,
	menuHandler *menu.Handler,
	logger *slog.Logger,
) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS)
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		// gateway server-to-server callbacks; must stay outside auth
		if paymentHandler != nil {
			paymentHandler.RegisterRoutes(r)
		}

		if authHandler != nil {
			r.Post("/auth/login", authHandler.Login)
		}

		// weekly menu is public reading for residents and visitors
		if menuHandler != nil {
			r.Get("/menu", menuHandler.WeeklyMenu)
		}

		if authHandler == nil {
			return
		}

		r.Group(func(pr chi.Router) {
			pr.Use(authHandler.AuthMiddleware)

			if userHandler != nil {
				pr.Get("/users/me", userHandler.GetCurrentUser)
			}

			if feeHandler != nil {
				pr.Get("/fees/me", feeHandler.GetMyFees)
			}

			if roomHandler != nil {
				pr.Get("/rooms", roomHandler.ListRooms)
				pr.Get("/rooms/{id}/seats", roomHandler.GetRoomSeats)
				pr.Post("/applications", roomHandler.Apply)
			}

			if complaintHandler != nil {
				pr.Post("/complaints", complaintHandler.Create)
				pr.Get("/complaints/me", complaintHandler.MyComplaints)
			}

			// admin-only surface
			pr.Group(func(ar chi.Router) {
				ar.Use(authHandler.RequireAdmin)

				if userHandler != nil {
					ar.Post("/users", userHandler.Register)
				}

				if feeHandler != nil {
					ar.Route("/fees", func(fr chi.Router) {
						fr.Post("/schedules", feeHandler.CreateSchedule)
						fr.Get("/schedules", feeHandler.ListSchedules)
						fr.Post("/assign", feeHandler.AssignFees)
						fr.Get("/users/{id}", feeHandler.GetUserFees)
					})
				}

				if roomHandler != nil {
					ar.Post("/rooms", roomHandler.CreateRoom)
					ar.Post("/seats", roomHandler.AddSeat)
					ar.Get("/applications", roomHandler.ListApplications)
					ar.Patch("/applications/{id}/approve", roomHandler.Approve)
					ar.Patch("/applications/{id}/reject", roomHandler.Reject)
				}

				if complaintHandler != nil {
					ar.Get("/complaints", complaintHandler.List)
					ar.Patch("/complaints/{id}/status", complaintHandler.UpdateStatus)
				}

				if menuHandler != nil {
					ar.Put("/menu", menuHandler.SetSlot)
					ar.Delete("/menu/{id}", menuHandler.DeleteSlot)
				}
			})
		})
	})
}
