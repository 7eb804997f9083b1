package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/hr-staff/hr-staff-backend-go/internal/config"
	"github.com/hr-staff/hr-staff-backend-go/internal/handler/http/middleware"
	"github.com/hr-staff/hr-staff-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
	payrollHandler PayrollHandler,
	reviewHandler ReviewHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hr-staff-backend"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.ListEmployees)
				r.Post("/", employeeHandler.CreateEmployee)
				r.Get("/{id}", employeeHandler.GetEmployee)
				r.Put("/{id}", employeeHandler.UpdateEmployee)
				r.Delete("/{id}", employeeHandler.DeleteEmployee)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/", attendanceHandler.ListAttendance)
				r.Post("/", attendanceHandler.MarkAttendance)
				r.Get("/today", attendanceHandler.TodayAttendance)
				r.Get("/date/{date}", attendanceHandler.ListAttendanceByDate)
				r.Get("/summary/{date}", attendanceHandler.DailySummary)
				r.Put("/{id}", attendanceHandler.UpdateAttendance)
				r.Delete("/{id}", attendanceHandler.DeleteAttendance)
			})

			r.Route("/leave-requests", func(r chi.Router) {
				r.Get("/", leaveHandler.ListLeaveRequests)
				r.Post("/", leaveHandler.CreateLeaveRequest)
				r.Put("/{id}/status", leaveHandler.UpdateLeaveStatus)
				r.Delete("/{id}", leaveHandler.DeleteLeaveRequest)
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/", payrollHandler.ListPayroll)
				r.Post("/", payrollHandler.CreatePayroll)
				r.Get("/search", payrollHandler.SearchPayroll)
				r.Get("/employees", payrollHandler.PayrollEmployees)
				r.Get("/payslip/{id}", payrollHandler.GetPayslip)
				r.Get("/{id}", payrollHandler.GetPayroll)
				r.Put("/{id}", payrollHandler.UpdatePayroll)
				r.Delete("/{id}", payrollHandler.DeletePayroll)
			})

			r.Route("/performance-reviews", func(r chi.Router) {
				r.Get("/", reviewHandler.ListReviews)
				r.Post("/", reviewHandler.CreateReview)
				r.Get("/employees", reviewHandler.ListReviewEmployees)
				r.Post("/employees", reviewHandler.CreateReviewEmployee)
				r.Put("/{id}", reviewHandler.UpdateReview)
				r.Delete("/{id}", reviewHandler.DeleteReview)
			})
		})
	})

	return r
}
