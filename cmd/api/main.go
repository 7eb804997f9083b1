package main

import (
	"fmt"
	"net/http"

	"github.com/hr-staff/hr-staff-backend-go/internal/config"
	appHTTP "github.com/hr-staff/hr-staff-backend-go/internal/handler/http"
	"github.com/hr-staff/hr-staff-backend-go/internal/pkg/database"
	"github.com/hr-staff/hr-staff-backend-go/internal/pkg/jwt"
	"github.com/hr-staff/hr-staff-backend-go/internal/repository/postgresql"
	attendanceService "github.com/hr-staff/hr-staff-backend-go/internal/service/attendance"
	authService "github.com/hr-staff/hr-staff-backend-go/internal/service/auth"
	employeeService "github.com/hr-staff/hr-staff-backend-go/internal/service/employee"
	leaveService "github.com/hr-staff/hr-staff-backend-go/internal/service/leave"
	payrollService "github.com/hr-staff/hr-staff-backend-go/internal/service/payroll"
	reviewService "github.com/hr-staff/hr-staff-backend-go/internal/service/review"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	reviewRepo := postgresql.NewReviewRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	authSvc := authService.NewAuthService(userRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)
	leaveSvc := leaveService.NewLeaveService(db, leaveRequestRepo, employeeRepo)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, employeeRepo)
	reviewSvc := reviewService.NewReviewService(reviewRepo, employeeRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	reviewHandler := appHTTP.NewReviewHandler(reviewSvc)

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		authHandler,
		employeeHandler,
		attendanceHandler,
		leaveHandler,
		payrollHandler,
		reviewHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
