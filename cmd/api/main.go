package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/nomina-hr/nomina-backend-go/internal/config"
	"github.com/nomina-hr/nomina-backend-go/internal/domain/report"
	appHTTP "github.com/nomina-hr/nomina-backend-go/internal/handler/http"
	"github.com/nomina-hr/nomina-backend-go/internal/pkg/database"
	"github.com/nomina-hr/nomina-backend-go/internal/repository/postgresql"
	attendanceService "github.com/nomina-hr/nomina-backend-go/internal/service/attendance"
	discountService "github.com/nomina-hr/nomina-backend-go/internal/service/discount"
	employeeService "github.com/nomina-hr/nomina-backend-go/internal/service/employee"
	reportService "github.com/nomina-hr/nomina-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	location, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Fatal("Failed to load timezone:", err)
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	discountRepo := postgresql.NewDiscountRepository(db)
	reportRepo := postgresql.NewReportRepository(db)

	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, location)
	discountSvc := discountService.NewDiscountService(db, discountRepo, employeeRepo, location)
	reportSvc := reportService.NewReportService(
		reportRepo,
		discountRepo,
		report.DefaultSitePolicies(),
		location,
		cfg.Report.FetchTimeout,
	)

	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	discountHandler := appHTTP.NewDiscountHandler(discountSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		cfg,
		employeeHandler,
		attendanceHandler,
		discountHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
