package main

import (
	"fmt"
	"net/http"

	"github.com/clinicore/staffops-backend-go/internal/config"
	appHTTP "github.com/clinicore/staffops-backend-go/internal/handler/http"
	"github.com/clinicore/staffops-backend-go/internal/pkg/cron"
	"github.com/clinicore/staffops-backend-go/internal/pkg/database"
	"github.com/clinicore/staffops-backend-go/internal/repository/postgresql"
	attendanceService "github.com/clinicore/staffops-backend-go/internal/service/attendance"
	directoryService "github.com/clinicore/staffops-backend-go/internal/service/directory"
	payrollService "github.com/clinicore/staffops-backend-go/internal/service/payroll"
	scheduleService "github.com/clinicore/staffops-backend-go/internal/service/schedule"
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

	employeeRepo := postgresql.NewEmployeeRepository(db)
	worksiteRepo := postgresql.NewWorkSiteRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	scheduleRepo := postgresql.NewScheduleRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	attendanceSvc := attendanceService.NewAttendanceService(
		attendanceRepo,
		employeeRepo,
		attendanceService.ShiftPolicy{
			StartTime:          cfg.Shift.StartTime,
			GracePeriodMinutes: cfg.Shift.GracePeriodMinutes,
			StandardShiftHours: cfg.Shift.StandardShiftHours,
		},
	)
	scheduleSvc := scheduleService.NewScheduleService(
		scheduleRepo,
		employeeRepo,
		worksiteRepo,
		attendanceRepo,
		scheduleService.SchedulerConfig{
			BaseStartHour:         cfg.Schedule.BaseStartHour,
			CutoffHour:            cfg.Schedule.CutoffHour,
			ReliabilityWindowDays: cfg.Schedule.ReliabilityWindowDays,
		},
	)
	payrollSvc := payrollService.NewPayrollService(
		payrollRepo,
		attendanceRepo,
		employeeRepo,
		payrollService.DefaultDeductionPolicy(),
	)
	employeeSvc := directoryService.NewEmployeeService(employeeRepo)
	worksiteSvc := directoryService.NewWorkSiteService(worksiteRepo)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	scheduleHandler := appHTTP.NewScheduleHandler(scheduleSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	directoryHandler := appHTTP.NewDirectoryHandler(employeeSvc, worksiteSvc)

	scheduler := cron.NewScheduler()
	attendanceJobs := cron.NewAttendanceJobs(
		attendanceRepo,
		scheduleRepo,
		postgresql.NewTxRunner(db),
		cfg.Schedule.AbsenceJobHour,
	)
	attendanceJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		attendanceHandler,
		scheduleHandler,
		payrollHandler,
		directoryHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
