package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	attendanceHandler AttendanceHandler,
	scheduleHandler ScheduleHandler,
	payrollHandler PayrollHandler,
	directoryHandler DirectoryHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "staffops-clinicore"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
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

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/attendances", func(r chi.Router) {
			r.Post("/clock-in", attendanceHandler.ClockIn)
			r.Post("/clock-out", attendanceHandler.ClockOut)
			r.Get("/", attendanceHandler.List)
			r.Get("/{id}", attendanceHandler.Get)
		})

		r.Route("/schedules", func(r chi.Router) {
			r.Post("/", scheduleHandler.Create)
			r.Get("/", scheduleHandler.List)
			r.Get("/conflicts", scheduleHandler.Conflicts)
			r.Post("/auto-generate", scheduleHandler.AutoGenerate)
		})

		r.Route("/payrolls", func(r chi.Router) {
			r.Post("/generate", payrollHandler.Generate)
			r.Get("/", payrollHandler.List)
			r.Get("/{id}", payrollHandler.Get)
			r.Post("/{id}/process", payrollHandler.Process)
			r.Post("/{id}/pay", payrollHandler.MarkPaid)
		})

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", directoryHandler.ListEmployees)
			r.Get("/{id}", directoryHandler.GetEmployee)
		})

		r.Route("/work-sites", func(r chi.Router) {
			r.Get("/", directoryHandler.ListWorkSites)
			r.Get("/{id}", directoryHandler.GetWorkSite)
		})
	})
	return r
}
