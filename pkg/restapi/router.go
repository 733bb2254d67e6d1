package restapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"hr-platform/internal/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/ratelimit"
)

type RouterOpts struct {
	Employees EmployeeService
	Leave     LeaveService

	Timeout time.Duration

	// MaxRPS throttles incoming requests. Zero disables the limiter.
	MaxRPS int
}

func NewRouter(opts RouterOpts) http.Handler {
	r := chi.NewRouter()

	r.Use(metricsMiddleware)

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(middleware.Timeout(opts.Timeout))

	if opts.MaxRPS > 0 {
		r.Use(throttle(opts.MaxRPS))
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/", welcome)

	r.Route("/api", func(r chi.Router) {
		newEmployeeHandler(opts.Employees).handle(r)
		newLeaveHandler(opts.Leave).handle(r)
	})

	return r
}

type WelcomeOutput struct {
	Message string `json:"message"`
}

func welcome(w http.ResponseWriter, _ *http.Request) {
	writeResult(w, WelcomeOutput{Message: "Welcome to the HR API!"})
}

func throttle(maxRPS int) func(http.Handler) http.Handler {
	rl := ratelimit.New(maxRPS)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rl.Take()
			next.ServeHTTP(w, r)
		})
	}
}

func metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		rctx := chi.RouteContext(r.Context())
		routePattern := strings.Join(rctx.RoutePatterns, "")

		status := fmt.Sprintf("%d %s", ww.Status(), http.StatusText(ww.Status()))
		metrics.RestAPI.NewRequest(r.Method, routePattern, status, time.Since(start))
	})
}
