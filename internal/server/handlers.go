package server

import (
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"tasklist-web/internal/handlers"
	"tasklist-web/internal/middlewares"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func setupRouter(ctx *middlewares.AppContext) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.MetricsMiddleware)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(ctx.Sessions.LoadAndSave)

	r.Use(middlewares.AppContextMiddleware(ctx))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   ctx.Config.CORS.AllowedOrigins,
		AllowedMethods:   ctx.Config.CORS.AllowedMethods,
		AllowedHeaders:   ctx.Config.CORS.AllowedHeaders,
		ExposedHeaders:   ctx.Config.CORS.ExposedHeaders,
		AllowCredentials: ctx.Config.CORS.AllowCredentials,
		MaxAge:           ctx.Config.CORS.MaxAgeSeconds,
	}))

	r.Use(middleware.Compress(5))

	distDir := ctx.Config.Web.DistDir
	r.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServer(http.Dir(filepath.Join(distDir, "assets")))))
	r.Handle("/favicon.ico", http.FileServer(http.Dir(distDir)))

	// Page navigations go through the route guard; everything renders the
	// SPA shell, which routes client side from there.
	r.Group(func(r chi.Router) {
		r.Use(middlewares.GuardPage)
		r.Get("/*", func(w http.ResponseWriter, r *http.Request) {
			if strings.HasPrefix(r.URL.Path, "/api/") {
				http.NotFound(w, r)
				return
			}
			http.ServeFile(w, r, filepath.Join(distDir, "index.html"))
		})
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Get("/status", ctx.HandlerFunc(handlers.GETAuthStatusHandler))
			r.Post("/sign-in", ctx.HandlerFunc(handlers.POSTSignInHandler))
			r.Post("/create-account", ctx.HandlerFunc(handlers.POSTCreateAccountHandler))
			r.Post("/password-reset", ctx.HandlerFunc(handlers.POSTPasswordResetHandler))
			r.Post("/logout", ctx.HandlerFunc(handlers.POSTLogoutHandler))
			r.Get("/federated/callback", ctx.HandlerFunc(handlers.GETFederatedCallbackHandler))
			r.Get("/federated/{provider}", ctx.HandlerFunc(handlers.GETFederatedLoginHandler))
		})

		r.Group(func(r chi.Router) {
			r.Use(middlewares.RequireSession)

			r.Get("/me", ctx.HandlerFunc(handlers.GETMeHandler))
			r.Put("/me/name", ctx.HandlerFunc(handlers.PUTMeNameHandler))

			r.Route("/tasks", func(r chi.Router) {
				r.Get("/", ctx.HandlerFunc(handlers.GETTasksHandler))
				r.Post("/", ctx.HandlerFunc(handlers.POSTTaskHandler))
				r.Get("/{taskID}", ctx.HandlerFunc(handlers.GETTaskHandler))
				r.Delete("/{taskID}", ctx.HandlerFunc(handlers.DELETETaskHandler))
				r.Put("/{taskID}/name", ctx.HandlerFunc(handlers.PUTTaskNameHandler))
				r.Put("/{taskID}/body", ctx.HandlerFunc(handlers.PUTTaskBodyHandler))
				r.Post("/{taskID}/tags", ctx.HandlerFunc(handlers.POSTTaskTagHandler))
				r.Delete("/{taskID}/tags/{tag}", ctx.HandlerFunc(handlers.DELETETaskTagHandler))
			})
		})

		r.Route("/v1", func(r chi.Router) {
			r.Get("/health", ctx.HandlerFunc(handlers.HandlerHealth))
		})
	})

	return r
}

func setupDebugRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Mount("/debug", middleware.Profiler())

	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	return r
}
