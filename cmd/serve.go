package cmd

import (
	"fmt"
	"net/http"
	"path"

	"github.com/cristiano1098/socializeAPP/api/handlers"
	"github.com/cristiano1098/socializeAPP/api/middleware"
	"github.com/cristiano1098/socializeAPP/api/services"
	docs "github.com/cristiano1098/socializeAPP/docs"
	"github.com/cristiano1098/socializeAPP/internal/events"
	"github.com/cristiano1098/socializeAPP/internal/metrics"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	httpSwagger "github.com/swaggo/http-swagger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server for handling API requests",
	Run: func(cmd *cobra.Command, args []string) {

		// Load the config, initialize the database and set up logging
		commonSetUp()
		defer socializeDB.Close()

		// Initialize event publisher
		var publisher events.Notifier = events.NopNotifier{}
		if appCfg.Pulsar.URL != "" {
			p, err := events.NewEventPublisher(appCfg.Pulsar.URL, appCfg.Pulsar.TopicProducer)
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to initialize event publisher")
			}
			publisher = p
		} else {
			log.Warn().Msg("No pulsar url configured, group events will not be published")
		}
		defer publisher.Close()

		// Initialize metrics
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		collector := metrics.NewCollector(reg)

		service := &services.Service{
			Config:    appCfg,
			DB:        socializeDB,
			Publisher: publisher,
			Metrics:   collector,
		}

		// Create routes
		r := mux.NewRouter()
		r.Handle(appCfg.Metrics.Path, metrics.Handler(reg)).Methods(http.MethodGet)

		// Docs
		docs.SwaggerInfo.Host = appCfg.Host
		docs.SwaggerInfo.BasePath = appCfg.BasePath
		r.PathPrefix(appCfg.DocsPath).Handler(httpSwagger.Handler(
			httpSwagger.URL(path.Join(appCfg.DocsPath, "/doc.json")),
			httpSwagger.DeepLinking(true),
			httpSwagger.DocExpansion("none"),
			httpSwagger.DomID("swagger-ui"),
		)).Methods(http.MethodGet)

		// Register the routes
		api := r.PathPrefix(appCfg.BasePath).Subrouter()

		// Apply the middleware to the API routes
		api.Use(middleware.WithMetrics(collector))
		api.Use(middleware.WithLogger)
		api.Use(middleware.JWTMiddleware)

		handlers.RegisterRoutes(api, service)

		log.Info().Msg(fmt.Sprintf("Server started at %s:%d", host, port))

		if err := http.ListenAndServe(fmt.Sprintf("%s:%d", host, port),
			r); err != nil {

			log.Error().Err(err).Msg("could not start server")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&host, "host", "0.0.0.0", "host to run the server on")
	serveCmd.Flags().IntVar(&port, "port", 8080, "port to run the server on")
}
