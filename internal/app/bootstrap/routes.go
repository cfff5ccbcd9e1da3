// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"time"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	aboutapifeature "github.com/proximaconf/proximacms/internal/app/features/aboutapi"
	conferencesapifeature "github.com/proximaconf/proximacms/internal/app/features/conferencesapi"
	contactapifeature "github.com/proximaconf/proximacms/internal/app/features/contactapi"
	galleryapifeature "github.com/proximaconf/proximacms/internal/app/features/galleryapi"
	guidelinesapifeature "github.com/proximaconf/proximacms/internal/app/features/guidelinesapi"
	healthfeature "github.com/proximaconf/proximacms/internal/app/features/health"
	homeapifeature "github.com/proximaconf/proximacms/internal/app/features/homeapi"
	newsletterapifeature "github.com/proximaconf/proximacms/internal/app/features/newsletterapi"
	servicesapifeature "github.com/proximaconf/proximacms/internal/app/features/servicesapi"
	sponsorsapifeature "github.com/proximaconf/proximacms/internal/app/features/sponsorsapi"
	upcomingapifeature "github.com/proximaconf/proximacms/internal/app/features/upcomingapi"
	"github.com/proximaconf/proximacms/internal/app/system/apicors"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed.
//
// The whole surface is a JSON API consumed by the public site and the admin
// UI from other origins, so CORS is permissive and there are no sessions:
// admin mutations carry a bearer API key, public endpoints carry nothing.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	db := deps.MongoDatabase
	up := deps.Uploads

	homeHandler := homeapifeature.NewHandler(db, up, logger, appCfg.UploadMaxBytes)
	aboutHandler := aboutapifeature.NewHandler(db, up, logger, appCfg.UploadMaxBytes)
	servicesHandler := servicesapifeature.NewHandler(db, up, logger, appCfg.UploadMaxBytes)
	galleryHandler := galleryapifeature.NewHandler(db, up, logger, appCfg.UploadMaxBytes)
	upcomingHandler := upcomingapifeature.NewHandler(db, up, logger, appCfg.UploadMaxBytes)
	guidelinesHandler := guidelinesapifeature.NewHandler(db, logger)
	contactHandler := contactapifeature.NewHandler(db, logger)
	newsletterHandler := newsletterapifeature.NewHandler(db, logger)
	conferencesHandler := conferencesapifeature.NewHandler(db, logger)
	sponsorsHandler := sponsorsapifeature.NewHandler(db, logger)

	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(apicors.Middleware())

	// Content pages
	r.Route("/api", func(api chi.Router) {
		api.Mount("/home", homeapifeature.Routes(homeHandler, appCfg.APIKey, logger))
		api.Mount("/aboutus", aboutapifeature.Routes(aboutHandler, appCfg.APIKey, logger))
		api.Mount("/services", servicesapifeature.Routes(servicesHandler, appCfg.APIKey, logger))
		api.Mount("/gallery", galleryapifeature.Routes(galleryHandler, appCfg.APIKey, logger))
		api.Mount("/upcoming", upcomingapifeature.Routes(upcomingHandler, appCfg.APIKey, logger))
		api.Mount("/guidelines", guidelinesapifeature.Routes(guidelinesHandler, appCfg.APIKey, logger))

		// Collections
		api.Mount("/contact", contactapifeature.Routes(contactHandler, appCfg.APIKey, logger))
		api.Mount("/newsletter", newsletterapifeature.Routes(newsletterHandler, appCfg.APIKey, logger))
		api.Mount("/conferences", conferencesapifeature.Routes(conferencesHandler, appCfg.APIKey, logger))
		api.Mount("/sponsors", sponsorsapifeature.Routes(sponsorsHandler, appCfg.APIKey, logger))
	})

	// Health endpoints for load balancers and monitoring
	healthfeature.Routes(r, deps.MongoClient)

	// Serve uploaded files when using local storage.
	// With S3 storage, documents carry CloudFront URLs instead.
	if appCfg.StorageType == "local" || appCfg.StorageType == "" {
		logger.Info("mounting local file serving",
			zap.String("url", appCfg.StorageLocalURL),
			zap.String("path", appCfg.StorageLocalPath),
		)
		r.Handle(appCfg.StorageLocalURL+"/*", fileserver.Handler(appCfg.StorageLocalURL, appCfg.StorageLocalPath))
	}

	return r, nil
}
