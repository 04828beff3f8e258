package api

import (
	"time"

	"github.com/mmrivera/portfolio-backend/auth"
	"github.com/mmrivera/portfolio-backend/database"
	"github.com/mmrivera/portfolio-backend/services"
	"github.com/mmrivera/portfolio-backend/storage"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	projectHandler projectHandler
	assetHandler   assetHandler
	authHandler    authHandler
	siteHandler    siteHandler
	contactHandler contactHandler
}

// initializeHandlers creates all handlers with their typed store interfaces.
func initializeHandlers(db database.Database, files storage.FileStore, authService *auth.Service, mailer *services.Mailer, startupTime time.Time) *routeHandlers {
	return &routeHandlers{
		projectHandler: newProjectHandler(db.ProjectRepo()),
		assetHandler:   newAssetHandler(db.AssetRepo(), files),
		authHandler:    newAuthHandler(authService),
		siteHandler:    newSiteHandler(authService.Notifier(), startupTime),
		contactHandler: newContactHandler(mailer),
	}
}
