// Package panel implements the admin panel's content-management flow: the
// auth gate, the project form, the asset update flow, and the view router.
// Every component receives its collaborators as typed interfaces; nothing in
// this package reaches for a global.
package panel

import (
	"context"

	"github.com/google/uuid"

	"github.com/mmrivera/portfolio-backend/models"
)

// ProjectStore is the projects-collection surface the panel drives.
type ProjectStore interface {
	FindAll() ([]*models.Project, error)
	FindByID(id uuid.UUID) (*models.Project, error)
	Add(project *models.Project) error
	Update(project *models.Project) error
	Delete(id uuid.UUID) error
}

// AssetStore is the asset-document surface the panel drives. Merge must be
// atomic for all fields written in one call.
type AssetStore interface {
	Find(name string) (*models.AssetRecord, error)
	Merge(name string, fields map[string]string) error
	PdfLinks() (*models.PdfLinks, error)
}

// AuthClient is the authentication surface the login view drives.
type AuthClient interface {
	SignIn(ctx context.Context, email, password string) (string, error)
	SignOut(ctx context.Context)
}

// Subscriber hands out auth-state subscriptions with an explicit unsubscribe
// handle. *auth.Notifier satisfies it.
type Subscriber interface {
	Subscribe(fn func(signedIn bool)) (unsubscribe func())
}
