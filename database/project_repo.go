package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mmrivera/portfolio-backend/models"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// FindAll returns all projects from the database. Order is whatever the store
// returns; callers must not rely on it.
func (r *ProjectRepo) FindAll() ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.Find(&projects).Error
	return projects, err
}

// FindByID returns a project by its ID, or nil when no such row exists.
func (r *ProjectRepo) FindByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Add inserts a new project into the database. The store assigns the ID; any
// ID present on the payload is discarded.
func (r *ProjectRepo) Add(project *models.Project) error {
	project.ID = uuid.Nil
	if project.Tags == nil {
		project.Tags = []string{}
	}
	return r.db.Create(project).Error
}

// Update overwrites the full project row at project.ID with the given values.
func (r *ProjectRepo) Update(project *models.Project) error {
	if project.Tags == nil {
		project.Tags = []string{}
	}
	return r.db.Save(project).Error
}

// Delete removes a project from the database by id.
func (r *ProjectRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Project{}, "id = ?", id).Error
}
