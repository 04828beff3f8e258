package database

import (
	"gorm.io/gorm"

	"github.com/mmrivera/portfolio-backend/models"
)

type Database struct {
	projectRepo *ProjectRepo
	assetRepo   *AssetRepo
	userRepo    *UserRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		projectRepo: NewProjectRepo(db),
		assetRepo:   NewAssetRepo(db),
		userRepo:    NewUserRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) AssetRepo() *AssetRepo {
	return d.assetRepo
}

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}

// Migrate creates or updates the backing tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Project{},
		&models.AssetRecord{},
		&models.User{},
	)
}
