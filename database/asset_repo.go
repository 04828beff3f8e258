package database

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mmrivera/portfolio-backend/models"
)

type AssetRepo struct {
	db *gorm.DB
}

func NewAssetRepo(db *gorm.DB) *AssetRepo {
	return &AssetRepo{db}
}

// Find returns the asset document with the given name, or nil when it does
// not exist yet.
func (r *AssetRepo) Find(name string) (*models.AssetRecord, error) {
	var record models.AssetRecord
	err := r.db.First(&record, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// Merge writes the given fields into the named document, preserving every key
// not mentioned. The read-merge-save runs in one transaction with the row
// locked, so a multi-field merge is visible all-or-nothing.
func (r *AssetRepo) Merge(name string, fields map[string]string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var record models.AssetRecord
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&record, "name = ?", name).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			record = models.AssetRecord{Name: name, Fields: map[string]string{}}
		} else if err != nil {
			return err
		}
		if record.Fields == nil {
			record.Fields = map[string]string{}
		}
		for key, value := range fields {
			record.Fields[key] = value
		}
		return tx.Save(&record).Error
	})
}

// PdfLinks resolves the two public asset links. The combined "pdfs" document
// is canonical; for any URL it lacks, the legacy per-kind documents are
// consulted so sites written against the old layout keep working.
func (r *AssetRepo) PdfLinks() (*models.PdfLinks, error) {
	links := &models.PdfLinks{}

	combined, err := r.Find(models.AssetDocPdfs)
	if err != nil {
		return nil, err
	}
	if combined != nil {
		links.LicensesPdfURL = combined.Fields[models.FieldLicensesPdfURL]
		links.InternshipsPdfURL = combined.Fields[models.FieldInternshipsPdfURL]
	}

	if links.LicensesPdfURL == "" {
		if legacy, err := r.Find(models.AssetDocLicenses); err != nil {
			return nil, err
		} else if legacy != nil {
			links.LicensesPdfURL = legacy.Fields[models.FieldPdfURL]
		}
	}
	if links.InternshipsPdfURL == "" {
		if legacy, err := r.Find(models.AssetDocInternships); err != nil {
			return nil, err
		} else if legacy != nil {
			links.InternshipsPdfURL = legacy.Fields[models.FieldPdfURL]
		}
	}

	return links, nil
}
