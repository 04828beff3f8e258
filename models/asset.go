package models

// Well-known asset document names. AssetDocPdfs is the canonical combined
// document written by the admin panel; the per-kind names are a legacy layout
// that older public-site builds still read.
const (
	AssetDocPdfs        = "pdfs"
	AssetDocLicenses    = "licenses"
	AssetDocInternships = "internships"
)

// Field keys inside the asset documents.
const (
	FieldLicensesPdfURL    = "licensesPdfUrl"
	FieldInternshipsPdfURL = "internshipsPdfUrl"
	FieldPdfURL            = "pdfUrl"
)

// AssetRecord is a schema-less settings document addressed by a fixed name.
// Fields is an open string map stored as a JSON column so that a merge write
// can touch some keys without disturbing the rest of the document.
type AssetRecord struct {
	Name   string            `json:"name" db:"name" gorm:"type:text;primaryKey;not null"`
	Fields map[string]string `json:"fields" db:"fields" gorm:"serializer:json;not null"`
}

// PdfLinks is the resolved pair of asset links the public site renders.
type PdfLinks struct {
	LicensesPdfURL    string `json:"licensesPdfUrl"`
	InternshipsPdfURL string `json:"internshipsPdfUrl"`
}
