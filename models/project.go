package models

import (
	"strings"

	"github.com/google/uuid"
)

// Project represents one entry of the portfolio's projects collection.
// Tags live inside the project record as an ordered list, stored as a JSON
// column rather than a join table, matching the document layout the public
// site reads.
type Project struct {
	ID          uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title       string    `json:"title" db:"title" gorm:"type:text;not null"`
	Description string    `json:"description" db:"description" gorm:"type:text;not null"`
	Tags        []string  `json:"tags" db:"tags" gorm:"serializer:json;not null"`
	ProjectLink string    `json:"projectLink,omitempty" db:"project_link" gorm:"type:text"`
	ImageURL    string    `json:"imageUrl,omitempty" db:"image_url" gorm:"type:text"`
}

// ParseTags turns the admin form's comma-separated tag string into the stored
// list: split on comma, trim each piece, drop empties, keep entry order.
// The empty input yields an empty list, never nil, so it serializes as [].
func ParseTags(s string) []string {
	tags := []string{}
	for _, piece := range strings.Split(s, ",") {
		if tag := strings.TrimSpace(piece); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
