package models

import (
	"fmt"
	"time"
)

// AnonymizedAuthor replaces the author name once personal data removal
// has been requested for a work.
const AnonymizedAuthor = "Anonymized"

type Work struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	Title       string    `json:"title" gorm:"not null"`
	Abstract    string    `json:"abstract" gorm:"type:text;not null"`
	AuthorName  string    `json:"author_name" gorm:"not null"`
	AuthorEmail *string   `json:"-"`
	Year        int       `json:"year" gorm:"not null"`
	Field       string    `json:"field" gorm:"not null"`
	School      *string   `json:"school"`
	Region      *string   `json:"region"`
	Category    *string   `json:"category"`
	PDFFilename *string   `json:"-"`
	Approved    bool      `json:"approved" gorm:"default:false"`
	GDPRConsent bool      `json:"-" gorm:"default:false"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"-"`
}

// HasPDF reports whether a PDF attachment is recorded for the work.
func (w *Work) HasPDF() bool {
	return w.PDFFilename != nil && *w.PDFFilename != ""
}

// ToResponse builds the external representation of a work. The PDF URL is
// derived from the attachment state; author email, GDPR consent and the
// stored filename never leave the service.
func (w *Work) ToResponse() WorkResponse {
	resp := WorkResponse{
		ID:         w.ID,
		Title:      w.Title,
		Abstract:   w.Abstract,
		AuthorName: w.AuthorName,
		Year:       w.Year,
		Field:      w.Field,
		School:     w.School,
		Region:     w.Region,
		Category:   w.Category,
		Approved:   w.Approved,
		CreatedAt:  w.CreatedAt,
	}

	if w.HasPDF() {
		url := fmt.Sprintf("/works/%d/pdf", w.ID)
		resp.PDFURL = &url
	}

	return resp
}

// WorksToResponse maps a slice of works to their external representation,
// returning an empty slice rather than nil so list endpoints always render
// a JSON array.
func WorksToResponse(works []Work) []WorkResponse {
	responses := make([]WorkResponse, 0, len(works))
	for i := range works {
		responses = append(responses, works[i].ToResponse())
	}
	return responses
}
