package models

import "time"

type CreateWorkRequest struct {
	Title       string  `json:"title" binding:"required"`
	Abstract    string  `json:"abstract" binding:"required"`
	AuthorName  string  `json:"author_name" binding:"required"`
	AuthorEmail *string `json:"author_email"`
	Year        int     `json:"year" binding:"required"`
	Field       string  `json:"field" binding:"required"`
	School      *string `json:"school"`
	Region      *string `json:"region"`
	Category    *string `json:"category"`
	GDPRConsent bool    `json:"gdpr_consent"`
}

type CreateCategoryRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

// WorkListParams carries the optional filters of the public listing
// endpoint. Filters combine as a conjunction; the search term matches as a
// substring within title, abstract, author name or field.
type WorkListParams struct {
	Search   string `form:"search"`
	Field    string `form:"field"`
	Year     int    `form:"year"`
	School   string `form:"school"`
	Region   string `form:"region"`
	Category string `form:"category"`
}

// WorkResponse is the external representation of a work.
type WorkResponse struct {
	ID         uint      `json:"id"`
	Title      string    `json:"title"`
	Abstract   string    `json:"abstract"`
	AuthorName string    `json:"author_name"`
	Year       int       `json:"year"`
	Field      string    `json:"field"`
	School     *string   `json:"school"`
	Region     *string   `json:"region"`
	Category   *string   `json:"category"`
	PDFURL     *string   `json:"pdf_url"`
	Approved   bool      `json:"approved"`
	CreatedAt  time.Time `json:"created_at"`
}

type StatsResponse struct {
	TotalWorks    int64            `json:"total_works"`
	ApprovedWorks int64            `json:"approved_works"`
	WorksByYear   map[int]int64    `json:"works_by_year"`
	WorksByField  map[string]int64 `json:"works_by_field"`
}
