package repositories

import (
	"soc-archive-api/models"

	"gorm.io/gorm"
)

type WorkRepository interface {
	Create(work *models.Work) error
	GetByID(id uint) (*models.Work, error)
	GetList(params models.WorkListParams) ([]models.Work, error)
	GetAll() ([]models.Work, error)
	SetApproved(id uint) error
	SetPDFFilename(id uint, filename string) error
	Anonymize(id uint) error
	CountAll() (int64, error)
	CountApproved() (int64, error)
	CountByYear() (map[int]int64, error)
	CountByField() (map[string]int64, error)
}

type workRepository struct {
	db *gorm.DB
}

func NewWorkRepository(db *gorm.DB) WorkRepository {
	return &workRepository{db: db}
}

func (r *workRepository) Create(work *models.Work) error {
	return r.db.Create(work).Error
}

func (r *workRepository) GetByID(id uint) (*models.Work, error) {
	var work models.Work
	err := r.db.First(&work, id).Error
	return &work, err
}

// GetList returns approved works matching every supplied filter. The search
// term is a substring match against title, abstract, author name or field;
// school matches as a substring, the remaining filters match exactly.
func (r *workRepository) GetList(params models.WorkListParams) ([]models.Work, error) {
	var works []models.Work

	query := r.db.Model(&models.Work{}).Where("approved = ?", true)

	if params.Search != "" {
		like := "%" + params.Search + "%"
		query = query.Where(
			"title LIKE ? OR abstract LIKE ? OR author_name LIKE ? OR field LIKE ?",
			like, like, like, like,
		)
	}

	if params.Field != "" {
		query = query.Where("field = ?", params.Field)
	}

	if params.Year > 0 {
		query = query.Where("year = ?", params.Year)
	}

	if params.School != "" {
		query = query.Where("school LIKE ?", "%"+params.School+"%")
	}

	if params.Region != "" {
		query = query.Where("region = ?", params.Region)
	}

	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}

	err := query.Find(&works).Error
	return works, err
}

func (r *workRepository) GetAll() ([]models.Work, error) {
	var works []models.Work
	err := r.db.Find(&works).Error
	return works, err
}

// SetApproved marks a work approved in a single statement so concurrent
// approvals cannot interleave with other mutations.
func (r *workRepository) SetApproved(id uint) error {
	return r.db.Model(&models.Work{}).
		Where("id = ?", id).
		Update("approved", true).Error
}

func (r *workRepository) SetPDFFilename(id uint, filename string) error {
	return r.db.Model(&models.Work{}).
		Where("id = ?", id).
		Update("pdf_filename", filename).Error
}

// Anonymize overwrites the author name with the fixed marker and clears the
// author email. Repeated calls leave the row in the same state.
func (r *workRepository) Anonymize(id uint) error {
	return r.db.Model(&models.Work{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"author_name":  models.AnonymizedAuthor,
			"author_email": nil,
		}).Error
}

func (r *workRepository) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.Work{}).Count(&count).Error
	return count, err
}

func (r *workRepository) CountApproved() (int64, error) {
	var count int64
	err := r.db.Model(&models.Work{}).Where("approved = ?", true).Count(&count).Error
	return count, err
}

func (r *workRepository) CountByYear() (map[int]int64, error) {
	var results []struct {
		Year  int
		Count int64
	}

	err := r.db.Model(&models.Work{}).
		Select("year, COUNT(id) as count").
		Group("year").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[int]int64)
	for _, result := range results {
		counts[result.Year] = result.Count
	}

	return counts, nil
}

func (r *workRepository) CountByField() (map[string]int64, error) {
	var results []struct {
		Field string
		Count int64
	}

	err := r.db.Model(&models.Work{}).
		Select("field, COUNT(id) as count").
		Group("field").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64)
	for _, result := range results {
		counts[result.Field] = result.Count
	}

	return counts, nil
}
