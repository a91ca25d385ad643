package services

import (
	"soc-archive-api/models"
	"soc-archive-api/repositories"
)

type CategoryService interface {
	CreateCategory(req models.CreateCategoryRequest) (*models.Category, error)
	GetCategories() ([]models.Category, error)
}

type categoryService struct {
	categoryRepo repositories.CategoryRepository
}

func NewCategoryService(categoryRepo repositories.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) CreateCategory(req models.CreateCategoryRequest) (*models.Category, error) {
	category := &models.Category{
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.categoryRepo.Create(category); err != nil {
		return nil, models.ErrorInternalServer{Message: err.Error()}
	}

	return category, nil
}

func (s *categoryService) GetCategories() ([]models.Category, error) {
	categories, err := s.categoryRepo.GetAll()
	if err != nil {
		return nil, models.ErrorInternalServer{Message: err.Error()}
	}

	return categories, nil
}
