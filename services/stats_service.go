package services

import (
	"soc-archive-api/models"
	"soc-archive-api/repositories"
)

type StatsService interface {
	GetStats() (*models.StatsResponse, error)
}

type statsService struct {
	workRepo repositories.WorkRepository
}

func NewStatsService(workRepo repositories.WorkRepository) StatsService {
	return &statsService{workRepo: workRepo}
}

// GetStats aggregates counts over all works, approved or not.
func (s *statsService) GetStats() (*models.StatsResponse, error) {
	total, err := s.workRepo.CountAll()
	if err != nil {
		return nil, models.ErrorInternalServer{Message: err.Error()}
	}

	approved, err := s.workRepo.CountApproved()
	if err != nil {
		return nil, models.ErrorInternalServer{Message: err.Error()}
	}

	byYear, err := s.workRepo.CountByYear()
	if err != nil {
		return nil, models.ErrorInternalServer{Message: err.Error()}
	}

	byField, err := s.workRepo.CountByField()
	if err != nil {
		return nil, models.ErrorInternalServer{Message: err.Error()}
	}

	return &models.StatsResponse{
		TotalWorks:    total,
		ApprovedWorks: approved,
		WorksByYear:   byYear,
		WorksByField:  byField,
	}, nil
}
