package usecase

import (
	"context"

	"jobboard/internal/domain/job"
	"jobboard/internal/repository"
)

type IndustryUsecase interface {
	ListIndustries(ctx context.Context) ([]job.Industry, error)
}

type Industries struct {
	industries repository.IndustryRepository
}

func NewIndustryUsecase(industries repository.IndustryRepository) *Industries {
	return &Industries{industries: industries}
}

func (u *Industries) ListIndustries(ctx context.Context) ([]job.Industry, error) {
	items, err := u.industries.List(ctx)
	if err != nil {
		return nil, internal(err)
	}
	return items, nil
}
