package repository

import (
	"context"

	"medicompare/internal/domain/entity"
	domainRepo "medicompare/internal/domain/repository"
	"medicompare/internal/infrastructure/dataset"
)

type reviewRepository struct {
	reviews []entity.Review
}

func NewReviewRepository(ds *dataset.Dataset) domainRepo.ReviewRepository {
	return &reviewRepository{reviews: ds.Reviews()}
}

func (r *reviewRepository) FindByHospitalID(ctx context.Context, hospitalID string) []entity.Review {
	reviews := []entity.Review{}
	for _, rv := range r.reviews {
		if rv.HospitalID == hospitalID {
			reviews = append(reviews, rv)
		}
	}
	return reviews
}
