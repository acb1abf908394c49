package repository

import (
	"context"

	"medicompare/internal/domain/entity"
)

type ReviewRepository interface {
	FindByHospitalID(ctx context.Context, hospitalID string) []entity.Review
}
