package repository

import (
	"context"

	"medicompare/internal/domain/entity"
)

type TreatmentRepository interface {
	FindAll(ctx context.Context) []entity.Treatment
	FindByHospitalID(ctx context.Context, hospitalID string) []entity.Treatment
	FindByID(ctx context.Context, id string) *entity.Treatment
}
