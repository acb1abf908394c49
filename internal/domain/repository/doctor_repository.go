package repository

import (
	"context"

	"medicompare/internal/domain/entity"
)

type DoctorRepository interface {
	FindByHospitalID(ctx context.Context, hospitalID string) []entity.Doctor
}
