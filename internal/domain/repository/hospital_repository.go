package repository

import (
	"context"

	"medicompare/internal/domain/entity"
)

type HospitalRepository interface {
	FindAll(ctx context.Context) []entity.Hospital
	// FindByID returns nil when no hospital has the id
	FindByID(ctx context.Context, id string) *entity.Hospital
}
