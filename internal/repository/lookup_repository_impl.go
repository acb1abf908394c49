package repository

import (
	"context"

	domainRepo "medicompare/internal/domain/repository"
	"medicompare/internal/infrastructure/dataset"
)

type lookupRepository struct {
	cities         []string
	treatmentNames []string
}

func NewLookupRepository(ds *dataset.Dataset) domainRepo.LookupRepository {
	return &lookupRepository{
		cities:         ds.Cities(),
		treatmentNames: ds.TreatmentNames(),
	}
}

func (r *lookupRepository) Cities(ctx context.Context) []string {
	return append([]string(nil), r.cities...)
}

func (r *lookupRepository) TreatmentNames(ctx context.Context) []string {
	return append([]string(nil), r.treatmentNames...)
}
