package repository

import (
	"context"

	"medicompare/internal/domain/entity"
	domainRepo "medicompare/internal/domain/repository"
	"medicompare/internal/infrastructure/dataset"
)

type treatmentRepository struct {
	treatments []entity.Treatment
}

func NewTreatmentRepository(ds *dataset.Dataset) domainRepo.TreatmentRepository {
	return &treatmentRepository{treatments: ds.Treatments()}
}

// FindAll returns every treatment in dataset order
func (r *treatmentRepository) FindAll(ctx context.Context) []entity.Treatment {
	return append([]entity.Treatment(nil), r.treatments...)
}

func (r *treatmentRepository) FindByHospitalID(ctx context.Context, hospitalID string) []entity.Treatment {
	treatments := []entity.Treatment{}
	for _, t := range r.treatments {
		if t.HospitalID == hospitalID {
			treatments = append(treatments, t)
		}
	}
	return treatments
}

func (r *treatmentRepository) FindByID(ctx context.Context, id string) *entity.Treatment {
	for _, t := range r.treatments {
		if t.ID == id {
			found := t
			return &found
		}
	}
	return nil
}
