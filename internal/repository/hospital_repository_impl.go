package repository

import (
	"context"

	"medicompare/internal/domain/entity"
	domainRepo "medicompare/internal/domain/repository"
	"medicompare/internal/infrastructure/dataset"
)

type hospitalRepository struct {
	hospitals []entity.Hospital
	byID      map[string]int
}

func NewHospitalRepository(ds *dataset.Dataset) domainRepo.HospitalRepository {
	hospitals := ds.Hospitals()
	byID := make(map[string]int, len(hospitals))
	for i, h := range hospitals {
		byID[h.ID] = i
	}
	return &hospitalRepository{hospitals: hospitals, byID: byID}
}

func (r *hospitalRepository) FindAll(ctx context.Context) []entity.Hospital {
	out := make([]entity.Hospital, len(r.hospitals))
	for i, h := range r.hospitals {
		out[i] = cloneHospital(h)
	}
	return out
}

func (r *hospitalRepository) FindByID(ctx context.Context, id string) *entity.Hospital {
	i, ok := r.byID[id]
	if !ok {
		return nil
	}
	h := cloneHospital(r.hospitals[i])
	return &h
}

func cloneHospital(h entity.Hospital) entity.Hospital {
	h.Specialties = append([]string(nil), h.Specialties...)
	return h
}
