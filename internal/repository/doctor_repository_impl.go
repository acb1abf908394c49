package repository

import (
	"context"

	"medicompare/internal/domain/entity"
	domainRepo "medicompare/internal/domain/repository"
	"medicompare/internal/infrastructure/dataset"
)

type doctorRepository struct {
	doctors []entity.Doctor
}

func NewDoctorRepository(ds *dataset.Dataset) domainRepo.DoctorRepository {
	return &doctorRepository{doctors: ds.Doctors()}
}

func (r *doctorRepository) FindByHospitalID(ctx context.Context, hospitalID string) []entity.Doctor {
	doctors := []entity.Doctor{}
	for _, d := range r.doctors {
		if d.HospitalID == hospitalID {
			doctors = append(doctors, d)
		}
	}
	return doctors
}
