package dataset

import (
	"fmt"
	"time"

	"medicompare/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

// Dataset is the immutable sample data the whole application reads from.
// Accessors return copies so callers can never mutate the collections.
type Dataset struct {
	cities         []string
	treatmentNames []string
	hospitals      []entity.Hospital
	doctors        []entity.Doctor
	treatments     []entity.Treatment
	reviews        []entity.Review
}

// Load builds the sample dataset and checks its invariants
func Load() (*Dataset, error) {
	ds := &Dataset{
		cities:         cities(),
		treatmentNames: treatmentNames(),
		hospitals:      hospitals(),
		doctors:        doctors(),
		treatments:     treatments(),
		reviews:        reviews(),
	}

	if err := ds.Validate(); err != nil {
		return nil, fmt.Errorf("invalid sample dataset: %w", err)
	}

	logrus.Infof("Sample dataset loaded: %d hospitals, %d doctors, %d treatments, %d reviews",
		len(ds.hospitals), len(ds.doctors), len(ds.treatments), len(ds.reviews))

	return ds, nil
}

// MustLoad is Load for callers that cannot recover from a broken dataset
func MustLoad() *Dataset {
	ds, err := Load()
	if err != nil {
		panic(err)
	}
	return ds
}

// Validate checks id uniqueness, foreign keys and value ranges
func (d *Dataset) Validate() error {
	if len(d.cities) == 0 {
		return fmt.Errorf("city list is empty")
	}
	if len(d.treatmentNames) == 0 {
		return fmt.Errorf("treatment vocabulary is empty")
	}

	vocabulary := make(map[string]struct{}, len(d.treatmentNames))
	for _, name := range d.treatmentNames {
		vocabulary[name] = struct{}{}
	}

	hospitalIDs := make(map[string]struct{}, len(d.hospitals))
	for _, h := range d.hospitals {
		if _, dup := hospitalIDs[h.ID]; dup {
			return fmt.Errorf("duplicate hospital id %s", h.ID)
		}
		hospitalIDs[h.ID] = struct{}{}
		if h.Rating < 0 || h.Rating > 5 {
			return fmt.Errorf("hospital %s: rating %.1f out of range", h.ID, h.Rating)
		}
		if h.Beds < 0 {
			return fmt.Errorf("hospital %s: negative bed count", h.ID)
		}
	}

	doctorIDs := make(map[string]struct{}, len(d.doctors))
	for _, doc := range d.doctors {
		if _, dup := doctorIDs[doc.ID]; dup {
			return fmt.Errorf("duplicate doctor id %s", doc.ID)
		}
		doctorIDs[doc.ID] = struct{}{}
		if _, ok := hospitalIDs[doc.HospitalID]; !ok {
			return fmt.Errorf("doctor %s: unknown hospital %s", doc.ID, doc.HospitalID)
		}
	}

	treatmentIDs := make(map[string]struct{}, len(d.treatments))
	for _, t := range d.treatments {
		if _, dup := treatmentIDs[t.ID]; dup {
			return fmt.Errorf("duplicate treatment id %s", t.ID)
		}
		treatmentIDs[t.ID] = struct{}{}
		if _, ok := hospitalIDs[t.HospitalID]; !ok {
			return fmt.Errorf("treatment %s: unknown hospital %s", t.ID, t.HospitalID)
		}
		if _, ok := vocabulary[t.Name]; !ok {
			return fmt.Errorf("treatment %s: %q is not in the vocabulary", t.ID, t.Name)
		}
		if t.Cost.IsNegative() || t.ConsultationFee.IsNegative() {
			return fmt.Errorf("treatment %s: negative cost or fee", t.ID)
		}
	}

	reviewIDs := make(map[string]struct{}, len(d.reviews))
	for _, r := range d.reviews {
		if _, dup := reviewIDs[r.ID]; dup {
			return fmt.Errorf("duplicate review id %s", r.ID)
		}
		reviewIDs[r.ID] = struct{}{}
		if _, ok := hospitalIDs[r.HospitalID]; !ok {
			return fmt.Errorf("review %s: unknown hospital %s", r.ID, r.HospitalID)
		}
		if r.Rating < 1 || r.Rating > 5 {
			return fmt.Errorf("review %s: rating %d out of range", r.ID, r.Rating)
		}
		if _, err := time.Parse(entity.ReviewDateLayout, r.Date); err != nil {
			return fmt.Errorf("review %s: invalid date %q", r.ID, r.Date)
		}
	}

	return nil
}

func (d *Dataset) Cities() []string {
	return append([]string(nil), d.cities...)
}

func (d *Dataset) TreatmentNames() []string {
	return append([]string(nil), d.treatmentNames...)
}

func (d *Dataset) Hospitals() []entity.Hospital {
	out := make([]entity.Hospital, len(d.hospitals))
	for i, h := range d.hospitals {
		h.Specialties = append([]string(nil), h.Specialties...)
		out[i] = h
	}
	return out
}

func (d *Dataset) Doctors() []entity.Doctor {
	return append([]entity.Doctor(nil), d.doctors...)
}

func (d *Dataset) Treatments() []entity.Treatment {
	return append([]entity.Treatment(nil), d.treatments...)
}

func (d *Dataset) Reviews() []entity.Review {
	return append([]entity.Review(nil), d.reviews...)
}
