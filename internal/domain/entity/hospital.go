package entity

// Hospital represents a care facility with its descriptive and rating metadata
type Hospital struct {
	ID            string   `json:"id"`
	Name          string   `json:"hospital_name"`
	Image         string   `json:"image"`
	Address       string   `json:"address"`
	City          string   `json:"city"`
	Rating        float64  `json:"rating"`
	ReviewsCount  int      `json:"reviews_count"`
	Timings       string   `json:"timings"`
	ContactNumber string   `json:"contact_number"`
	Specialties   []string `json:"specialties"`
	Established   string   `json:"established"`
	Beds          int      `json:"beds"`
}

// HospitalDetail aggregates everything the detail screen shows for one hospital
type HospitalDetail struct {
	Hospital   Hospital
	Doctors    []Doctor
	Reviews    []Review
	Treatments []Treatment
	Summary    ReviewSummary
}
