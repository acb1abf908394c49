package entity

// Doctor belongs to exactly one hospital
type Doctor struct {
	ID             string `json:"id"`
	Name           string `json:"doctor_name"`
	Specialization string `json:"specialization"`
	Qualification  string `json:"qualification"`
	Experience     string `json:"experience"`
	HospitalID     string `json:"hospital_id"`
}
