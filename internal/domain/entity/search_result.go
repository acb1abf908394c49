package entity

// SearchResult pairs a hospital with one of its treatments that matched a search.
// It is never stored in the dataset.
type SearchResult struct {
	Hospital  Hospital
	Treatment Treatment
}

// Matches reports whether the result refers to the given hospital/treatment pair
func (r SearchResult) Matches(hospitalID, treatmentID string) bool {
	return r.Hospital.ID == hospitalID && r.Treatment.ID == treatmentID
}

func (r SearchResult) clone() SearchResult {
	r.Hospital.Specialties = append([]string(nil), r.Hospital.Specialties...)
	return r
}
