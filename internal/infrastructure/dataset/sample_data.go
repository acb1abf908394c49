package dataset

import (
	"medicompare/internal/domain/entity"

	"github.com/shopspring/decimal"
)

func cities() []string {
	return []string{
		"Hyderabad",
		"Bangalore",
		"Chennai",
		"Mumbai",
		"Delhi",
		"Pune",
		"Kolkata",
		"Ahmedabad",
	}
}

func treatmentNames() []string {
	return []string{
		"Dental Treatment",
		"Heart Surgery",
		"Eye Checkup",
		"Orthopedic Treatment",
		"General Consultation",
		"Cancer Treatment",
		"Kidney Treatment",
		"Spine Surgery",
		"Maternity & Delivery",
		"Physiotherapy",
	}
}

func hospitals() []entity.Hospital {
	return []entity.Hospital{
		{
			ID:            "H001",
			Name:          "Apollo Hospital",
			Image:         "https://images.unsplash.com/photo-1586773860418-d37222d8fce3?w=600&q=80",
			Address:       "Jubilee Hills, Road No. 72, Hyderabad",
			City:          "Hyderabad",
			Rating:        4.7,
			ReviewsCount:  245,
			Timings:       "24/7 Emergency | OPD: 8:00 AM – 8:00 PM",
			ContactNumber: "+91-40-2360-7777",
			Specialties:   []string{"Cardiology", "Oncology", "Orthopedics", "Neurology"},
			Established:   "1996",
			Beds:          500,
		},
		{
			ID:            "H002",
			Name:          "Yashoda Hospital",
			Image:         "https://images.unsplash.com/photo-1519494026892-80bbd2d6fd0d?w=600&q=80",
			Address:       "Raj Bhavan Road, Secunderabad, Hyderabad",
			City:          "Hyderabad",
			Rating:        4.5,
			ReviewsCount:  180,
			Timings:       "24/7 Emergency | OPD: 9:00 AM – 7:00 PM",
			ContactNumber: "+91-40-4567-4567",
			Specialties:   []string{"Gastroenterology", "Nephrology", "Cardiology", "General Surgery"},
			Established:   "2001",
			Beds:          350,
		},
		{
			ID:            "H003",
			Name:          "KIMS Hospital",
			Image:         "https://images.unsplash.com/photo-1538108149393-fbbd81895907?w=600&q=80",
			Address:       "1-8-31/1, Minister Road, Kondapur, Hyderabad",
			City:          "Hyderabad",
			Rating:        4.3,
			ReviewsCount:  150,
			Timings:       "24/7 Emergency | OPD: 8:30 AM – 7:30 PM",
			ContactNumber: "+91-40-4488-5000",
			Specialties:   []string{"Orthopedics", "Spine Surgery", "Dental", "Pediatrics"},
			Established:   "2004",
			Beds:          400,
		},
		{
			ID:            "H004",
			Name:          "Care Hospital",
			Image:         "https://images.unsplash.com/photo-1516549655169-df83a0774514?w=600&q=80",
			Address:       "Road No. 1, Banjara Hills, Hyderabad",
			City:          "Hyderabad",
			Rating:        4.6,
			ReviewsCount:  210,
			Timings:       "24/7 Emergency | OPD: 8:00 AM – 9:00 PM",
			ContactNumber: "+91-40-3041-8888",
			Specialties:   []string{"Cancer Care", "Cardiology", "Transplant", "General Medicine"},
			Established:   "1998",
			Beds:          450,
		},
		{
			ID:            "H005",
			Name:          "Manipal Hospital",
			Image:         "https://images.unsplash.com/photo-1579684385127-1ef15d508118?w=600&q=80",
			Address:       "Old Airport Road, HAL Area, Bangalore",
			City:          "Bangalore",
			Rating:        4.8,
			ReviewsCount:  320,
			Timings:       "24/7 Emergency | OPD: 8:00 AM – 8:00 PM",
			ContactNumber: "+91-80-2502-4444",
			Specialties:   []string{"Heart Surgery", "Neurosciences", "Transplant", "Oncology"},
			Established:   "1991",
			Beds:          650,
		},
		{
			ID:            "H006",
			Name:          "Fortis Hospital",
			Image:         "https://images.unsplash.com/photo-1571772996211-2f02c9727629?w=600&q=80",
			Address:       "Bannerghatta Road, Bangalore",
			City:          "Bangalore",
			Rating:        4.4,
			ReviewsCount:  195,
			Timings:       "24/7 Emergency | OPD: 9:00 AM – 8:00 PM",
			ContactNumber: "+91-80-6621-4444",
			Specialties:   []string{"Orthopedics", "Dental", "Eye Care", "Bariatrics"},
			Established:   "2006",
			Beds:          300,
		},
		{
			ID:            "H007",
			Name:          "Gleneagles Global Hospital",
			Image:         "https://images.unsplash.com/photo-1551190822-a9333d879b1f?w=600&q=80",
			Address:       "439, Cheran Nagar, Perumbakkam, Chennai",
			City:          "Chennai",
			Rating:        4.6,
			ReviewsCount:  230,
			Timings:       "24/7 Emergency | OPD: 8:00 AM – 8:00 PM",
			ContactNumber: "+91-44-4477-7000",
			Specialties:   []string{"Liver Transplant", "Cardiology", "Orthopedics", "Urology"},
			Established:   "1999",
			Beds:          420,
		},
		{
			ID:            "H008",
			Name:          "Kokilaben Hospital",
			Image:         "https://images.unsplash.com/photo-1504439468489-c8920d796a29?w=600&q=80",
			Address:       "Rao Saheb Achutrao Patwardhan Marg, Mumbai",
			City:          "Mumbai",
			Rating:        4.9,
			ReviewsCount:  410,
			Timings:       "24/7 Emergency | OPD: 8:00 AM – 10:00 PM",
			ContactNumber: "+91-22-3069-6969",
			Specialties:   []string{"Oncology", "Heart Surgery", "Neurology", "Robotic Surgery"},
			Established:   "2009",
			Beds:          750,
		},
	}
}

func doctors() []entity.Doctor {
	return []entity.Doctor{
		{ID: "D001", Name: "Dr. Rajesh Kumar", Specialization: "Cardiologist", Qualification: "MBBS, MD Cardiology, DM (Cardiology)", Experience: "12 Years", HospitalID: "H001"},
		{ID: "D002", Name: "Dr. Priya Sharma", Specialization: "Orthopedic Surgeon", Qualification: "MBBS, MS Orthopedics", Experience: "9 Years", HospitalID: "H001"},
		{ID: "D003", Name: "Dr. Suresh Rao", Specialization: "Gastroenterologist", Qualification: "MBBS, MD, DM Gastroenterology", Experience: "15 Years", HospitalID: "H002"},
		{ID: "D004", Name: "Dr. Anitha Reddy", Specialization: "General Physician", Qualification: "MBBS, MD General Medicine", Experience: "8 Years", HospitalID: "H002"},
		{ID: "D005", Name: "Dr. Vikram Nair", Specialization: "Spine Surgeon", Qualification: "MBBS, MS Orthopedics, Fellowship Spine", Experience: "11 Years", HospitalID: "H003"},
		{ID: "D006", Name: "Dr. Meena Patel", Specialization: "Dentist", Qualification: "BDS, MDS Oral Surgery", Experience: "7 Years", HospitalID: "H003"},
		{ID: "D007", Name: "Dr. Arun Mehta", Specialization: "Oncologist", Qualification: "MBBS, MD, DM Medical Oncology", Experience: "18 Years", HospitalID: "H004"},
		{ID: "D008", Name: "Dr. Deepa Krishnan", Specialization: "Cardiologist", Qualification: "MBBS, MD, DM Cardiology, FESC", Experience: "20 Years", HospitalID: "H005"},
		{ID: "D009", Name: "Dr. Ravi Balachandran", Specialization: "Ophthalmologist", Qualification: "MBBS, MS Ophthalmology, FRCS", Experience: "14 Years", HospitalID: "H006"},
		{ID: "D010", Name: "Dr. Sanjay Iyer", Specialization: "Hepatologist", Qualification: "MBBS, MD, DM Hepatology", Experience: "16 Years", HospitalID: "H007"},
		{ID: "D011", Name: "Dr. Kavitha Menon", Specialization: "Neurosurgeon", Qualification: "MBBS, MS, MCh Neurosurgery", Experience: "13 Years", HospitalID: "H008"},
	}
}

func treatment(id, name string, cost, fee int64, hospitalID, duration, description string) entity.Treatment {
	return entity.Treatment{
		ID:              id,
		Name:            name,
		Cost:            decimal.NewFromInt(cost),
		ConsultationFee: decimal.NewFromInt(fee),
		HospitalID:      hospitalID,
		Duration:        duration,
		Description:     description,
	}
}

func treatments() []entity.Treatment {
	return []entity.Treatment{
		// Apollo (H001)
		treatment("T001", "Heart Surgery", 3000, 500, "H001", "4-6 hours", "Advanced cardiac surgical procedures including bypass, valve replacement, and angioplasty."),
		treatment("T002", "Orthopedic Treatment", 2500, 500, "H001", "2-3 hours", "Joint replacement, fracture repair, and sports injury management."),
		treatment("T003", "General Consultation", 800, 500, "H001", "30 min", "Comprehensive health assessment by senior consultants."),
		treatment("T004", "Dental Treatment", 1500, 500, "H001", "1-2 hours", "Full dental care including root canal, implants, and orthodontics."),
		treatment("T005", "Eye Checkup", 1200, 500, "H001", "1 hour", "Comprehensive eye examination with advanced diagnostic tools."),
		treatment("T006", "Cancer Treatment", 8000, 500, "H001", "Varies", "Oncology consultations and chemotherapy sessions."),

		// Yashoda (H002)
		treatment("T007", "General Consultation", 700, 400, "H002", "30 min", "Expert general health consultation."),
		treatment("T008", "Heart Surgery", 2500, 400, "H002", "3-5 hours", "Cardiac care with expert cardiologists."),
		treatment("T009", "Kidney Treatment", 3500, 400, "H002", "Varies", "Dialysis, kidney stones, and renal care."),
		treatment("T010", "Orthopedic Treatment", 2000, 400, "H002", "2-3 hours", "Joint and bone treatment by experienced orthopedic team."),

		// KIMS (H003)
		treatment("T011", "Orthopedic Treatment", 2200, 350, "H003", "2-4 hours", "Minimally invasive orthopedic procedures."),
		treatment("T012", "Dental Treatment", 1200, 350, "H003", "1-2 hours", "Complete dental solutions."),
		treatment("T013", "Spine Surgery", 4000, 350, "H003", "3-5 hours", "Advanced spinal decompression and fusion surgeries."),
		treatment("T014", "General Consultation", 600, 350, "H003", "30 min", "Multi-specialty general consultations."),

		// Care (H004)
		treatment("T015", "Cancer Treatment", 9000, 450, "H004", "Varies", "State-of-the-art cancer diagnosis and treatment."),
		treatment("T016", "Heart Surgery", 2800, 450, "H004", "4-6 hours", "Expert cardiac care with advanced technology."),
		treatment("T017", "General Consultation", 750, 450, "H004", "30 min", "Multi-specialist consultation services."),

		// Manipal (H005)
		treatment("T018", "Heart Surgery", 4500, 700, "H005", "4-7 hours", "World-class cardiac surgery with latest robotics."),
		treatment("T019", "Cancer Treatment", 10000, 700, "H005", "Varies", "Comprehensive cancer care center."),
		treatment("T020", "General Consultation", 1000, 700, "H005", "45 min", "Premium specialist consultations."),
		treatment("T021", "Orthopedic Treatment", 3500, 700, "H005", "2-4 hours", "Advanced joint replacement and arthroscopy."),

		// Fortis (H006)
		treatment("T022", "Eye Checkup", 800, 400, "H006", "1 hour", "Laser eye treatment and cataract surgery."),
		treatment("T023", "Dental Treatment", 1000, 400, "H006", "1-2 hours", "Advanced dental care solutions."),
		treatment("T024", "Orthopedic Treatment", 2800, 400, "H006", "2-3 hours", "Sports medicine and joint replacement."),

		// Gleneagles (H007)
		treatment("T025", "Heart Surgery", 3200, 500, "H007", "4-6 hours", "Comprehensive cardiac care and surgery."),
		treatment("T026", "Kidney Treatment", 4000, 500, "H007", "Varies", "Advanced kidney care and transplant services."),
		treatment("T027", "General Consultation", 800, 500, "H007", "30 min", "Expert multi-specialty consultations."),

		// Kokilaben (H008)
		treatment("T028", "Cancer Treatment", 12000, 800, "H008", "Varies", "Cutting-edge oncology with proton therapy."),
		treatment("T029", "Heart Surgery", 5000, 800, "H008", "5-8 hours", "Robotic cardiac surgery and complex procedures."),
		treatment("T030", "Spine Surgery", 5500, 800, "H008", "4-6 hours", "Minimally invasive spine procedures."),
		treatment("T031", "General Consultation", 1200, 800, "H008", "45 min", "Premium specialist consultation."),
		treatment("T032", "Maternity & Delivery", 3500, 800, "H008", "Varies", "Complete maternity care with NICU support."),
	}
}

func reviews() []entity.Review {
	return []entity.Review{
		// Apollo
		{ID: "R001", PatientName: "Ravi Kumar", Rating: 5, Comment: "Very good hospital and experienced doctors. The staff was incredibly helpful and the facilities are world-class.", HospitalID: "H001", Date: "2024-12-10", Verified: true},
		{ID: "R002", PatientName: "Sneha Reddy", Rating: 4, Comment: "Good treatment and friendly staff. Waiting time could be reduced but overall excellent experience.", HospitalID: "H001", Date: "2024-11-22", Verified: true},
		{ID: "R003", PatientName: "Mohammed Ali", Rating: 5, Comment: "My heart surgery was successful. Dr. Rajesh Kumar is truly one of the best cardiologists I've met.", HospitalID: "H001", Date: "2024-10-05", Verified: true},
		{ID: "R004", PatientName: "Lakshmi Devi", Rating: 4, Comment: "Clean, professional, and modern facility. The pre-op and post-op care was exceptional.", HospitalID: "H001", Date: "2024-09-18", Verified: false},

		// Yashoda
		{ID: "R005", PatientName: "Arun Prasad", Rating: 5, Comment: "Excellent kidney treatment. The nephrology team is outstanding and very caring.", HospitalID: "H002", Date: "2024-12-01", Verified: true},
		{ID: "R006", PatientName: "Kavitha Singh", Rating: 4, Comment: "Good hospital. Doctors are knowledgeable and the nursing staff is very supportive.", HospitalID: "H002", Date: "2024-11-14", Verified: true},
		{ID: "R007", PatientName: "Suresh Babu", Rating: 4, Comment: "Comfortable rooms and attentive care. Had my bypass done here and recovered quickly.", HospitalID: "H002", Date: "2024-10-30", Verified: false},

		// KIMS
		{ID: "R008", PatientName: "Ramesh Naidu", Rating: 4, Comment: "Very good orthopedic department. My knee replacement surgery went smoothly.", HospitalID: "H003", Date: "2024-12-05", Verified: true},
		{ID: "R009", PatientName: "Geeta Rao", Rating: 5, Comment: "Outstanding dental treatment. Pain-free and very professional. Highly recommend!", HospitalID: "H003", Date: "2024-11-20", Verified: true},
		{ID: "R010", PatientName: "Vijay Kumar", Rating: 3, Comment: "Good doctors but long waiting times. The spine surgery results are great though.", HospitalID: "H003", Date: "2024-10-15", Verified: false},

		// Care Hospital
		{ID: "R011", PatientName: "Priya Nair", Rating: 5, Comment: "Best cancer care in Hyderabad. The oncology team is compassionate and highly skilled.", HospitalID: "H004", Date: "2024-12-08", Verified: true},
		{ID: "R012", PatientName: "Ashok Sharma", Rating: 4, Comment: "World-class facilities. The cardiac care unit is exceptional with dedicated nurses.", HospitalID: "H004", Date: "2024-11-18", Verified: true},

		// Manipal
		{ID: "R013", PatientName: "Deepa Krishnan", Rating: 5, Comment: "Manipal is truly world-class. My cardiac surgery with robotic assistance was flawless.", HospitalID: "H005", Date: "2024-12-12", Verified: true},
		{ID: "R014", PatientName: "Hari Prasad", Rating: 5, Comment: "Best hospital in Bangalore. The doctors and technology are simply unmatched.", HospitalID: "H005", Date: "2024-11-25", Verified: true},

		// Fortis
		{ID: "R015", PatientName: "Seema Joshi", Rating: 4, Comment: "Had cataract surgery and the results are wonderful. Very professional team.", HospitalID: "H006", Date: "2024-12-03", Verified: true},
		{ID: "R016", PatientName: "Rajendra Gupta", Rating: 4, Comment: "Good orthopedic department. My hip replacement recovery was smooth and fast.", HospitalID: "H006", Date: "2024-11-10", Verified: false},

		// Gleneagles
		{ID: "R017", PatientName: "Sunita Menon", Rating: 5, Comment: "Excellent liver transplant center. The team is dedicated and very experienced.", HospitalID: "H007", Date: "2024-12-15", Verified: true},
		{ID: "R018", PatientName: "Arjun Das", Rating: 4, Comment: "Very good cardiac care. Felt safe and well-cared for throughout my treatment.", HospitalID: "H007", Date: "2024-11-28", Verified: true},

		// Kokilaben
		{ID: "R019", PatientName: "Meenakshi Iyer", Rating: 5, Comment: "Kokilaben is the absolute best. The cancer treatment with proton therapy saved my life.", HospitalID: "H008", Date: "2024-12-18", Verified: true},
		{ID: "R020", PatientName: "Prakash Bhat", Rating: 5, Comment: "Robotic surgery was painless and recovery was fast. Unbeatable expertise here.", HospitalID: "H008", Date: "2024-12-02", Verified: true},
	}
}
