// Package seed provides the pre-loaded local catalog served when the upstream
// backend is unavailable. Every function returns a fresh copy.
package seed

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"vitalsync/internal/domain/entity"
)

func Doctors() []entity.Doctor {
	return []entity.Doctor{
		{
			ID: "elena-vargas", Name: "Dr. Elena Vargas", Specialty: "Cardiología", CMP: "CMP 654321",
			Rating: 4.6, RatingCount: 123, Location: "Lima, Miraflores",
			Insurances: []entity.InsuranceProvider{entity.InsuranceSIS, entity.InsurancePrivado},
			ImageURL:   "/images/doctors/elena-vargas.jpg",
		},
		{
			ID: "carlos-mendoza", Name: "Dr. Carlos Mendoza", Specialty: "Dermatología", CMP: "CMP 123456",
			Rating: 4.9, RatingCount: 98, Location: "Lima, San Isidro",
			Insurances: []entity.InsuranceProvider{entity.InsuranceEsSalud, entity.InsurancePrivado},
			ImageURL:   "/images/doctors/carlos-mendoza.jpg",
		},
		{
			ID: "sofia-quispe", Name: "Dra. Sofia Quispe", Specialty: "Pediatría", CMP: "CMP 789012",
			Rating: 4.4, RatingCount: 150, Location: "Arequipa",
			Insurances: []entity.InsuranceProvider{entity.InsuranceSIS},
			ImageURL:   "/images/doctors/sofia-quispe.jpg",
		},
		{
			ID: "javier-torres", Name: "Dr. Javier Torres", Specialty: "Ginecología", CMP: "CMP 456789",
			Rating: 5, RatingCount: 85, Location: "Cusco",
			Insurances: []entity.InsuranceProvider{entity.InsurancePrivado},
			ImageURL:   "/images/doctors/javier-torres.jpg",
		},
		{
			ID: "ana-flores", Name: "Dra. Ana Flores", Specialty: "Cardiología", CMP: "CMP 234567",
			Rating: 4.3, RatingCount: 110, Location: "Lima, Miraflores",
			Insurances: []entity.InsuranceProvider{entity.InsuranceEsSalud},
			ImageURL:   "/images/doctors/ana-flores.jpg",
		},
		{
			ID: "luis-garcia", Name: "Dr. Luis Garcia", Specialty: "Dermatología", CMP: "CMP 345678",
			Rating: 4.2, RatingCount: 72, Location: "Lima, San Isidro",
			Insurances: []entity.InsuranceProvider{entity.InsuranceSIS, entity.InsurancePrivado},
			ImageURL:   "/images/doctors/luis-garcia.jpg",
		},
	}
}

// DoctorProfiles returns one profile per seeded doctor.
func DoctorProfiles() []entity.DoctorProfile {
	doctors := Doctors()
	profiles := make([]entity.DoctorProfile, 0, len(doctors))
	for i, d := range doctors {
		second := "Quechua"
		if i%2 == 0 {
			second = "Inglés"
		}
		profiles = append(profiles, entity.DoctorProfile{
			DoctorID:        d.ID,
			Bio:             "Especialista con amplia trayectoria brindando atención cercana y personalizada a pacientes de todo el país.",
			YearsExperience: 10 + i,
			Languages:       []string{"Español", second},
			Education:       "Universidad Nacional Mayor de San Marcos",
			ClinicAddress:   d.Location,
			Schedule: []entity.ScheduleDay{
				{Day: "Lunes", Slots: []string{"09:00", "11:00", "15:00"}},
				{Day: "Miércoles", Slots: []string{"10:00", "16:00"}},
				{Day: "Viernes"},
			},
		})
	}
	return profiles
}

// DoctorReviews returns the seeded reviews, newest first per doctor.
func DoctorReviews() []entity.DoctorReview {
	var reviews []entity.DoctorReview
	for _, d := range Doctors() {
		reviews = append(reviews,
			entity.DoctorReview{
				ID:         fmt.Sprintf("%s-review-2", d.ID),
				DoctorID:   d.ID,
				AuthorName: "Luis Fernández",
				Rating:     4,
				Comment:    "Muy profesional, aunque la espera fue larga.",
				CreatedAt:  time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC),
			},
			entity.DoctorReview{
				ID:         fmt.Sprintf("%s-review-1", d.ID),
				DoctorID:   d.ID,
				AuthorName: "María Gómez",
				Rating:     5,
				Comment:    "Excelente atención, explica todo con paciencia.",
				CreatedAt:  time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC),
			},
		)
	}
	return reviews
}

func price(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

func Medicines() []entity.Medicine {
	return []entity.Medicine{
		{
			ID:           "paracetamol-500",
			Name:         "Paracetamol 500mg",
			Presentation: "Caja con 20 tabletas",
			Description:  "Analgesico y antipiretico de accion rapida.",
			Category:     "generic",
			Highlight:    "Analgésico y antipirético",
			Pharmacies: []entity.PharmacyPrice{
				{PharmacyID: "similares", Name: "Farmacias Similares", DistanceKm: 2.5, Price: price("30"), Status: entity.PharmacyPromo},
				{PharmacyID: "ahorro", Name: "Farmacia del Ahorro", DistanceKm: 1.2, Price: price("35"), Status: entity.PharmacyAvailable},
				{PharmacyID: "san-pablo", Name: "Farmacia San Pablo", DistanceKm: 4.1, Status: entity.PharmacyOutOfStock},
			},
		},
		{
			ID:           "tempra-forte-650",
			Name:         "Tempra Forte 650mg",
			Presentation: "Caja con 24 tabletas",
			Description:  "Principio activo: Paracetamol",
			Category:     "brand",
			Pharmacies: []entity.PharmacyPrice{
				{PharmacyID: "ahorro", Name: "Farmacia del Ahorro", DistanceKm: 1.2, Price: price("68.5"), Status: entity.PharmacyAvailable},
				{PharmacyID: "san-pablo", Name: "Farmacia San Pablo", DistanceKm: 4.1, Price: price("72"), Status: entity.PharmacyAvailable},
				{PharmacyID: "similares", Name: "Farmacias Similares", DistanceKm: 2.5, Status: entity.PharmacyUnavailable},
			},
		},
	}
}

func EmergencyCenters() []entity.EmergencyCenter {
	return []entity.EmergencyCenter{
		{
			ID: "rebagliati", Name: "Hospital Nacional Edgardo Rebagliati Martins",
			Address: "Av. Edgardo Rebagliati 490", District: "Jesús María",
			Latitude: -12.0793, Longitude: -77.0405, Phone: "(01) 265-4901",
			AvailableBeds: 12, WaitTimeMinutes: 45, Tags: []string{"EsSalud", "24h"},
		},
		{
			ID: "dos-de-mayo", Name: "Hospital Nacional Dos de Mayo",
			Address: "Parque Historia de la Medicina Peruana s/n", District: "Cercado de Lima",
			Latitude: -12.0565, Longitude: -77.0157, Phone: "(01) 328-0028",
			AvailableBeds: 6, WaitTimeMinutes: 60, Tags: []string{"MINSA", "24h"},
		},
		{
			ID: "clinica-ricardo-palma", Name: "Clínica Ricardo Palma",
			Address: "Av. Javier Prado Este 1066", District: "San Isidro",
			Latitude: -12.0910, Longitude: -77.0225, Phone: "(01) 224-2224",
			AvailableBeds: 9, WaitTimeMinutes: 20, Tags: []string{"Privado"},
		},
		{
			ID: "honorio-delgado", Name: "Hospital Regional Honorio Delgado",
			Address: "Av. Daniel Alcides Carrión 505", District: "Arequipa",
			Latitude: -16.4040, Longitude: -71.5245, Phone: "(054) 231-818",
			AvailableBeds: 4, WaitTimeMinutes: 35, Tags: []string{"MINSA"},
		},
	}
}

func Locations() []entity.UserLocation {
	return []entity.UserLocation{
		{
			ID: "home", Label: "Casa", AddressLine: "Av. Siempre Viva 742",
			Latitude: -12.046374, Longitude: -77.042793, Tag: entity.LocationHome, IsPrimary: true,
		},
		{
			ID: "office", Label: "Oficina", AddressLine: "Calle Falsa 123",
			Latitude: -12.051234, Longitude: -77.035612, Tag: entity.LocationOffice,
		},
	}
}
