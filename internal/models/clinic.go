package models

import "database/sql"

// DateLayout is the on-disk format of appointment dates
const DateLayout = "2006-01-02"

// Doctor is a seeded clinician available for booking
type Doctor struct {
	ID             int64  `gorm:"column:doctor_id;primaryKey"`
	Name           string `gorm:"column:name;not null"`
	Specialization string `gorm:"column:specialization"`
}

func (Doctor) TableName() string { return "doctors" }

// Patient is created once per booking; names are not deduplicated.
type Patient struct {
	ID    int64          `gorm:"column:patient_id;primaryKey"`
	Name  string         `gorm:"column:name;not null"`
	Phone sql.NullString `gorm:"column:phone"`
}

func (Patient) TableName() string { return "patients" }

// Appointment links one doctor and one patient on a calendar date
type Appointment struct {
	ID        int64   `gorm:"column:appointment_id;primaryKey"`
	DoctorID  int64   `gorm:"column:doctor_id;not null"`
	PatientID int64   `gorm:"column:patient_id;not null"`
	Date      string  `gorm:"column:appointment_date"`
	Doctor    Doctor  `gorm:"foreignKey:DoctorID;references:ID"`
	Patient   Patient `gorm:"foreignKey:PatientID;references:ID"`
}

func (Appointment) TableName() string { return "appointments" }

// AppointmentView is an appointment joined with its doctor and patient
type AppointmentView struct {
	AppointmentID        int64
	DoctorName           string
	DoctorSpecialization string
	PatientName          string
	Date                 string
}

// DefaultDoctors is the reference list inserted into an empty database
var DefaultDoctors = []Doctor{
	{Name: "Dr. Vinod kumar", Specialization: "Cardiology"},
	{Name: "Dr. Shaibi Mukerjee", Specialization: "Pediatrics"},
	{Name: "Dr. David Pandey", Specialization: "Orthopedics"},
	{Name: "Dr. Praveen Brown", Specialization: "Dermatology"},
	{Name: "Dr. Michael Pawar", Specialization: "Ophthalmology"},
}
