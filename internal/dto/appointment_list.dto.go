package dto

type AppointmentListDTO struct {
	ID                uint   `json:"id"`
	Date              string `json:"date"`
	Time              string `json:"time"`
	SessionType       string `json:"session_type"`
	OperationalStatus string `json:"operational_status"`
	ClinicalStatus    string `json:"clinical_status"`
	PatientName       string `json:"patient_name"`
	DoctorName        string `json:"doctor_name"`
}
