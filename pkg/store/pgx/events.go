package pgx

import (
	"context"

	"github.com/daralshefa/chatbot/backend/pkg/store"
)

func (s *DBStorage) InsertAppointment(ctx context.Context, params store.AppointmentParams) error {
	_, err := s.conn.Exec(ctx, `
		INSERT INTO appointments (user_id, patient_name, patient_phone, clinic_name)
		VALUES ($1, $2, $3, $4)
	`, params.UserID, params.PatientName, params.PatientPhone, params.ClinicName)
	return err
}

func (s *DBStorage) InsertInsuranceInquiry(ctx context.Context, params store.InsuranceInquiryParams) error {
	_, err := s.conn.Exec(ctx, `
		INSERT INTO insurance_inquiries (user_id, patient_name, patient_phone, insurance_company)
		VALUES ($1, $2, $3, $4)
	`, params.UserID, params.PatientName, params.PatientPhone, params.InsuranceCompany)
	return err
}

func (s *DBStorage) InsertMedicalApproval(ctx context.Context, params store.MedicalApprovalParams) error {
	_, err := s.conn.Exec(ctx, `
		INSERT INTO medical_approvals (user_id, identity_number, phone_number, request_date)
		VALUES ($1, $2, $3, $4)
	`, params.UserID, params.IdentityNumber, params.PhoneNumber, params.RequestDate)
	return err
}
