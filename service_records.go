package console

import (
	"context"
)

// RecordService turns the flat medical file list of the backend into the
// per-patient view.
type RecordService interface {
	GetMedicalRecords(ctx context.Context) []MedicalRecord
}

type recordService struct {
	client HospitalClient
}

func NewRecordService(client HospitalClient) RecordService {
	return &recordService{
		client: client,
	}
}

func (s *recordService) GetMedicalRecords(ctx context.Context) []MedicalRecord {
	return GroupFilesByPatient(s.client.GetMedicalRecords(ctx))
}

// GroupFilesByPatient groups flat file entries by their resolved patient
// identifier. Entries without a resolvable identifier land in the sentinel
// unknown bucket instead of being dropped. Files keep input order, records
// keep the order of each patient's first appearance, and MostRecentUpdate is
// the maximum upload date seen in the group. Running it twice on the same
// input yields the identical grouping.
func GroupFilesByPatient(entries []MedicalFileEntry) []MedicalRecord {
	groups := make(map[string]*MedicalRecord, len(entries))
	order := make([]string, 0, len(entries))

	for _, entry := range entries {
		patientID := ResolvePatientID(entry)
		if patientID == "" {
			patientID = UnknownPatientID
		}

		group, ok := groups[patientID]
		if !ok {
			group = &MedicalRecord{
				PatientID:   patientID,
				PatientName: placeholderPatientName(patientID),
				Files:       []RecordFile{},
			}
			groups[patientID] = group
			order = append(order, patientID)
		}

		if group.PatientName == placeholderPatientName(patientID) {
			if patientName, ok := ResolveField(entry, patientNameAliases); ok {
				group.PatientName = patientName
			}
		}

		file := NormalizeFileEntry(entry)
		group.Files = append(group.Files, file)

		// upload dates are normalized ISO strings, so string order is date order
		if file.UploadDate > group.MostRecentUpdate {
			group.MostRecentUpdate = file.UploadDate
		}
	}

	records := make([]MedicalRecord, 0, len(order))
	for _, patientID := range order {
		records = append(records, *groups[patientID])
	}
	return records
}

func placeholderPatientName(patientID string) string {
	if patientID == UnknownPatientID {
		return "Unknown patient"
	}
	shortID := patientID
	if len(shortID) > 6 {
		shortID = shortID[:6]
	}
	return "Patient " + shortID
}
