package postgres

import (
	"database/sql"
	"fmt"

	"github.com/caretrack/caretrack/internal/models"
)

const patientColumns = "room_number, name, surname, notes, photo, national_id, birth_date, phone"

func scanPatient(row interface{ Scan(...any) error }) (models.Patient, error) {
	var p models.Patient
	var notes, nationalID, birthDate, phone sql.NullString
	err := row.Scan(&p.RoomNumber, &p.Name, &p.Surname, &notes, &p.Photo, &nationalID, &birthDate, &phone)
	if err != nil {
		return models.Patient{}, err
	}
	p.Notes = notes.String
	p.NationalID = nationalID.String
	p.BirthDate = birthDate.String
	p.Phone = phone.String
	return p, nil
}

func (s *Store) AddPatient(p models.Patient) error {
	_, err := s.db.Exec(`
		INSERT INTO patients (`+patientColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (room_number) DO UPDATE SET
			name = EXCLUDED.name, surname = EXCLUDED.surname, notes = EXCLUDED.notes,
			photo = EXCLUDED.photo, national_id = EXCLUDED.national_id,
			birth_date = EXCLUDED.birth_date, phone = EXCLUDED.phone`,
		p.RoomNumber, p.Name, p.Surname, p.Notes, p.Photo, p.NationalID, p.BirthDate, p.Phone)
	return err
}

func (s *Store) UpdatePatient(p models.Patient) error {
	return s.AddPatient(p)
}

func (s *Store) GetPatient(roomNumber string) (models.Patient, error) {
	row := s.db.QueryRow("SELECT "+patientColumns+" FROM patients WHERE room_number = $1", roomNumber)
	return scanPatient(row)
}

func (s *Store) GetAllPatients() ([]models.Patient, error) {
	return s.queryPatients("SELECT " + patientColumns + " FROM patients ORDER BY room_number")
}

func (s *Store) GetArchivedPatients() ([]models.Patient, error) {
	return s.queryPatients("SELECT " + patientColumns + " FROM archive_patients ORDER BY room_number")
}

func (s *Store) queryPatients(query string, args ...any) ([]models.Patient, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var patients []models.Patient
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, err
		}
		patients = append(patients, p)
	}
	return patients, rows.Err()
}

func (s *Store) ArchivePatient(roomNumber string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`
		INSERT INTO archive_patients (`+patientColumns+`)
		SELECT `+patientColumns+` FROM patients WHERE room_number = $1
		ON CONFLICT (room_number) DO NOTHING`, roomNumber); err != nil {
		return fmt.Errorf("archiving patient %s: %w", roomNumber, err)
	}
	if _, err := tx.Exec("DELETE FROM patients WHERE room_number = $1", roomNumber); err != nil {
		return err
	}

	if _, err := tx.Exec(`
		INSERT INTO archive_tasks (room_number, description, time, date, end_date, time_type)
		SELECT room_number, description, time, date, end_date, time_type
		FROM tasks WHERE room_number = $1`, roomNumber); err != nil {
		return fmt.Errorf("archiving tasks for room %s: %w", roomNumber, err)
	}
	if _, err := tx.Exec("DELETE FROM tasks WHERE room_number = $1", roomNumber); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *Store) RestorePatient(roomNumber string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		INSERT INTO patients (`+patientColumns+`)
		SELECT `+patientColumns+` FROM archive_patients WHERE room_number = $1
		ON CONFLICT (room_number) DO NOTHING`, roomNumber)
	if err != nil {
		return fmt.Errorf("restoring patient %s: %w", roomNumber, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("no archived patient with room number %s", roomNumber)
	}
	if _, err := tx.Exec("DELETE FROM archive_patients WHERE room_number = $1", roomNumber); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *Store) DeleteArchivedPatient(roomNumber string) error {
	_, err := s.db.Exec("DELETE FROM archive_patients WHERE room_number = $1", roomNumber)
	return err
}
