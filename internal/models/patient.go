package models

import (
	"fmt"
	"time"

	"github.com/caretrack/caretrack/internal/constants"
)

// Patient is a resident of the facility, keyed by room number.
type Patient struct {
	RoomNumber string `json:"room_number"`
	Name       string `json:"name"`
	Surname    string `json:"surname"`
	Notes      string `json:"notes,omitempty"`
	Photo      []byte `json:"photo,omitempty"`
	NationalID string `json:"national_id,omitempty"`
	BirthDate  string `json:"birth_date,omitempty"` // YYYY-MM-DD
	Phone      string `json:"phone,omitempty"`
}

func (p *Patient) Validate() error {
	if p.RoomNumber == "" {
		return fmt.Errorf("room number cannot be empty")
	}
	if p.Name == "" || p.Surname == "" {
		return fmt.Errorf("patient name and surname cannot be empty")
	}
	if p.BirthDate != "" {
		if _, err := time.Parse(constants.DateFormat, p.BirthDate); err != nil {
			return fmt.Errorf("invalid birth date (expected YYYY-MM-DD): %w", err)
		}
	}
	return nil
}

// DisplayName returns the "room - name surname" label used in lists and reminders.
func (p *Patient) DisplayName() string {
	return fmt.Sprintf("%s - %s %s", p.RoomNumber, p.Name, p.Surname)
}
