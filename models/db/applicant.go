package dbmodels

import (
	"fmt"
	"time"
)

// Applicant кандидат, откликнувшийся на вакансию
type Applicant struct {
	BaseModel
	FirstName  string `gorm:"type:varchar(255)"`
	LastName   string `gorm:"type:varchar(255)"`
	MiddleName string `gorm:"type:varchar(255)"`
	Phone      string `gorm:"type:varchar(255)"`
	Email      string `gorm:"type:varchar(255)"`
	Address    string
	BirthDate  time.Time
	Gender     string `gorm:"type:varchar(50)"`
}

func (a Applicant) GetFIO() string {
	if a.MiddleName == "" {
		return fmt.Sprintf("%s %s", a.LastName, a.FirstName)
	}
	return fmt.Sprintf("%s %s %s", a.LastName, a.FirstName, a.MiddleName)
}
