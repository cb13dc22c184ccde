package dbmodels

import (
	"fmt"
	"time"
)

// User сотрудник HR, принимающий решения по этапам отбора
type User struct {
	BaseModel
	FirstName   string `gorm:"type:varchar(150)"`
	LastName    string `gorm:"type:varchar(150)"`
	Email       string `gorm:"type:varchar(255)"`
	PhoneNumber string `gorm:"type:varchar(15)"`
	IsActive    bool
	LastLogin   time.Time
}

func (r User) GetFullName() string {
	return fmt.Sprintf("%s %s", r.FirstName, r.LastName)
}
