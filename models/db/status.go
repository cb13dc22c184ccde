package dbmodels

import "recruitment-backend/models"

// Status справочник статусов отбора, заполняется при старте и не изменяется движком
type Status struct {
	BaseModel
	Code        models.StatusCode `gorm:"type:varchar(50);uniqueIndex"`
	Name        string            `gorm:"type:varchar(255)"`
	Stage       models.StageGroup `gorm:"type:varchar(50);index"`
	Description string
}
