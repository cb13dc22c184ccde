package dbmodels

import (
	"time"

	"recruitment-backend/models"
)

// ApplicationReport итоговый отчет по заявке, создается агрегатором
// когда собраны оценки всех трех этапов
type ApplicationReport struct {
	BaseModel
	ApplicationID   string       `gorm:"type:varchar(36);uniqueIndex"`
	Application     *Application `gorm:"foreignKey:ApplicationID"`
	OverallScore    float64
	FinalDecision   models.FinalDecision `gorm:"type:varchar(20);index"`
	FinalNotes      string
	DecisionMakerID *string `gorm:"type:varchar(36)"`
	DecisionMaker   *User   `gorm:"foreignKey:DecisionMakerID"`
	DecisionMadeAt  *time.Time
}
