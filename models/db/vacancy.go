package dbmodels

import "time"

// Vacancy вакансия с периодом набора; кандидат подает одну заявку на период
type Vacancy struct {
	BaseModel
	VacancyName    string `gorm:"type:varchar(255)"`
	CompanyName    string `gorm:"type:varchar(255)"`
	PeriodStart    time.Time
	PeriodEnd      time.Time
	QuestionPackID *string       `gorm:"type:varchar(36)"`
	QuestionPack   *QuestionPack `gorm:"foreignKey:QuestionPackID"`
}
