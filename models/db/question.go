package dbmodels

import "recruitment-backend/models"

// QuestionPack пакет вопросов вакансии. Способ оценки фиксируется
// при создании пакета по типу теста и дальше не переклассифицируется.
type QuestionPack struct {
	BaseModel
	Name        string             `gorm:"type:varchar(255)"`
	TestType    string             `gorm:"type:varchar(50)"`
	ScoringMode models.ScoringMode `gorm:"type:varchar(20)"`
}

type Question struct {
	BaseModel
	QuestionPackID string        `gorm:"type:varchar(36);index"`
	QuestionPack   *QuestionPack `gorm:"foreignKey:QuestionPackID"`
	Text           string
}

type QuestionChoice struct {
	BaseModel
	QuestionID string    `gorm:"type:varchar(36);index"`
	Question   *Question `gorm:"foreignKey:QuestionID"`
	Text       string
	IsCorrect  bool
}

// ApplicantAnswer выбранный кандидатом вариант ответа.
// Движок оценки только читает ответы, запись вне его компетенции.
type ApplicantAnswer struct {
	BaseModel
	ApplicationID string          `gorm:"type:varchar(36);index"`
	QuestionID    string          `gorm:"type:varchar(36)"`
	ChoiceID      *string         `gorm:"type:varchar(36)"`
	Choice        *QuestionChoice `gorm:"foreignKey:ChoiceID"`
}
