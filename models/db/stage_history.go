package dbmodels

import "time"

// StageHistory запись журнала этапов: одно посещение заявкой одного этапа.
// Не более одной активной записи на заявку; после деактивации запись
// не редактируется.
type StageHistory struct {
	BaseModel
	ApplicationID string       `gorm:"type:varchar(36);index"`
	Application   *Application `gorm:"foreignKey:ApplicationID"`
	StatusID      string       `gorm:"type:varchar(36);index"`
	Status        *Status      `gorm:"foreignKey:StatusID"`
	Score         *float64
	Notes         string
	ProcessedAt   time.Time  // момент входа на этап
	ScheduledAt   *time.Time // назначенное время собеседования
	ResourceURL   string     `gorm:"type:varchar(512)"` // ссылка на встречу
	CompletedAt   *time.Time // момент принятия решения по этапу
	ReviewerID    *string    `gorm:"type:varchar(36)"`
	Reviewer      *User      `gorm:"foreignKey:ReviewerID"`
	ReviewedAt    *time.Time
	IsActive      bool `gorm:"index"`
}
