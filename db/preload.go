package db

import (
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"recruitment-backend/models"
	dbmodels "recruitment-backend/models/db"
)

func InitPreload() {
	fillStatuses(DB)
}

type seedStatus struct {
	code        models.StatusCode
	name        string
	stage       models.StageGroup
	description string
}

var seedStatuses = []seedStatus{
	{models.StatusAdminSelection, "Административный отбор", models.StageGroupAdministrative, "проверка документов и анкеты кандидата"},
	{models.StatusPsychotest, "Тестирование", models.StageGroupPsychological, "психологическое или профессиональное тестирование"},
	{models.StatusInterview, "Собеседование", models.StageGroupInterview, "интервью с кандидатом"},
	{models.StatusAccepted, "Одобрен", models.StageGroupTerminal, "кандидат одобрен по итогам отчета"},
	{models.StatusRejected, "Отклонен", models.StageGroupTerminal, "кандидат отклонен"},
	{models.StatusHired, "Принят", models.StageGroupTerminal, "кандидат принят на работу"},
	{models.StatusCompleted, "Завершен", models.StageGroupTerminal, "отбор по заявке завершен"},
}

// FillStatuses добавляет недостающие статусы справочника.
// Вызывается и из тестов на отдельном подключении, поэтому принимает БД.
func FillStatuses(database *gorm.DB) error {
	for _, seed := range seedStatuses {
		var count int64
		err := database.
			Model(&dbmodels.Status{}).
			Where("code = ?", seed.code).
			Count(&count).
			Error
		if err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		rec := dbmodels.Status{
			Code:        seed.code,
			Name:        seed.name,
			Stage:       seed.stage,
			Description: seed.description,
		}
		if err = database.Create(&rec).Error; err != nil {
			return err
		}
	}
	return nil
}

func fillStatuses(database *gorm.DB) {
	if err := FillStatuses(database); err != nil {
		log.WithError(err).Error("ошибка заполнения справочника статусов")
	}
}
