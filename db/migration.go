package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	dbmodels "recruitment-backend/models/db"
)

func AutoMigrateDB() error {
	log.Info("Запуск миграций")
	if err := AutoMigrate(DB); err != nil {
		return err
	}
	log.Info("Миграция прошла успешно")
	return nil
}

// AutoMigrate вызывается и из тестов на отдельном подключении
func AutoMigrate(database *gorm.DB) error {
	if err := database.AutoMigrate(&dbmodels.Status{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Status")
	}
	if err := database.AutoMigrate(&dbmodels.User{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры User")
	}
	if err := database.AutoMigrate(&dbmodels.Applicant{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Applicant")
	}
	if err := database.AutoMigrate(&dbmodels.QuestionPack{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры QuestionPack")
	}
	if err := database.AutoMigrate(&dbmodels.Question{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Question")
	}
	if err := database.AutoMigrate(&dbmodels.QuestionChoice{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры QuestionChoice")
	}
	if err := database.AutoMigrate(&dbmodels.Vacancy{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Vacancy")
	}
	if err := database.AutoMigrate(&dbmodels.Application{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Application")
	}
	if err := database.AutoMigrate(&dbmodels.ApplicantAnswer{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры ApplicantAnswer")
	}
	if err := database.AutoMigrate(&dbmodels.StageHistory{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры StageHistory")
	}
	if err := database.AutoMigrate(&dbmodels.ApplicationReport{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры ApplicationReport")
	}
	if err := database.AutoMigrate(&dbmodels.FileStorage{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры FileStorage")
	}
	return nil
}
