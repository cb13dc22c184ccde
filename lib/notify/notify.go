package notify

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"recruitment-backend/config"
	"recruitment-backend/lib/smtp"
	dbmodels "recruitment-backend/models/db"
)

// StageDecided уведомляет кандидата о смене статуса заявки.
// Вызывается после фиксации транзакции, ошибка отправки
// на результат перехода не влияет.
func StageDecided(application dbmodels.Application) {
	logger := log.WithField("application_id", application.ID)
	if smtp.Instance == nil || config.Conf == nil {
		logger.Debug("уведомление кандидату не отправлено, smtp не инициализирован")
		return
	}
	if application.Applicant == nil || application.Applicant.Email == "" {
		logger.Warn("уведомление кандидату не отправлено, нет адреса почты")
		return
	}
	if application.Status == nil {
		return
	}
	vacancyName := ""
	if application.Vacancy != nil {
		vacancyName = application.Vacancy.VacancyName
	}
	subject := "изменение статуса заявки"
	message := fmt.Sprintf("Статус вашей заявки на вакансию %q изменен: %s", vacancyName, application.Status.Name)
	err := smtp.Instance.SendEMail(config.Conf.Smtp.From, application.Applicant.Email, message, subject)
	if err != nil {
		logger.WithError(err).Error("ошибка отправки уведомления кандидату")
	}
}
