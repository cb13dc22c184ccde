package selection

import (
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"recruitment-backend/db"
	applicationstore "recruitment-backend/lib/application/store"
	"recruitment-backend/lib/notify"
	"recruitment-backend/lib/report"
	"recruitment-backend/lib/scoring"
	stagehistorystore "recruitment-backend/lib/stage-history/store"
	statuscatalog "recruitment-backend/lib/status-catalog"
	"recruitment-backend/models"
	selectionapimodels "recruitment-backend/models/api/selection"
	dbmodels "recruitment-backend/models/db"
)

type Provider interface {
	Decide(applicationID string, stage models.SelectionStage, decision selectionapimodels.Decision, reviewerID string) (selectionapimodels.ApplicationView, error)
	Approve(applicationID string, decision selectionapimodels.Decision, reviewerID string) (selectionapimodels.ApplicationView, error)
	Reject(applicationID, notes, reviewerID string) (selectionapimodels.ApplicationView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		catalog:  statuscatalog.Instance,
		scoring:  scoring.Instance,
		report:   report.Instance,
		appStore: applicationstore.NewInstance(db.DB),
	}
}

type impl struct {
	catalog  statuscatalog.Provider
	scoring  scoring.Provider
	report   report.Provider
	appStore applicationstore.Provider
}

func (i impl) getLogger(applicationID string, stage models.SelectionStage, reviewerID string) *log.Entry {
	return log.
		WithField("application_id", applicationID).
		WithField("stage", stage).
		WithField("reviewer_id", reviewerID)
}

// Decide решение ревьюера по этапу отбора. Шаги с чтения активной записи
// журнала до открытия следующего этапа выполняются в одной транзакции,
// любая ошибка откатывает все изменения целиком.
func (i impl) Decide(applicationID string, stage models.SelectionStage, decision selectionapimodels.Decision, reviewerID string) (selectionapimodels.ApplicationView, error) {
	logger := i.getLogger(applicationID, stage, reviewerID)
	if stage == models.StageFinal {
		return i.decideFinal(applicationID, decision, reviewerID)
	}
	desc, ok := statuscatalog.DescriptorByStage(stage)
	if !ok {
		return selectionapimodels.ApplicationView{}, models.NewValidationError("неизвестный этап отбора: %v", stage)
	}
	if err := validateDecision(desc, decision); err != nil {
		return selectionapimodels.ApplicationView{}, err
	}
	stageStatus, err := i.catalog.FindByCode(desc.StatusCode)
	if err != nil {
		logger.WithError(err).Error("ошибка получения статуса этапа")
		return selectionapimodels.ApplicationView{}, err
	}
	application, err := i.appStore.GetByID(applicationID)
	if err != nil {
		logger.WithError(err).Error("ошибка получения заявки")
		return selectionapimodels.ApplicationView{}, errors.New("ошибка получения заявки")
	}
	if application == nil {
		return selectionapimodels.ApplicationView{}, errors.New("заявка не найдена")
	}

	var score *float64
	if decision.Result == string(models.ResultPass) {
		score, err = i.effectiveScore(desc, *application, decision)
		if err != nil {
			return selectionapimodels.ApplicationView{}, err
		}
	} else if decision.Score != nil {
		score = decision.Score
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		historyStore := stagehistorystore.NewInstance(tx)
		active, err := historyStore.GetActive(applicationID)
		if err != nil {
			return err
		}
		if active == nil {
			return errors.Wrap(models.ErrInconsistentState, "активная запись журнала не найдена")
		}
		if active.StatusID != stageStatus.ID {
			return errors.Wrapf(models.ErrInconsistentState, "активный этап заявки не совпадает с этапом решения: %v", stage)
		}
		closed, err := historyStore.CloseStage(active.ID, closeMap(score, decision.Notes, reviewerID))
		if err != nil {
			return err
		}
		if !closed {
			return errors.Wrap(models.ErrInconsistentState, "запись журнала уже закрыта параллельным решением")
		}
		if decision.Result == string(models.ResultReject) {
			rejected, err := i.catalog.FindByCode(models.StatusRejected)
			if err != nil {
				return err
			}
			return applicationstore.NewInstance(tx).SetStatus(applicationID, rejected.ID)
		}
		return i.advance(tx, desc, applicationID, decision)
	})
	if err != nil {
		logger.WithError(err).Error("переход заявки на следующий этап не выполнен")
		return selectionapimodels.ApplicationView{}, err
	}
	logger.WithField("result", decision.Result).Info("решение по этапу принято")
	return i.applicationView(applicationID, logger)
}

// advance открывает следующий этап либо передает заявку агрегатору,
// когда пройден последний рабочий этап
func (i impl) advance(tx *gorm.DB, desc statuscatalog.StageDescriptor, applicationID string, decision selectionapimodels.Decision) error {
	if desc.Next == "" {
		_, err := i.report.TryFinalize(tx, applicationID)
		return err
	}
	nextDesc, ok := statuscatalog.DescriptorByStage(desc.Next)
	if !ok {
		return errors.Errorf("не найдено описание этапа: %v", desc.Next)
	}
	nextStatus, err := i.catalog.FindByCode(nextDesc.StatusCode)
	if err != nil {
		return err
	}
	historyStore := stagehistorystore.NewInstance(tx)
	// страховка инварианта одной активной записи на случай сбоев прошлых переходов
	if err = historyStore.DeactivateAllExcept(applicationID, ""); err != nil {
		return err
	}
	rec := dbmodels.StageHistory{
		ApplicationID: applicationID,
		StatusID:      nextStatus.ID,
		ProcessedAt:   time.Now(),
		IsActive:      true,
	}
	// данные о встрече переносятся только при переходе на собеседование
	if desc.Stage == models.StagePsychotest && nextDesc.Stage == models.StageInterview {
		rec.ScheduledAt = decision.ScheduledAt
		rec.ResourceURL = decision.ResourceURL
	}
	if _, err = historyStore.Create(rec); err != nil {
		return err
	}
	return applicationstore.NewInstance(tx).SetStatus(applicationID, nextStatus.ID)
}

// effectiveScore итоговая оценка закрываемого этапа. Для тестирования
// оценку дает движок оценки; при ручном режиме без введенной оценки
// переход прерывается целиком, молчаливого нуля не бывает.
func (i impl) effectiveScore(desc statuscatalog.StageDescriptor, application dbmodels.Application, decision selectionapimodels.Decision) (*float64, error) {
	if desc.Stage != models.StagePsychotest {
		return decision.Score, nil
	}
	result, err := i.scoring.ScoreFor(application)
	if err != nil {
		log.WithError(err).
			WithField("application_id", application.ID).
			Error("ошибка вычисления оценки тестирования")
		return nil, errors.New("ошибка вычисления оценки тестирования")
	}
	if result.Mode == models.ScoringModeManual {
		if decision.Score == nil {
			return nil, models.NewValidationError("для данного типа теста требуется оценка ревьюера")
		}
		if *decision.Score < 0 || *decision.Score > 100 {
			return nil, models.NewValidationError("оценка тестирования должна быть в диапазоне 0-100")
		}
		return decision.Score, nil
	}
	value := result.Value
	return &value, nil
}

// decideFinal финальный псевдоэтап со страницы отчетов: статус принят/отклонен
// проставляется напрямую, минуя последовательность этапов
func (i impl) decideFinal(applicationID string, decision selectionapimodels.Decision, reviewerID string) (selectionapimodels.ApplicationView, error) {
	logger := i.getLogger(applicationID, models.StageFinal, reviewerID)
	statusCode := models.StatusHired
	if decision.Result == string(models.ResultReject) {
		if decision.Notes == "" {
			return selectionapimodels.ApplicationView{}, models.NewValidationError("при отклонении требуется комментарий")
		}
		statusCode = models.StatusRejected
	} else if decision.Result != string(models.ResultPass) {
		return selectionapimodels.ApplicationView{}, models.NewValidationError("не указано решение по заявке")
	}
	status, err := i.catalog.FindByCode(statusCode)
	if err != nil {
		logger.WithError(err).Error("ошибка получения финального статуса")
		return selectionapimodels.ApplicationView{}, err
	}
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		historyStore := stagehistorystore.NewInstance(tx)
		// защита от двойной финализации: прежние активные записи гасятся
		if err := historyStore.DeactivateAllExcept(applicationID, ""); err != nil {
			return err
		}
		now := time.Now()
		rec := dbmodels.StageHistory{
			ApplicationID: applicationID,
			StatusID:      status.ID,
			Notes:         decision.Notes,
			ProcessedAt:   now,
			CompletedAt:   &now,
			ReviewerID:    &reviewerID,
			ReviewedAt:    &now,
			IsActive:      false,
		}
		if _, err := historyStore.Create(rec); err != nil {
			return err
		}
		return applicationstore.NewInstance(tx).SetStatus(applicationID, status.ID)
	})
	if err != nil {
		logger.WithError(err).Error("финальное решение по заявке не выполнено")
		return selectionapimodels.ApplicationView{}, err
	}
	logger.WithField("status", statusCode).Info("проставлен финальный статус заявки")
	return i.applicationView(applicationID, logger)
}

// Approve унаследованная точка входа: этап определяется
// по текущему статусу заявки
func (i impl) Approve(applicationID string, decision selectionapimodels.Decision, reviewerID string) (selectionapimodels.ApplicationView, error) {
	stage, err := i.stageByCurrentStatus(applicationID)
	if err != nil {
		return selectionapimodels.ApplicationView{}, err
	}
	decision.Result = string(models.ResultPass)
	return i.Decide(applicationID, stage, decision, reviewerID)
}

// Reject унаследованная точка входа: отклонение с текущего этапа
func (i impl) Reject(applicationID, notes, reviewerID string) (selectionapimodels.ApplicationView, error) {
	stage, err := i.stageByCurrentStatus(applicationID)
	if err != nil {
		return selectionapimodels.ApplicationView{}, err
	}
	decision := selectionapimodels.Decision{
		Result: string(models.ResultReject),
		Notes:  notes,
	}
	return i.Decide(applicationID, stage, decision, reviewerID)
}

func (i impl) stageByCurrentStatus(applicationID string) (models.SelectionStage, error) {
	application, err := i.appStore.GetByID(applicationID)
	if err != nil {
		log.WithError(err).
			WithField("application_id", applicationID).
			Error("ошибка получения заявки")
		return "", errors.New("ошибка получения заявки")
	}
	if application == nil {
		return "", errors.New("заявка не найдена")
	}
	if application.Status == nil {
		return "", errors.Wrap(models.ErrInconsistentState, "у заявки отсутствует статус")
	}
	stage, ok := statuscatalog.StageByStatusCode(application.Status.Code)
	if !ok {
		return "", models.NewValidationError("решение недоступно для статуса заявки: %v", application.Status.Code)
	}
	return stage, nil
}

func (i impl) applicationView(applicationID string, logger *log.Entry) (selectionapimodels.ApplicationView, error) {
	application, err := i.appStore.GetByID(applicationID)
	if err != nil || application == nil {
		logger.WithError(err).Error("ошибка получения заявки после перехода")
		return selectionapimodels.ApplicationView{}, errors.New("ошибка получения заявки после перехода")
	}
	go notify.StageDecided(*application)
	return selectionapimodels.ConvertApplication(*application), nil
}

func closeMap(score *float64, notes, reviewerID string) map[string]interface{} {
	now := time.Now()
	updMap := map[string]interface{}{
		"notes":        notes,
		"completed_at": now,
		"reviewer_id":  reviewerID,
		"reviewed_at":  now,
		"is_active":    false,
	}
	if score != nil {
		updMap["score"] = *score
	}
	return updMap
}

func validateDecision(desc statuscatalog.StageDescriptor, decision selectionapimodels.Decision) error {
	switch decision.Result {
	case string(models.ResultPass):
		if desc.ScoreRequired {
			if decision.Score == nil {
				return models.NewValidationError("для прохождения этапа требуется оценка")
			}
			if *decision.Score < desc.MinPassScore || *decision.Score > desc.MaxPassScore {
				return models.NewValidationError("оценка этапа должна быть в диапазоне %v-%v", desc.MinPassScore, desc.MaxPassScore)
			}
		}
	case string(models.ResultReject):
		if decision.Notes == "" {
			return models.NewValidationError("при отклонении требуется комментарий")
		}
	default:
		return models.NewValidationError("не указано решение по этапу")
	}
	return nil
}
