package report

import (
	"math"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"recruitment-backend/db"
	applicationstore "recruitment-backend/lib/application/store"
	reportstore "recruitment-backend/lib/report/store"
	stagehistorystore "recruitment-backend/lib/stage-history/store"
	statuscatalog "recruitment-backend/lib/status-catalog"
	"recruitment-backend/models"
	reportapimodels "recruitment-backend/models/api/report"
	dbmodels "recruitment-backend/models/db"
)

type Provider interface {
	// TryFinalize вызывается движком переходов внутри его транзакции
	TryFinalize(tx *gorm.DB, applicationID string) (reportapimodels.FinalizeResult, error)
	FinalizeDecision(applicationID string, decision models.FinalDecision, notes, deciderID string) (reportapimodels.ReportView, error)
	GetByApplication(applicationID string) (reportapimodels.ReportView, error)
	List() ([]dbmodels.ApplicationReport, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		catalog: statuscatalog.Instance,
	}
}

type impl struct {
	catalog statuscatalog.Provider
}

// TryFinalize собирает последние оценки трех этапов. Если хотя бы одной
// нет — отчет не создается, заявка остается на этапе собеседования,
// это не ошибка.
func (i impl) TryFinalize(tx *gorm.DB, applicationID string) (reportapimodels.FinalizeResult, error) {
	historyStore := stagehistorystore.NewInstance(tx)
	scores := make([]float64, 0, 3)
	for _, code := range statuscatalog.StageCodes() {
		rec, err := historyStore.LastScoredByStatus(applicationID, code)
		if err != nil {
			return reportapimodels.FinalizeResult{}, err
		}
		if rec == nil || rec.Score == nil {
			log.WithField("application_id", applicationID).
				WithField("status_code", code).
				Info("оценка этапа еще не получена, отчет не сформирован")
			return reportapimodels.FinalizeResult{}, nil
		}
		scores = append(scores, *rec.Score)
	}
	overall := round2(mean(scores))
	if err := i.upsertPending(tx, applicationID, overall); err != nil {
		return reportapimodels.FinalizeResult{}, err
	}
	log.WithField("application_id", applicationID).
		WithField("overall_score", overall).
		Info("сформирован отчет по заявке, ожидается финальное решение")
	return reportapimodels.FinalizeResult{
		Finalized:    true,
		OverallScore: &overall,
	}, nil
}

// upsertPending создает или обновляет отчет, сбрасывая устаревшее решение
func (i impl) upsertPending(tx *gorm.DB, applicationID string, overall float64) error {
	store := reportstore.NewInstance(tx)
	existed, err := store.GetByApplication(applicationID)
	if err != nil {
		return err
	}
	if existed == nil {
		rec := dbmodels.ApplicationReport{
			ApplicationID: applicationID,
			OverallScore:  overall,
			FinalDecision: models.DecisionPending,
		}
		_, err = store.Create(rec)
		return err
	}
	updMap := map[string]interface{}{
		"overall_score":     overall,
		"final_decision":    models.DecisionPending,
		"final_notes":       "",
		"decision_maker_id": nil,
		"decision_made_at":  nil,
	}
	return store.Update(existed.ID, updMap)
}

// FinalizeDecision фиксирует решение HR по готовому отчету.
// Журнал этапов не изменяется: запись собеседования закрыта ранее
// и повторное решение ее не переоткрывает.
func (i impl) FinalizeDecision(applicationID string, decision models.FinalDecision, notes, deciderID string) (reportapimodels.ReportView, error) {
	logger := log.WithField("application_id", applicationID).
		WithField("decision", decision)
	var statusCode models.StatusCode
	switch decision {
	case models.DecisionAccepted:
		statusCode = models.StatusAccepted
	case models.DecisionRejected:
		statusCode = models.StatusRejected
	default:
		return reportapimodels.ReportView{}, models.NewValidationError("недопустимое решение по отчету: %v", decision)
	}
	status, err := i.catalog.FindByCode(statusCode)
	if err != nil {
		logger.WithError(err).Error("ошибка получения статуса финального решения")
		return reportapimodels.ReportView{}, err
	}
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		store := reportstore.NewInstance(tx)
		rec, err := store.GetByApplication(applicationID)
		if err != nil {
			return err
		}
		if rec == nil {
			return errors.New("отчет по заявке не найден")
		}
		updMap := map[string]interface{}{
			"final_decision":    decision,
			"final_notes":       notes,
			"decision_maker_id": deciderID,
			"decision_made_at":  time.Now(),
		}
		if err = store.Update(rec.ID, updMap); err != nil {
			return err
		}
		return applicationstore.NewInstance(tx).SetStatus(applicationID, status.ID)
	})
	if err != nil {
		return reportapimodels.ReportView{}, err
	}
	logger.Info("зафиксировано финальное решение по заявке")
	return i.GetByApplication(applicationID)
}

func (i impl) GetByApplication(applicationID string) (reportapimodels.ReportView, error) {
	rec, err := reportstore.NewInstance(db.DB).GetByApplication(applicationID)
	if err != nil {
		return reportapimodels.ReportView{}, err
	}
	if rec == nil {
		return reportapimodels.ReportView{}, errors.New("отчет по заявке не найден")
	}
	return reportapimodels.Convert(*rec), nil
}

func (i impl) List() ([]dbmodels.ApplicationReport, error) {
	return reportstore.NewInstance(db.DB).List()
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
