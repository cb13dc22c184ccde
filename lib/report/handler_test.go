package report

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"recruitment-backend/db"
	statuscatalog "recruitment-backend/lib/status-catalog"
	"recruitment-backend/models"
	dbmodels "recruitment-backend/models/db"
)

func setupTest(t *testing.T) *gorm.DB {
	database, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.Nil(t, err)
	require.Nil(t, db.AutoMigrate(database))
	require.Nil(t, db.FillStatuses(database))
	db.DB = database
	statuscatalog.NewHandler()
	NewHandler()
	return database
}

func statusID(t *testing.T, database *gorm.DB, code models.StatusCode) string {
	rec := dbmodels.Status{}
	require.Nil(t, database.Where("code = ?", code).First(&rec).Error)
	return rec.ID
}

func createApplication(t *testing.T, database *gorm.DB) dbmodels.Application {
	vacancy := dbmodels.Vacancy{VacancyName: "инженер"}
	require.Nil(t, database.Create(&vacancy).Error)
	applicant := dbmodels.Applicant{FirstName: "Иван", LastName: "Иванов"}
	require.Nil(t, database.Create(&applicant).Error)
	application := dbmodels.Application{
		ApplicantID: applicant.ID,
		VacancyID:   vacancy.ID,
		StatusID:    statusID(t, database, models.StatusInterview),
	}
	require.Nil(t, database.Create(&application).Error)
	return application
}

// addClosedStage закрытая запись журнала этапа с оценкой
func addClosedStage(t *testing.T, database *gorm.DB, applicationID string, code models.StatusCode, score *float64) {
	now := time.Now()
	rec := dbmodels.StageHistory{
		ApplicationID: applicationID,
		StatusID:      statusID(t, database, code),
		Score:         score,
		ProcessedAt:   now,
		CompletedAt:   &now,
		IsActive:      false,
	}
	require.Nil(t, database.Create(&rec).Error)
}

func scorePtr(v float64) *float64 {
	return &v
}

func TestTryFinalize(t *testing.T) {
	t.Run(`all three stage scores build a pending report`, func(t *testing.T) {
		database := setupTest(t)
		application := createApplication(t, database)
		addClosedStage(t, database, application.ID, models.StatusAdminSelection, scorePtr(80))
		addClosedStage(t, database, application.ID, models.StatusPsychotest, scorePtr(70))
		addClosedStage(t, database, application.ID, models.StatusInterview, scorePtr(90))

		result, err := Instance.TryFinalize(database, application.ID)
		require.Nil(t, err)
		require.Equal(t, true, result.Finalized)
		require.NotNil(t, result.OverallScore)
		require.Equal(t, 80.00, *result.OverallScore)

		rec := dbmodels.ApplicationReport{}
		require.Nil(t, database.Where("application_id = ?", application.ID).First(&rec).Error)
		require.Equal(t, 80.00, rec.OverallScore)
		require.Equal(t, models.DecisionPending, rec.FinalDecision)
	})

	t.Run(`overall score rounds to two decimals`, func(t *testing.T) {
		database := setupTest(t)
		application := createApplication(t, database)
		addClosedStage(t, database, application.ID, models.StatusAdminSelection, scorePtr(80))
		addClosedStage(t, database, application.ID, models.StatusPsychotest, scorePtr(70))
		addClosedStage(t, database, application.ID, models.StatusInterview, scorePtr(85))

		result, err := Instance.TryFinalize(database, application.ID)
		require.Nil(t, err)
		require.Equal(t, 78.33, *result.OverallScore)
	})

	t.Run(`missing stage score leaves application without report`, func(t *testing.T) {
		database := setupTest(t)
		application := createApplication(t, database)
		addClosedStage(t, database, application.ID, models.StatusAdminSelection, scorePtr(80))
		addClosedStage(t, database, application.ID, models.StatusInterview, scorePtr(90))

		result, err := Instance.TryFinalize(database, application.ID)
		require.Nil(t, err)
		require.Equal(t, false, result.Finalized)

		count := int64(0)
		require.Nil(t, database.Model(&dbmodels.ApplicationReport{}).
			Where("application_id = ?", application.ID).Count(&count).Error)
		require.Equal(t, int64(0), count)
	})

	t.Run(`unscored journal record does not count`, func(t *testing.T) {
		database := setupTest(t)
		application := createApplication(t, database)
		addClosedStage(t, database, application.ID, models.StatusAdminSelection, scorePtr(80))
		addClosedStage(t, database, application.ID, models.StatusPsychotest, nil)
		addClosedStage(t, database, application.ID, models.StatusInterview, scorePtr(90))

		result, err := Instance.TryFinalize(database, application.ID)
		require.Nil(t, err)
		require.Equal(t, false, result.Finalized)
	})

	t.Run(`refinalization resets a stale decision`, func(t *testing.T) {
		database := setupTest(t)
		application := createApplication(t, database)
		addClosedStage(t, database, application.ID, models.StatusAdminSelection, scorePtr(80))
		addClosedStage(t, database, application.ID, models.StatusPsychotest, scorePtr(70))
		addClosedStage(t, database, application.ID, models.StatusInterview, scorePtr(90))

		_, err := Instance.TryFinalize(database, application.ID)
		require.Nil(t, err)
		deciderID := uuid.NewString()
		now := time.Now()
		require.Nil(t, database.Model(&dbmodels.ApplicationReport{}).
			Where("application_id = ?", application.ID).
			Updates(map[string]interface{}{
				"final_decision":    models.DecisionAccepted,
				"final_notes":       "принят",
				"decision_maker_id": deciderID,
				"decision_made_at":  now,
			}).Error)

		// повторное собеседование с новой оценкой
		addClosedStage(t, database, application.ID, models.StatusInterview, scorePtr(60))
		result, err := Instance.TryFinalize(database, application.ID)
		require.Nil(t, err)
		require.Equal(t, 70.00, *result.OverallScore)

		rec := dbmodels.ApplicationReport{}
		require.Nil(t, database.Where("application_id = ?", application.ID).First(&rec).Error)
		require.Equal(t, models.DecisionPending, rec.FinalDecision)
		require.Equal(t, "", rec.FinalNotes)
		require.Nil(t, rec.DecisionMakerID)
		require.Nil(t, rec.DecisionMadeAt)
	})
}

func TestFinalizeDecision(t *testing.T) {
	buildReport := func(t *testing.T, database *gorm.DB) dbmodels.Application {
		application := createApplication(t, database)
		addClosedStage(t, database, application.ID, models.StatusAdminSelection, scorePtr(80))
		addClosedStage(t, database, application.ID, models.StatusPsychotest, scorePtr(70))
		addClosedStage(t, database, application.ID, models.StatusInterview, scorePtr(90))
		_, err := Instance.TryFinalize(database, application.ID)
		require.Nil(t, err)
		return application
	}

	t.Run(`accepted decision moves application to accepted status`, func(t *testing.T) {
		database := setupTest(t)
		application := buildReport(t, database)
		deciderID := uuid.NewString()

		view, err := Instance.FinalizeDecision(application.ID, models.DecisionAccepted, "сильный кандидат", deciderID)
		require.Nil(t, err)
		require.Equal(t, string(models.DecisionAccepted), view.FinalDecision)
		require.Equal(t, 80.00, view.OverallScore)

		updated := dbmodels.Application{}
		require.Nil(t, database.First(&updated, "id = ?", application.ID).Error)
		require.Equal(t, statusID(t, database, models.StatusAccepted), updated.StatusID)
	})

	t.Run(`rejected decision moves application to rejected status`, func(t *testing.T) {
		database := setupTest(t)
		application := buildReport(t, database)

		_, err := Instance.FinalizeDecision(application.ID, models.DecisionRejected, "слабое собеседование", uuid.NewString())
		require.Nil(t, err)

		updated := dbmodels.Application{}
		require.Nil(t, database.First(&updated, "id = ?", application.ID).Error)
		require.Equal(t, statusID(t, database, models.StatusRejected), updated.StatusID)
	})

	t.Run(`pending is not a valid decision`, func(t *testing.T) {
		database := setupTest(t)
		application := buildReport(t, database)

		_, err := Instance.FinalizeDecision(application.ID, models.DecisionPending, "", uuid.NewString())
		require.NotNil(t, err)
		require.Equal(t, true, models.IsValidationError(err))
	})

	t.Run(`decision without report fails`, func(t *testing.T) {
		database := setupTest(t)
		application := createApplication(t, database)

		_, err := Instance.FinalizeDecision(application.ID, models.DecisionAccepted, "", uuid.NewString())
		require.NotNil(t, err)
	})
}
