package scoring

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"recruitment-backend/db"
	answerstore "recruitment-backend/lib/scoring/store"
	"recruitment-backend/models"
	dbmodels "recruitment-backend/models/db"
)

func setupTestDB(t *testing.T) *gorm.DB {
	database, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.Nil(t, err)
	require.Nil(t, db.AutoMigrate(database))
	return database
}

func createApplication(t *testing.T, database *gorm.DB, testType string) dbmodels.Application {
	pack := dbmodels.QuestionPack{
		Name:        "пакет вопросов",
		TestType:    testType,
		ScoringMode: models.ScoringModeForTestType(testType),
	}
	require.Nil(t, database.Create(&pack).Error)
	vacancy := dbmodels.Vacancy{
		VacancyName:    "инженер",
		QuestionPackID: &pack.ID,
	}
	require.Nil(t, database.Create(&vacancy).Error)
	applicant := dbmodels.Applicant{FirstName: "Иван", LastName: "Иванов"}
	require.Nil(t, database.Create(&applicant).Error)
	application := dbmodels.Application{
		ApplicantID: applicant.ID,
		VacancyID:   vacancy.ID,
	}
	require.Nil(t, database.Create(&application).Error)
	application.Vacancy = &vacancy
	application.Vacancy.QuestionPack = &pack
	return application
}

func addAnswer(t *testing.T, database *gorm.DB, applicationID string, correct bool, withChoice bool) {
	question := dbmodels.Question{Text: "вопрос"}
	require.Nil(t, database.Create(&question).Error)
	answer := dbmodels.ApplicantAnswer{
		ApplicationID: applicationID,
		QuestionID:    question.ID,
	}
	if withChoice {
		choice := dbmodels.QuestionChoice{
			QuestionID: question.ID,
			Text:       "вариант",
			IsCorrect:  correct,
		}
		require.Nil(t, database.Create(&choice).Error)
		answer.ChoiceID = &choice.ID
	}
	require.Nil(t, database.Create(&answer).Error)
}

func TestScoreFor(t *testing.T) {
	t.Run(`auto scoring: 7 of 10 correct gives 70.00`, func(t *testing.T) {
		database := setupTestDB(t)
		application := createApplication(t, database, "technical")
		for idx := 0; idx < 10; idx++ {
			addAnswer(t, database, application.ID, idx < 7, true)
		}
		i := impl{answerStore: answerstore.NewInstance(database)}
		result, err := i.ScoreFor(application)
		require.Nil(t, err)
		require.Equal(t, models.ScoringModeAuto, result.Mode)
		require.Equal(t, 70.00, result.Value)
	})

	t.Run(`auto scoring: no answers gives 0`, func(t *testing.T) {
		database := setupTestDB(t)
		application := createApplication(t, database, "technical")
		i := impl{answerStore: answerstore.NewInstance(database)}
		result, err := i.ScoreFor(application)
		require.Nil(t, err)
		require.Equal(t, models.ScoringModeAuto, result.Mode)
		require.Equal(t, 0.0, result.Value)
	})

	t.Run(`answer without selected choice counts incorrect`, func(t *testing.T) {
		database := setupTestDB(t)
		application := createApplication(t, database, "technical")
		addAnswer(t, database, application.ID, true, true)
		addAnswer(t, database, application.ID, false, false)
		i := impl{answerStore: answerstore.NewInstance(database)}
		result, err := i.ScoreFor(application)
		require.Nil(t, err)
		require.Equal(t, 50.00, result.Value)
	})

	t.Run(`rounding to two decimals`, func(t *testing.T) {
		database := setupTestDB(t)
		application := createApplication(t, database, "technical")
		for idx := 0; idx < 3; idx++ {
			addAnswer(t, database, application.ID, idx < 1, true)
		}
		i := impl{answerStore: answerstore.NewInstance(database)}
		result, err := i.ScoreFor(application)
		require.Nil(t, err)
		require.Equal(t, 33.33, result.Value)
	})

	t.Run(`psychological pack requires manual score`, func(t *testing.T) {
		database := setupTestDB(t)
		application := createApplication(t, database, "psikologi")
		i := impl{answerStore: answerstore.NewInstance(database)}
		result, err := i.ScoreFor(application)
		require.Nil(t, err)
		require.Equal(t, models.ScoringModeManual, result.Mode)
	})

	t.Run(`application without pack scores as auto`, func(t *testing.T) {
		database := setupTestDB(t)
		application := createApplication(t, database, "technical")
		application.Vacancy.QuestionPack = nil
		i := impl{answerStore: answerstore.NewInstance(database)}
		result, err := i.ScoreFor(application)
		require.Nil(t, err)
		require.Equal(t, models.ScoringModeAuto, result.Mode)
		require.Equal(t, 0.0, result.Value)
	})
}
