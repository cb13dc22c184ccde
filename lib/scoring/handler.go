package scoring

import (
	"math"

	"recruitment-backend/db"
	answerstore "recruitment-backend/lib/scoring/store"
	"recruitment-backend/models"
	dbmodels "recruitment-backend/models/db"
)

// Result итог оценки этапа тестирования.
// При ручном режиме Value не заполняется, оценку обязан ввести ревьюер.
type Result struct {
	Mode  models.ScoringMode
	Value float64
}

type Provider interface {
	ScoreFor(application dbmodels.Application) (Result, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		answerStore: answerstore.NewInstance(db.DB),
	}
}

type impl struct {
	answerStore answerstore.Provider
}

func (i impl) ScoreFor(application dbmodels.Application) (Result, error) {
	pack := getQuestionPack(application)
	if pack != nil && pack.ScoringMode == models.ScoringModeManual {
		return Result{Mode: models.ScoringModeManual}, nil
	}
	list, err := i.answerStore.ListByApplication(application.ID)
	if err != nil {
		return Result{}, err
	}
	if len(list) == 0 {
		return Result{Mode: models.ScoringModeAuto, Value: 0}, nil
	}
	correct := 0
	for _, answer := range list {
		// ответ без выбранного варианта считается неверным
		if answer.Choice != nil && answer.Choice.IsCorrect {
			correct++
		}
	}
	value := round2(float64(correct) / float64(len(list)) * 100)
	return Result{Mode: models.ScoringModeAuto, Value: value}, nil
}

func getQuestionPack(application dbmodels.Application) *dbmodels.QuestionPack {
	if application.Vacancy == nil {
		return nil
	}
	return application.Vacancy.QuestionPack
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
