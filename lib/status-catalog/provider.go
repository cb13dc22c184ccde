package statuscatalog

import (
	"github.com/pkg/errors"

	"recruitment-backend/db"
	statusstore "recruitment-backend/lib/status-catalog/store"
	"recruitment-backend/models"
	dbmodels "recruitment-backend/models/db"
)

// ErrNotConfigured статус не заведен в справочнике.
// Ошибка конфигурации развертывания, а не пользовательская.
var ErrNotConfigured = errors.New("статус не настроен в справочнике")

// StageDescriptor описание этапа отбора: статус, преемник и границы
// пользовательской оценки. Порядок этапов задается данными, не кодом.
type StageDescriptor struct {
	Stage         models.SelectionStage
	StatusCode    models.StatusCode
	Next          models.SelectionStage // пусто для последнего этапа
	ScoreRequired bool                  // оценку вводит ревьюер при прохождении
	MinPassScore  float64
	MaxPassScore  float64
}

var stageFlow = []StageDescriptor{
	{
		Stage:         models.StageAdministration,
		StatusCode:    models.StatusAdminSelection,
		Next:          models.StagePsychotest,
		ScoreRequired: true,
		MinPassScore:  10,
		MaxPassScore:  99,
	},
	{
		Stage:      models.StagePsychotest,
		StatusCode: models.StatusPsychotest,
		Next:       models.StageInterview,
	},
	{
		Stage:         models.StageInterview,
		StatusCode:    models.StatusInterview,
		ScoreRequired: true,
		MinPassScore:  10,
		MaxPassScore:  99,
	},
}

// DescriptorByStage возвращает описание рабочего этапа
func DescriptorByStage(stage models.SelectionStage) (StageDescriptor, bool) {
	for _, desc := range stageFlow {
		if desc.Stage == stage {
			return desc, true
		}
	}
	return StageDescriptor{}, false
}

// StageByStatusCode обратное отображение для унаследованных точек входа
// approve/reject: код текущего статуса заявки -> имя этапа
func StageByStatusCode(code models.StatusCode) (models.SelectionStage, bool) {
	for _, desc := range stageFlow {
		if desc.StatusCode == code {
			return desc.Stage, true
		}
	}
	return "", false
}

// StageCodes коды трех рабочих этапов в порядке прохождения
func StageCodes() []models.StatusCode {
	codes := make([]models.StatusCode, 0, len(stageFlow))
	for _, desc := range stageFlow {
		codes = append(codes, desc.StatusCode)
	}
	return codes
}

type Provider interface {
	FindByCode(code models.StatusCode) (*dbmodels.Status, error)
	FindByStage(stage models.StageGroup) (*dbmodels.Status, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: statusstore.NewInstance(db.DB),
	}
}

type impl struct {
	store statusstore.Provider
}

func (i impl) FindByCode(code models.StatusCode) (*dbmodels.Status, error) {
	rec, err := i.store.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, errors.Wrapf(ErrNotConfigured, "код статуса: %v", code)
	}
	return rec, nil
}

func (i impl) FindByStage(stage models.StageGroup) (*dbmodels.Status, error) {
	rec, err := i.store.GetByStage(stage)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, errors.Wrapf(ErrNotConfigured, "группа этапа: %v", stage)
	}
	return rec, nil
}
