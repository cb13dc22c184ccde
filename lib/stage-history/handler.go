package stagehistoryhandler

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"recruitment-backend/db"
	stagehistorystore "recruitment-backend/lib/stage-history/store"
	selectionapimodels "recruitment-backend/models/api/selection"
)

type Provider interface {
	List(applicationID string) ([]selectionapimodels.StageHistoryView, error)
	GetActive(applicationID string) (*selectionapimodels.StageHistoryView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: stagehistorystore.NewInstance(db.DB),
	}
}

type impl struct {
	store stagehistorystore.Provider
}

func (i impl) List(applicationID string) ([]selectionapimodels.StageHistoryView, error) {
	list, err := i.store.List(applicationID)
	if err != nil {
		log.WithError(err).
			WithField("application_id", applicationID).
			Error("ошибка получения журнала этапов по заявке")
		return nil, errors.New("ошибка получения журнала этапов по заявке")
	}
	result := make([]selectionapimodels.StageHistoryView, 0, len(list))
	for _, rec := range list {
		result = append(result, selectionapimodels.Convert(rec))
	}
	return result, nil
}

func (i impl) GetActive(applicationID string) (*selectionapimodels.StageHistoryView, error) {
	rec, err := i.store.GetActive(applicationID)
	if err != nil {
		log.WithError(err).
			WithField("application_id", applicationID).
			Error("ошибка получения активного этапа по заявке")
		return nil, errors.New("ошибка получения активного этапа по заявке")
	}
	if rec == nil {
		return nil, nil
	}
	view := selectionapimodels.Convert(*rec)
	return &view, nil
}
