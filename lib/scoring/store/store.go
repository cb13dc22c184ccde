package answerstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "recruitment-backend/models/db"
)

type Provider interface {
	ListByApplication(applicationID string) (list []dbmodels.ApplicantAnswer, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) ListByApplication(applicationID string) (list []dbmodels.ApplicantAnswer, err error) {
	list = []dbmodels.ApplicantAnswer{}
	err = i.db.
		Model(&dbmodels.ApplicantAnswer{}).
		Where("application_id = ?", applicationID).
		Preload("Choice").
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}
