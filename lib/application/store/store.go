package applicationstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "recruitment-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Application) (id string, err error)
	GetByID(id string) (*dbmodels.Application, error)
	SetStatus(id, statusID string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Application) (id string, err error) {
	err = i.db.
		Omit("Applicant", "Vacancy", "Status").
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Application, error) {
	rec := dbmodels.Application{}
	err := i.db.
		Model(&dbmodels.Application{}).
		Where("id = ?", id).
		Preload("Applicant").
		Preload("Status").
		Preload("Vacancy").
		Preload("Vacancy.QuestionPack").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) SetStatus(id, statusID string) error {
	return i.db.
		Model(&dbmodels.Application{}).
		Where("id = ?", id).
		Update("status_id", statusID).
		Error
}
