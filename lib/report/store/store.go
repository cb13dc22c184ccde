package reportstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "recruitment-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.ApplicationReport) (id string, err error)
	GetByApplication(applicationID string) (*dbmodels.ApplicationReport, error)
	Update(id string, updMap map[string]interface{}) error
	List() (list []dbmodels.ApplicationReport, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.ApplicationReport) (id string, err error) {
	err = i.db.
		Omit("Application", "DecisionMaker").
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByApplication(applicationID string) (*dbmodels.ApplicationReport, error) {
	rec := dbmodels.ApplicationReport{}
	err := i.db.
		Model(&dbmodels.ApplicationReport{}).
		Where("application_id = ?", applicationID).
		Preload("Application").
		Preload("Application.Applicant").
		Preload("Application.Vacancy").
		Preload("DecisionMaker").
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

func (i impl) Update(id string, updMap map[string]interface{}) error {
	return i.db.
		Model(&dbmodels.ApplicationReport{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) List() (list []dbmodels.ApplicationReport, err error) {
	list = []dbmodels.ApplicationReport{}
	err = i.db.
		Model(&dbmodels.ApplicationReport{}).
		Preload("Application").
		Preload("Application.Applicant").
		Preload("Application.Vacancy").
		Preload("DecisionMaker").
		Order("created_at").
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
