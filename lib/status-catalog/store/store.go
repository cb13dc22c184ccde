package statusstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"recruitment-backend/models"
	dbmodels "recruitment-backend/models/db"
)

type Provider interface {
	GetByCode(code models.StatusCode) (*dbmodels.Status, error)
	GetByStage(stage models.StageGroup) (*dbmodels.Status, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) GetByCode(code models.StatusCode) (*dbmodels.Status, error) {
	rec := dbmodels.Status{}
	err := i.db.
		Model(&dbmodels.Status{}).
		Where("code = ?", code).
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

func (i impl) GetByStage(stage models.StageGroup) (*dbmodels.Status, error) {
	rec := dbmodels.Status{}
	err := i.db.
		Model(&dbmodels.Status{}).
		Where("stage = ?", stage).
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
