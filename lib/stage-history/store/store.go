package stagehistorystore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"recruitment-backend/models"
	dbmodels "recruitment-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.StageHistory) (id string, err error)
	GetActive(applicationID string) (*dbmodels.StageHistory, error)
	CloseStage(id string, updMap map[string]interface{}) (closed bool, err error)
	DeactivateAllExcept(applicationID, keepID string) error
	List(applicationID string) (list []dbmodels.StageHistory, err error)
	LastScoredByStatus(applicationID string, statusCode models.StatusCode) (*dbmodels.StageHistory, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.StageHistory) (id string, err error) {
	err = i.db.
		Omit("Application", "Status", "Reviewer").
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetActive(applicationID string) (*dbmodels.StageHistory, error) {
	rec := dbmodels.StageHistory{}
	err := i.db.
		Model(&dbmodels.StageHistory{}).
		Where("application_id = ? AND is_active = ?", applicationID, true).
		Preload("Status").
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

// CloseStage закрывает запись одним условным обновлением.
// При состоявшейся гонке обновление не затронет ни одной строки,
// и вызывающий код отличит это от успешного закрытия.
func (i impl) CloseStage(id string, updMap map[string]interface{}) (closed bool, err error) {
	tx := i.db.
		Model(&dbmodels.StageHistory{}).
		Where("id = ? AND is_active = ?", id, true).
		Updates(updMap)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (i impl) DeactivateAllExcept(applicationID, keepID string) error {
	tx := i.db.
		Model(&dbmodels.StageHistory{}).
		Where("application_id = ? AND is_active = ?", applicationID, true)
	if keepID != "" {
		tx = tx.Where("id <> ?", keepID)
	}
	return tx.Update("is_active", false).Error
}

func (i impl) List(applicationID string) (list []dbmodels.StageHistory, err error) {
	list = []dbmodels.StageHistory{}
	err = i.db.
		Model(&dbmodels.StageHistory{}).
		Where("application_id = ?", applicationID).
		Preload("Status").
		Preload("Reviewer").
		Order("processed_at").
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

// LastScoredByStatus последняя закрытая запись этапа с проставленной оценкой
func (i impl) LastScoredByStatus(applicationID string, statusCode models.StatusCode) (*dbmodels.StageHistory, error) {
	rec := dbmodels.StageHistory{}
	err := i.db.
		Model(&dbmodels.StageHistory{}).
		Joins("JOIN statuses ON statuses.id = stage_histories.status_id").
		Where("stage_histories.application_id = ?", applicationID).
		Where("statuses.code = ?", statusCode).
		Where("stage_histories.is_active = ?", false).
		Where("stage_histories.score IS NOT NULL").
		Order("stage_histories.completed_at DESC").
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
