package stagehistorystore

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
	return database
}

func statusID(t *testing.T, database *gorm.DB, code models.StatusCode) string {
	rec := dbmodels.Status{}
	require.Nil(t, database.Where("code = ?", code).First(&rec).Error)
	return rec.ID
}

func TestStageHistoryStore(t *testing.T) {
	t.Run(`close stage is conditional on an open record`, func(t *testing.T) {
		database := setupTest(t)
		store := NewInstance(database)
		applicationID := uuid.NewString()
		id, err := store.Create(dbmodels.StageHistory{
			ApplicationID: applicationID,
			StatusID:      statusID(t, database, models.StatusAdminSelection),
			ProcessedAt:   time.Now(),
			IsActive:      true,
		})
		require.Nil(t, err)

		now := time.Now()
		closed, err := store.CloseStage(id, map[string]interface{}{
			"score":        75.0,
			"completed_at": now,
			"is_active":    false,
		})
		require.Nil(t, err)
		require.Equal(t, true, closed)

		// повторное закрытие не затрагивает строк
		closed, err = store.CloseStage(id, map[string]interface{}{"is_active": false})
		require.Nil(t, err)
		require.Equal(t, false, closed)

		rec, err := store.GetActive(applicationID)
		require.Nil(t, err)
		require.Nil(t, rec)
	})

	t.Run(`deactivate all except keeps the named record`, func(t *testing.T) {
		database := setupTest(t)
		store := NewInstance(database)
		applicationID := uuid.NewString()
		adminID := statusID(t, database, models.StatusAdminSelection)
		firstID, err := store.Create(dbmodels.StageHistory{
			ApplicationID: applicationID,
			StatusID:      adminID,
			ProcessedAt:   time.Now(),
			IsActive:      true,
		})
		require.Nil(t, err)
		_, err = store.Create(dbmodels.StageHistory{
			ApplicationID: applicationID,
			StatusID:      adminID,
			ProcessedAt:   time.Now(),
			IsActive:      true,
		})
		require.Nil(t, err)

		require.Nil(t, store.DeactivateAllExcept(applicationID, firstID))

		rec, err := store.GetActive(applicationID)
		require.Nil(t, err)
		require.NotNil(t, rec)
		require.Equal(t, firstID, rec.ID)
	})

	t.Run(`last scored by status skips open and unscored records`, func(t *testing.T) {
		database := setupTest(t)
		store := NewInstance(database)
		applicationID := uuid.NewString()
		adminID := statusID(t, database, models.StatusAdminSelection)

		older := time.Now().Add(-time.Hour)
		newer := time.Now()
		oldScore, newScore := 40.0, 85.0
		_, err := store.Create(dbmodels.StageHistory{
			ApplicationID: applicationID,
			StatusID:      adminID,
			Score:         &oldScore,
			ProcessedAt:   older,
			CompletedAt:   &older,
			IsActive:      false,
		})
		require.Nil(t, err)
		_, err = store.Create(dbmodels.StageHistory{
			ApplicationID: applicationID,
			StatusID:      adminID,
			Score:         &newScore,
			ProcessedAt:   newer,
			CompletedAt:   &newer,
			IsActive:      false,
		})
		require.Nil(t, err)
		// открытая запись того же этапа не учитывается
		_, err = store.Create(dbmodels.StageHistory{
			ApplicationID: applicationID,
			StatusID:      adminID,
			ProcessedAt:   time.Now(),
			IsActive:      true,
		})
		require.Nil(t, err)

		rec, err := store.LastScoredByStatus(applicationID, models.StatusAdminSelection)
		require.Nil(t, err)
		require.NotNil(t, rec)
		require.Equal(t, 85.0, *rec.Score)

		rec, err = store.LastScoredByStatus(applicationID, models.StatusInterview)
		require.Nil(t, err)
		require.Nil(t, rec)
	})
}
