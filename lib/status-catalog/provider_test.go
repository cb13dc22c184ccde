package statuscatalog

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"recruitment-backend/db"
	statusstore "recruitment-backend/lib/status-catalog/store"
	"recruitment-backend/models"
)

func setupTest(t *testing.T) *gorm.DB {
	database, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.Nil(t, err)
	require.Nil(t, db.AutoMigrate(database))
	return database
}

func TestStageFlow(t *testing.T) {
	t.Run(`stage order is administration, psychotest, interview`, func(t *testing.T) {
		codes := StageCodes()
		require.Equal(t, []models.StatusCode{
			models.StatusAdminSelection,
			models.StatusPsychotest,
			models.StatusInterview,
		}, codes)

		admin, ok := DescriptorByStage(models.StageAdministration)
		require.Equal(t, true, ok)
		require.Equal(t, models.StagePsychotest, admin.Next)

		psychotest, ok := DescriptorByStage(models.StagePsychotest)
		require.Equal(t, true, ok)
		require.Equal(t, models.StageInterview, psychotest.Next)

		interview, ok := DescriptorByStage(models.StageInterview)
		require.Equal(t, true, ok)
		require.Equal(t, models.SelectionStage(""), interview.Next)
	})

	t.Run(`reviewer score bounds on scored stages`, func(t *testing.T) {
		for _, stage := range []models.SelectionStage{models.StageAdministration, models.StageInterview} {
			desc, ok := DescriptorByStage(stage)
			require.Equal(t, true, ok)
			require.Equal(t, true, desc.ScoreRequired)
			require.Equal(t, 10.0, desc.MinPassScore)
			require.Equal(t, 99.0, desc.MaxPassScore)
		}
		psychotest, _ := DescriptorByStage(models.StagePsychotest)
		require.Equal(t, false, psychotest.ScoreRequired)
	})

	t.Run(`unknown stage has no descriptor`, func(t *testing.T) {
		_, ok := DescriptorByStage(models.StageFinal)
		require.Equal(t, false, ok)
	})

	t.Run(`status code maps back to stage`, func(t *testing.T) {
		stage, ok := StageByStatusCode(models.StatusPsychotest)
		require.Equal(t, true, ok)
		require.Equal(t, models.StagePsychotest, stage)

		_, ok = StageByStatusCode(models.StatusRejected)
		require.Equal(t, false, ok)
	})
}

func TestFindByCode(t *testing.T) {
	t.Run(`seeded statuses are resolvable`, func(t *testing.T) {
		database := setupTest(t)
		require.Nil(t, db.FillStatuses(database))
		i := impl{store: statusstore.NewInstance(database)}

		for _, code := range StageCodes() {
			rec, err := i.FindByCode(code)
			require.Nil(t, err)
			require.Equal(t, code, rec.Code)
			require.NotEqual(t, "", rec.Name)
		}
	})

	t.Run(`missing status is a configuration error`, func(t *testing.T) {
		database := setupTest(t)
		i := impl{store: statusstore.NewInstance(database)}

		_, err := i.FindByCode(models.StatusHired)
		require.NotNil(t, err)
		require.Equal(t, true, errors.Is(err, ErrNotConfigured))
	})

	t.Run(`stage group resolves to a seeded status`, func(t *testing.T) {
		database := setupTest(t)
		require.Nil(t, db.FillStatuses(database))
		i := impl{store: statusstore.NewInstance(database)}

		rec, err := i.FindByStage(models.StageGroupInterview)
		require.Nil(t, err)
		require.Equal(t, models.StatusInterview, rec.Code)

		rec, err = i.FindByStage(models.StageGroupPsychological)
		require.Nil(t, err)
		require.Equal(t, models.StatusPsychotest, rec.Code)
	})

	t.Run(`unknown stage group is a configuration error`, func(t *testing.T) {
		database := setupTest(t)
		i := impl{store: statusstore.NewInstance(database)}

		_, err := i.FindByStage(models.StageGroupInterview)
		require.NotNil(t, err)
		require.Equal(t, true, errors.Is(err, ErrNotConfigured))
	})

	t.Run(`seeding is idempotent`, func(t *testing.T) {
		database := setupTest(t)
		require.Nil(t, db.FillStatuses(database))
		require.Nil(t, db.FillStatuses(database))

		count := int64(0)
		require.Nil(t, database.Table("statuses").Count(&count).Error)
		require.Equal(t, int64(7), count)
	})
}
