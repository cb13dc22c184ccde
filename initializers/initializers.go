package initializers

import (
	"context"

	"recruitment-backend/config"
	"recruitment-backend/fiberlog"
	xlsexport "recruitment-backend/lib/export/xls"
	filestorage "recruitment-backend/lib/file-storage"
	"recruitment-backend/lib/report"
	"recruitment-backend/lib/scoring"
	"recruitment-backend/lib/selection"
	stagehistoryhandler "recruitment-backend/lib/stage-history"
	statuscatalog "recruitment-backend/lib/status-catalog"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3()
	InitSmtp()
	filestorage.NewHandler()
	statuscatalog.NewHandler()
	stagehistoryhandler.NewHandler()
	scoring.NewHandler()
	report.NewHandler()
	selection.NewHandler()
	xlsexport.NewHandler()
}
