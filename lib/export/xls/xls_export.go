package xlsexport

import (
	"bytes"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	dbmodels "recruitment-backend/models/db"
)

type Provider interface {
	ExportReportList(list []dbmodels.ApplicationReport) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var reportHeaders = []string{"ФИО", "Вакансия", "Итоговая оценка", "Решение", "Комментарий", "Принял решение", "Дата решения"}

func (i impl) ExportReportList(list []dbmodels.ApplicationReport) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, reportHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(list) != 0 {
		row, err = writeReportData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
	}
	f.SetSheetName(sheet, "Отчеты")
	return f.WriteToBuffer()
}

func writeReportData(f *excelize.File, sheet string, list []dbmodels.ApplicationReport, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(reportHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		// "ФИО"
		col := 1
		if item.Application != nil && item.Application.Applicant != nil {
			if err := writeColumn(f, sheet, col, row, item.Application.Applicant.GetFIO()); err != nil {
				return row, err
			}
		}

		// "Вакансия"
		col++
		if item.Application != nil && item.Application.Vacancy != nil {
			if err := writeColumn(f, sheet, col, row, item.Application.Vacancy.VacancyName); err != nil {
				return row, err
			}
		}

		// "Итоговая оценка"
		col++
		if err := writeColumn(f, sheet, col, row, item.OverallScore); err != nil {
			return row, err
		}

		// "Решение"
		col++
		if err := writeColumn(f, sheet, col, row, string(item.FinalDecision)); err != nil {
			return row, err
		}

		// "Комментарий"
		col++
		if err := writeColumn(f, sheet, col, row, item.FinalNotes); err != nil {
			return row, err
		}

		// "Принял решение"
		col++
		if item.DecisionMaker != nil {
			if err := writeColumn(f, sheet, col, row, item.DecisionMaker.GetFullName()); err != nil {
				return row, err
			}
		}

		// "Дата решения"
		col++
		if item.DecisionMadeAt != nil {
			if err := writeColumn(f, sheet, col, row, item.DecisionMadeAt.Format("02.01.2006")); err != nil {
				return row, err
			}
		}
	}
	return row, nil
}
