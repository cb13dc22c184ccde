package pdfexport

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"

	reportapimodels "recruitment-backend/models/api/report"
	selectionapimodels "recruitment-backend/models/api/selection"
)

// GenerateReport формирует pdf с итоговым отчетом по заявке
// и оценками пройденных этапов
func GenerateReport(report reportapimodels.ReportView, history []selectionapimodels.StageHistoryView) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateReport panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "static/font/")
	pdf.AddPage()
	pdf.AddUTF8Font("Arial", "", "Arial.ttf")
	pdf.AddUTF8Font("Arial", "B", "Arial Bold.ttf")
	pdf.SetFont("Arial", "B", 16)
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	pdf.CellFormat(0, 10, "Отчет по кандидату", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 12)
	pdf.Ln(4)
	pdf.CellFormat(0, 8, fmt.Sprintf("Кандидат: %s", report.Applicant), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 8, fmt.Sprintf("Вакансия: %s", report.Vacancy), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(90, 8, "Этап", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, "Оценка", "1", 0, "C", false, 0, "")
	pdf.CellFormat(50, 8, "Дата решения", "1", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 12)
	for _, rec := range history {
		if rec.CompletedAt == nil || rec.Score == nil {
			continue
		}
		pdf.CellFormat(90, 8, rec.StatusName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 8, fmt.Sprintf("%.2f", *rec.Score), "1", 0, "C", false, 0, "")
		pdf.CellFormat(50, 8, rec.CompletedAt.Format("02.01.2006"), "1", 1, "C", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, fmt.Sprintf("Итоговая оценка: %.2f", report.OverallScore), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 8, fmt.Sprintf("Решение: %s", report.FinalDecision), "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 12)
	if report.FinalNotes != "" {
		pdf.MultiCell(0, 8, fmt.Sprintf("Комментарий: %s", report.FinalNotes), "", "L", false)
	}
	if report.DecisionMaker != "" && report.DecisionMadeAt != nil {
		pdf.CellFormat(0, 8, fmt.Sprintf("Решение принял: %s, %s", report.DecisionMaker, report.DecisionMadeAt.Format("02.01.2006")), "", 1, "L", false, 0, "")
	}

	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
