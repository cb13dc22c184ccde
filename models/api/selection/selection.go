package selectionapimodels

import (
	"time"

	dbmodels "recruitment-backend/models/db"
)

// Decision решение ревьюера по текущему этапу отбора
type Decision struct {
	Result      string     `json:"result"`                 // pass/reject
	Score       *float64   `json:"score,omitempty"`        // оценка этапа
	Notes       string     `json:"notes,omitempty"`        // комментарий, обязателен при отклонении
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"` // время собеседования для следующего этапа
	ResourceURL string     `json:"resource_url,omitempty"` // ссылка на встречу
}

type StageHistoryView struct {
	ID          string     `json:"id"`
	StatusCode  string     `json:"status_code"`
	StatusName  string     `json:"status_name"`
	Score       *float64   `json:"score,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	ProcessedAt time.Time  `json:"processed_at"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
	ResourceURL string     `json:"resource_url,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	Reviewer    string     `json:"reviewer,omitempty"`
	ReviewedAt  *time.Time `json:"reviewed_at,omitempty"`
	IsActive    bool       `json:"is_active"`
}

func Convert(rec dbmodels.StageHistory) StageHistoryView {
	view := StageHistoryView{
		ID:          rec.ID,
		Score:       rec.Score,
		Notes:       rec.Notes,
		ProcessedAt: rec.ProcessedAt,
		ScheduledAt: rec.ScheduledAt,
		ResourceURL: rec.ResourceURL,
		CompletedAt: rec.CompletedAt,
		ReviewedAt:  rec.ReviewedAt,
		IsActive:    rec.IsActive,
	}
	if rec.Status != nil {
		view.StatusCode = string(rec.Status.Code)
		view.StatusName = rec.Status.Name
	}
	if rec.Reviewer != nil {
		view.Reviewer = rec.Reviewer.GetFullName()
	}
	return view
}

type ApplicationView struct {
	ID         string `json:"id"`
	Applicant  string `json:"applicant,omitempty"`
	Vacancy    string `json:"vacancy,omitempty"`
	StatusCode string `json:"status_code"`
	StatusName string `json:"status_name"`
}

func ConvertApplication(rec dbmodels.Application) ApplicationView {
	view := ApplicationView{
		ID: rec.ID,
	}
	if rec.Applicant != nil {
		view.Applicant = rec.Applicant.GetFIO()
	}
	if rec.Vacancy != nil {
		view.Vacancy = rec.Vacancy.VacancyName
	}
	if rec.Status != nil {
		view.StatusCode = string(rec.Status.Code)
		view.StatusName = rec.Status.Name
	}
	return view
}
