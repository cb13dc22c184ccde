package reportapimodels

import (
	"time"

	dbmodels "recruitment-backend/models/db"
)

// FinalizeResult результат попытки агрегации оценок трех этапов
type FinalizeResult struct {
	Finalized    bool     `json:"finalized"`
	OverallScore *float64 `json:"overall_score,omitempty"`
}

// FinalDecisionRequest итоговое решение HR по отчету
type FinalDecisionRequest struct {
	Decision string `json:"decision"` // accepted/rejected
	Notes    string `json:"notes,omitempty"`
}

type ReportView struct {
	ID             string     `json:"id"`
	ApplicationID  string     `json:"application_id"`
	Applicant      string     `json:"applicant,omitempty"`
	Vacancy        string     `json:"vacancy,omitempty"`
	OverallScore   float64    `json:"overall_score"`
	FinalDecision  string     `json:"final_decision"`
	FinalNotes     string     `json:"final_notes,omitempty"`
	DecisionMaker  string     `json:"decision_maker,omitempty"`
	DecisionMadeAt *time.Time `json:"decision_made_at,omitempty"`
}

func Convert(rec dbmodels.ApplicationReport) ReportView {
	view := ReportView{
		ID:             rec.ID,
		ApplicationID:  rec.ApplicationID,
		OverallScore:   rec.OverallScore,
		FinalDecision:  string(rec.FinalDecision),
		FinalNotes:     rec.FinalNotes,
		DecisionMadeAt: rec.DecisionMadeAt,
	}
	if rec.Application != nil {
		if rec.Application.Applicant != nil {
			view.Applicant = rec.Application.Applicant.GetFIO()
		}
		if rec.Application.Vacancy != nil {
			view.Vacancy = rec.Application.Vacancy.VacancyName
		}
	}
	if rec.DecisionMaker != nil {
		view.DecisionMaker = rec.DecisionMaker.GetFullName()
	}
	return view
}
