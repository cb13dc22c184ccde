package models

import "strings"

// StatusCode код статуса отбора из справочника
type StatusCode string

const (
	StatusAdminSelection StatusCode = "admin_selection" // административный отбор
	StatusPsychotest     StatusCode = "psychotest"      // психологическое/профессиональное тестирование
	StatusInterview      StatusCode = "interview"       // собеседование
	StatusAccepted       StatusCode = "accepted"        // кандидат одобрен
	StatusRejected       StatusCode = "rejected"        // кандидат отклонен
	StatusHired          StatusCode = "hired"           // кандидат принят на работу
	StatusCompleted      StatusCode = "completed"       // отбор завершен
)

// StageGroup группа этапа, к которой относится статус
type StageGroup string

const (
	StageGroupAdministrative StageGroup = "administrative_selection"
	StageGroupPsychological  StageGroup = "psychological_test"
	StageGroupInterview      StageGroup = "interview"
	StageGroupTerminal       StageGroup = "terminal"
)

// SelectionStage этап отбора, по которому принимается решение
type SelectionStage string

const (
	StageAdministration SelectionStage = "administration"
	StagePsychotest     SelectionStage = "psychotest"
	StageInterview      SelectionStage = "interview"
	StageFinal          SelectionStage = "final" // финальное решение со страницы отчетов
)

// StageResult решение ревьюера по этапу
type StageResult string

const (
	ResultPass   StageResult = "pass"
	ResultReject StageResult = "reject"
)

// FinalDecision итоговое решение по отчету кандидата
type FinalDecision string

const (
	DecisionPending  FinalDecision = "pending"
	DecisionAccepted FinalDecision = "accepted"
	DecisionRejected FinalDecision = "rejected"
)

// ScoringMode способ оценки пакета вопросов, фиксируется при создании пакета
type ScoringMode string

const (
	ScoringModeAuto   ScoringMode = "auto"   // процент верных ответов
	ScoringModeManual ScoringMode = "manual" // оценку вручную проставляет ревьюер
)

// типы тестов, для которых автоматическая оценка не применяется
var manualTestTypes = []string{"psychological", "psychology", "psikologi", "general"}

// ScoringModeForTestType классифицирует тип теста в момент создания пакета вопросов
func ScoringModeForTestType(testType string) ScoringMode {
	normalized := strings.ToLower(strings.TrimSpace(testType))
	for _, manual := range manualTestTypes {
		if normalized == manual {
			return ScoringModeManual
		}
	}
	return ScoringModeAuto
}
