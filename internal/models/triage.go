package models

type Severity string

const (
	SeverityCritical Severity = "critical"
	SeveritySerious  Severity = "serious"
	SeverityModerate Severity = "moderate"
)

// TriageGuidance - статичная инструкция первой помощи для категории происшествия
type TriageGuidance struct {
	Steps               []string `json:"steps"`
	Warnings            []string `json:"warnings"`
	DoNots              []string `json:"do_nots"`
	WhenToCallEmergency []string `json:"when_to_call_emergency"`
	AdditionalInfo      string   `json:"additional_info,omitempty"`
}

// TriageReport - инструкция вместе с оценкой срочности для отображения клиенту
type TriageReport struct {
	Category     string         `json:"category"`
	Severity     Severity       `json:"severity"`
	ResponseTime string         `json:"response_time"`
	Guidance     TriageGuidance `json:"guidance"`
	QuickActions []string       `json:"quick_actions"`
	SMSText      string         `json:"sms_text"`
}
