// Package triage - статичный справочник первой помощи по категориям происшествий.
package triage

import (
	"fmt"
	"slices"
	"strings"

	"github.com/shenikar/emergency_alert_system/internal/models"
)

// DefaultCategory используется для неизвестных категорий
const DefaultCategory = "Other Emergency"

const quickActionCount = 3

// categories - порядок категорий для меню выбора
var categories = []string{
	"Medical Emergency",
	"Cardiac Emergency",
	"Accident/Trauma",
	"Respiratory Emergency",
	"Allergic Reaction",
	"Stroke",
	"Seizure",
	"Choking",
	"Burns",
	"Poisoning",
	DefaultCategory,
}

var (
	criticalTypes = []string{"Cardiac Emergency", "Stroke", "Choking", "Allergic Reaction"}
	seriousTypes  = []string{"Accident/Trauma", "Respiratory Emergency", "Seizure", "Burns"}
)

// Categories возвращает список известных категорий
func Categories() []string {
	return slices.Clone(categories)
}

// Known сообщает, есть ли категория в справочнике
func Known(category string) bool {
	_, ok := table[category]
	return ok
}

// Guidance возвращает копию инструкции для категории. Для неизвестной
// категории возвращается инструкция DefaultCategory.
func Guidance(category string) models.TriageGuidance {
	g, ok := table[category]
	if !ok {
		g = table[DefaultCategory]
	}
	return models.TriageGuidance{
		Steps:               slices.Clone(g.Steps),
		Warnings:            slices.Clone(g.Warnings),
		DoNots:              slices.Clone(g.DoNots),
		WhenToCallEmergency: slices.Clone(g.WhenToCallEmergency),
		AdditionalInfo:      g.AdditionalInfo,
	}
}

// Severity определяет срочность по фиксированным спискам категорий
func Severity(category string) models.Severity {
	switch {
	case slices.Contains(criticalTypes, category):
		return models.SeverityCritical
	case slices.Contains(seriousTypes, category):
		return models.SeveritySerious
	default:
		return models.SeverityModerate
	}
}

func ResponseTimeMessage(severity models.Severity) string {
	switch severity {
	case models.SeverityCritical:
		return "Emergency services typically respond within 8-15 minutes for critical emergencies."
	case models.SeveritySerious:
		return "Emergency services typically respond within 15-30 minutes for serious emergencies."
	default:
		return "Emergency services typically respond within 30-60 minutes for moderate emergencies."
	}
}

// QuickActions - первые три шага инструкции
func QuickActions(category string) []string {
	steps := Guidance(category).Steps
	if len(steps) > quickActionCount {
		steps = steps[:quickActionCount]
	}
	return steps
}

// FormatForSMS собирает короткую памятку для текста SMS
func FormatForSMS(category string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "EMERGENCY GUIDANCE: %s\n\n", category)
	b.WriteString("IMMEDIATE STEPS:\n")
	for i, step := range QuickActions(category) {
		fmt.Fprintf(&b, "%d. %s\n", i+1, step)
	}
	return b.String()
}
