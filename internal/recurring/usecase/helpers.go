package usecase

import (
	"time"

	"agency-content-ops/internal/model"
	"agency-content-ops/internal/recurring"
	"agency-content-ops/pkg/recurrence"
)

// specFromTemplate maps a stored template to a recurrence spec.
func specFromTemplate(t model.RecurringTask) recurrence.Spec {
	return recurrence.Spec{
		Frequency:        string(t.Frequency),
		DayOfWeek:        t.DayOfWeek,
		DayOfMonth:       t.DayOfMonth,
		IsActive:         t.IsActive,
		NextGenerationAt: t.NextGenerationAt,
	}
}

// newTemplateView attaches the computed description and next run to a
// template.
func newTemplateView(t model.RecurringTask, now time.Time) recurring.TemplateView {
	return recurring.TemplateView{
		Template:    t,
		Description: recurrence.Describe(string(t.Frequency), t.DayOfWeek, t.DayOfMonth),
		NextRun:     recurrence.Next(specFromTemplate(t), now),
	}
}

// validFrequency reports whether the value is a recognized frequency.
func validFrequency(frequency string) bool {
	switch model.Frequency(frequency) {
	case model.FrequencyDaily, model.FrequencyWeekly, model.FrequencyBiweekly, model.FrequencyMonthly:
		return true
	default:
		return false
	}
}
