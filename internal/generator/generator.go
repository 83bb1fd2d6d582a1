package generator

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"agency-content-ops/internal/model"
	"agency-content-ops/internal/recurring/repository"
	"agency-content-ops/pkg/gcalendar"
	"agency-content-ops/pkg/recurrence"
)

// Start registers the recurring generation job and starts the cron
// scheduler. It returns immediately; call Stop to shut down.
func (g *Generator) Start(ctx context.Context) error {
	spec := fmt.Sprintf("@every %s", g.interval)
	if _, err := g.cron.AddFunc(spec, func() {
		g.RunOnce(ctx)
	}); err != nil {
		g.l.Errorf(ctx, "generator.Start.AddFunc: %v", err)
		return err
	}

	g.cron.Start()
	g.l.Infof(ctx, "generation worker started, interval %s, timezone %s", g.interval, g.loc)
	return nil
}

// Stop halts the cron scheduler and waits for any running job to finish.
func (g *Generator) Stop() {
	<-g.cron.Stop().Done()
}

// RunOnce processes all templates that are due at the time of the call.
// Failures on one template do not block the rest.
func (g *Generator) RunOnce(ctx context.Context) {
	now := time.Now().In(g.loc)

	due, err := g.repo.ListDueRecurring(ctx, now)
	if err != nil {
		g.l.Errorf(ctx, "generator.RunOnce.ListDueRecurring: %v", err)
		return
	}
	if len(due) == 0 {
		return
	}

	g.l.Infof(ctx, "generating tasks for %d due templates", len(due))

	for _, tpl := range due {
		if err := g.generate(ctx, tpl, now); err != nil {
			g.l.Errorf(ctx, "generator.RunOnce.generate template %s: %v", tpl.ID, err)
		}
	}
}

// generate materializes one occurrence of a template, advances its next
// generation time, and optionally mirrors the task to Google Calendar.
func (g *Generator) generate(ctx context.Context, tpl model.RecurringTask, now time.Time) error {
	occurrence := occurrenceDate(tpl, now)

	task, err := g.repo.CreateGeneratedTask(ctx, repository.CreateGeneratedTaskOptions{
		RecurringTaskID: tpl.ID,
		WorkspaceID:     tpl.WorkspaceID,
		ClientID:        tpl.ClientID,
		Title:           tpl.Title,
		DueDate:         occurrence,
		IdempotencyKey:  idempotencyKey(tpl.ID, occurrence),
	})
	if err != nil {
		return err
	}

	next := recurrence.Next(recurrence.Spec{
		Frequency: string(tpl.Frequency),
		IsActive:  true,
	}, occurrence)
	if next.Status == recurrence.StatusScheduled {
		if err := g.repo.SetNextGeneration(ctx, tpl.WorkspaceID, tpl.ID, next.At); err != nil {
			return err
		}
	} else {
		g.l.Warnf(ctx, "template %s has frequency %q, next generation not advanced", tpl.ID, tpl.Frequency)
	}

	g.tryCreateCalendarEvent(ctx, tpl, task, occurrence)
	return nil
}

// occurrenceDate resolves the calendar day a generated task is due on: the
// stored next generation time when present, otherwise the current day.
func occurrenceDate(tpl model.RecurringTask, now time.Time) time.Time {
	if tpl.NextGenerationAt != nil {
		return *tpl.NextGenerationAt
	}
	return now
}

// idempotencyKey derives a stable key from the template and occurrence day
// so that a retried run cannot create the same task twice.
func idempotencyKey(templateID string, occurrence time.Time) string {
	seed := fmt.Sprintf("%s:%s", templateID, occurrence.Format("2006-01-02"))
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(seed)).String()
}

// tryCreateCalendarEvent mirrors a generated task to Google Calendar as an
// all-day event. Calendar failures are logged and never fail generation.
func (g *Generator) tryCreateCalendarEvent(ctx context.Context, tpl model.RecurringTask, task model.Task, occurrence time.Time) {
	if g.calendar == nil || g.calendarID == "" {
		return
	}

	event, err := g.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  g.calendarID,
		Summary:     task.Title,
		Description: fmt.Sprintf("Generated from recurring template %s", tpl.ID),
		Date:        occurrence,
		Timezone:    g.loc.String(),
	})
	if err != nil {
		g.l.Warnf(ctx, "calendar event for task %s not created: %v", task.ID, err)
		return
	}

	g.l.Infof(ctx, "calendar event %s created for task %s", event.ID, task.ID)
}
