package testutil

import (
	"time"

	"github.com/ainara-edu/teksplan/internal/domain"
	"github.com/google/uuid"
)

// Plan options
type PlanOption func(*domain.LessonPlan)

func WithSubject(s string) PlanOption {
	return func(p *domain.LessonPlan) {
		p.Subject = s
	}
}

func WithGoals(standards ...string) PlanOption {
	return func(p *domain.LessonPlan) {
		p.OverarchingGoalsStandards = standards
	}
}

func WithActivities(activities ...domain.Activity) PlanOption {
	return func(p *domain.LessonPlan) {
		p.Activities = activities
	}
}

func WithNotes(n string) PlanOption {
	return func(p *domain.LessonPlan) {
		p.Notes = n
	}
}

func NewTestPlan(title string, opts ...PlanOption) domain.LessonPlan {
	p := domain.LessonPlan{
		Title:       title,
		Description: "A unit plan used in tests.",
		Subject:     "Science",
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// Activity options
type ActivityOption func(*domain.Activity)

func WithStandards(standards ...string) ActivityOption {
	return func(a *domain.Activity) {
		a.ActivityStandards = standards
	}
}

func WithAinaraActivities(aa ...domain.AinaraActivity) ActivityOption {
	return func(a *domain.Activity) {
		a.AinaraActivities = aa
	}
}

func NewTestActivity(title string, opts ...ActivityOption) domain.Activity {
	a := domain.Activity{
		Title:                 title,
		Timeframe:             "Day 1 (45 minutes)",
		StudentWillStatement:  "The student will investigate the topic.",
		AssignmentDescription: "Students complete a short investigation.",
		EvaluationCriteria: domain.Rubric{
			Score4Proficient:      "Exceeds all requirements.",
			Score3Developing:      "Meets all requirements.",
			Score2Beginning:       "Meets most requirements.",
			Score1NotYet:          "Meets some requirements.",
			Score0NoParticipation: "No attempt made.",
		},
	}
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

// Record options
type RecordOption func(*domain.PlanRecord)

func WithTimestamps(created, updated time.Time) RecordOption {
	return func(r *domain.PlanRecord) {
		r.CreatedAt = created
		r.UpdatedAt = updated
	}
}

func NewTestRecord(plan domain.LessonPlan, opts ...RecordOption) *domain.PlanRecord {
	now := time.Now().UTC().Truncate(time.Second)
	r := &domain.PlanRecord{
		ID:        uuid.New().String(),
		Plan:      plan,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}
