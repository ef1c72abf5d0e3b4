package service

import (
	"fmt"
	"math"
	"time"

	"github.com/noah-isme/study-planner-api/internal/models"
)

// Phase budget fractions are fixed constants of the allocation design.
const (
	conceptFraction  = 0.60
	practiceFraction = 0.25
	revisionFraction = 0.15

	practiceStartFraction = 0.60
	revisionStartFraction = 0.85

	mockTestMinutes = 180
	maxConceptHours = 3.0
)

// PhaseForPosition maps a position within the plan's date span, expressed as
// a percentage, onto the preparation phase active at that point.
func PhaseForPosition(percent float64) models.Phase {
	switch {
	case percent < practiceStartFraction*100:
		return models.PhaseConcept
	case percent < revisionStartFraction*100:
		return models.PhasePractice
	default:
		return models.PhaseRevision
	}
}

// effectiveDays counts usable study days. Without weekends each full week
// contributes five days and the partial final week keeps its weekdays
// instead of being truncated away.
func effectiveDays(totalDays int, includeWeekends bool) int {
	if includeWeekends {
		return totalDays
	}
	remainder := totalDays % 7
	if remainder > 5 {
		remainder = 5
	}
	return (totalDays/7)*5 + remainder
}

type generationResult struct {
	Days     []models.Day
	Metadata models.PlanMetadata
}

// buildSchedule runs the three-phase allocation, assembles the day list and
// applies a single load-balancing pass.
func buildSchedule(exam models.Exam, cfg models.UserConfig, tolerance float64) generationResult {
	start, _ := cfg.Start()
	effective := effectiveDays(cfg.TotalDays, cfg.IncludeWeekends)
	totalHours := float64(effective) * cfg.HoursPerDay

	conceptHours := totalHours * conceptFraction
	practiceHours := totalHours * practiceFraction
	revisionHours := totalHours * revisionFraction

	var days []models.Day
	days = append(days, conceptPhase(exam, cfg, start, conceptHours)...)
	days = append(days, practicePhase(exam, cfg, start, practiceHours)...)
	days = append(days, revisionPhase(exam, cfg, start, revisionHours)...)

	days = mergeDays(days)
	days, moved, overloaded := balanceLoad(days, cfg.HoursPerDay, tolerance)

	return generationResult{
		Days: days,
		Metadata: models.PlanMetadata{
			TotalDays:      cfg.TotalDays,
			EffectiveDays:  effective,
			TotalHours:     totalHours,
			ConceptHours:   conceptHours,
			PracticeHours:  practiceHours,
			RevisionHours:  revisionHours,
			SubjectsCount:  len(exam.Subjects),
			ModulesCount:   exam.TotalModules(),
			TasksMoved:     moved,
			OverloadedDays: overloaded,
		},
	}
}

// conceptPhase allocates subjects sequentially by weight share. Each subject
// day carries one module task capped at three hours.
func conceptPhase(exam models.Exam, cfg models.UserConfig, start time.Time, conceptHours float64) []models.Day {
	totalWeight := exam.TotalWeight()
	duration := int(math.Min(cfg.HoursPerDay*0.6, maxConceptHours) * 60)

	var days []models.Day
	offset := 0
	for _, subject := range exam.Subjects {
		subjectHours := (subject.Weight / totalWeight) * conceptHours
		daysForSubject := int(math.Ceil(subjectHours / cfg.HoursPerDay))
		if daysForSubject < 1 {
			daysForSubject = 1
		}
		topicsPerDay := int(math.Ceil(float64(subject.TotalModules) / float64(daysForSubject)))

		for day := 0; day < daysForSubject; day++ {
			date := start.AddDate(0, 0, offset).Format(models.DateLayout)
			days = append(days, models.Day{
				Date:  date,
				Phase: models.PhaseConcept,
				Tasks: []models.Task{{
					ID:          taskID(models.TaskTypeStudy, date, subject.Name),
					Title:       fmt.Sprintf("%s - Module %d", subject.Name, day+1),
					Subject:     subject.Name,
					Type:        models.TaskTypeStudy,
					Priority:    models.PriorityHigh,
					Duration:    duration,
					Description: "Learn new concepts and theories",
					Topics:      topicSlice(subject.Topics, day*topicsPerDay, (day+1)*topicsPerDay),
					Resources:   subject.ReferenceBooks,
				}},
			})
			offset++
		}
	}
	return days
}

// practicePhase cycles subjects round-robin from 60% of the span.
func practicePhase(exam models.Exam, cfg models.UserConfig, start time.Time, practiceHours float64) []models.Day {
	base := start.AddDate(0, 0, int(math.Floor(float64(cfg.TotalDays)*practiceStartFraction)))
	practiceDays := int(math.Ceil(practiceHours / cfg.HoursPerDay))
	duration := int(cfg.HoursPerDay * 0.8 * 60)

	var days []models.Day
	for day := 0; day < practiceDays; day++ {
		subject := exam.Subjects[day%len(exam.Subjects)]
		date := base.AddDate(0, 0, day).Format(models.DateLayout)
		days = append(days, models.Day{
			Date:  date,
			Phase: models.PhasePractice,
			Tasks: []models.Task{{
				ID:          taskID(models.TaskTypePractice, date, subject.Name),
				Title:       subject.Name + " Practice Session",
				Subject:     subject.Name,
				Type:        models.TaskTypePractice,
				Priority:    models.PriorityMedium,
				Duration:    duration,
				Description: "Solve problems and case studies",
			}},
		})
	}
	return days
}

// revisionPhase starts at 85% of the span. Every third day is a full mock
// test, the rest are single-subject revision sessions.
func revisionPhase(exam models.Exam, cfg models.UserConfig, start time.Time, revisionHours float64) []models.Day {
	base := start.AddDate(0, 0, int(math.Floor(float64(cfg.TotalDays)*revisionStartFraction)))
	revisionDays := int(math.Ceil(revisionHours / cfg.HoursPerDay))
	duration := int(cfg.HoursPerDay * 0.7 * 60)

	sections := make([]string, 0, len(exam.Subjects))
	for _, subject := range exam.Subjects {
		sections = append(sections, subject.Name)
	}

	var days []models.Day
	for day := 0; day < revisionDays; day++ {
		date := base.AddDate(0, 0, day).Format(models.DateLayout)
		if day%3 == 0 {
			days = append(days, models.Day{
				Date:  date,
				Phase: models.PhaseMockTest,
				Tasks: []models.Task{{
					ID:          taskID(models.TaskTypeTest, date, "full-syllabus"),
					Title:       fmt.Sprintf("Full Length Mock Test %d", day/3+1),
					Subject:     "Full Syllabus",
					Type:        models.TaskTypeTest,
					Priority:    models.PriorityVeryHigh,
					Duration:    mockTestMinutes,
					Description: "Simulate actual exam conditions",
					Topics:      sections,
				}},
			})
			continue
		}
		subject := exam.Subjects[day%len(exam.Subjects)]
		days = append(days, models.Day{
			Date:  date,
			Phase: models.PhaseRevision,
			Tasks: []models.Task{{
				ID:          taskID(models.TaskTypeRevision, date, subject.Name),
				Title:       subject.Name + " Revision",
				Subject:     subject.Name,
				Type:        models.TaskTypeRevision,
				Priority:    models.PriorityHigh,
				Duration:    duration,
				Description: "Review key concepts and formulas",
				Topics:      topicSlice(subject.Topics, 0, 3),
			}},
		})
	}
	return days
}

// mergeDays sorts by date and folds entries sharing a date into one Day.
// The merged day keeps the phase of the earliest-generated entry.
func mergeDays(days []models.Day) []models.Day {
	models.SortDays(days)
	var merged []models.Day
	for _, day := range days {
		if n := len(merged); n > 0 && merged[n-1].Date == day.Date {
			merged[n-1].Tasks = append(merged[n-1].Tasks, day.Tasks...)
			continue
		}
		merged = append(merged, day)
	}
	return merged
}

// balanceLoad runs the single redistribution pass. Days over the tolerance
// threshold shed low and medium priority tasks onto the next calendar day,
// creating a Buffer day when that date is absent. Days identified as
// overloaded up front are processed once; the pass does not re-check the
// days it spills into.
func balanceLoad(days []models.Day, hoursPerDay, tolerance float64) (result []models.Day, moved, overloaded int) {
	threshold := int(hoursPerDay * 60 * tolerance)
	budget := int(hoursPerDay * 60)

	overloadedDates := make([]string, 0)
	for _, day := range days {
		if day.TotalDuration() > threshold {
			overloadedDates = append(overloadedDates, day.Date)
		}
	}
	overloaded = len(overloadedDates)

	for _, date := range overloadedDates {
		idx := dayIndex(days, date)
		if idx < 0 {
			continue
		}
		overloadMinutes := days[idx].TotalDuration() - budget
		maxMoves := int(math.Ceil(float64(overloadMinutes) / 60.0 / 2.0))
		if maxMoves <= 0 {
			continue
		}

		var movable []string
		for _, task := range days[idx].Tasks {
			if task.Priority.Movable() {
				movable = append(movable, task.ID)
			}
		}
		if len(movable) > maxMoves {
			movable = movable[:maxMoves]
		}

		next, err := time.Parse(models.DateLayout, date)
		if err != nil {
			continue
		}
		nextDate := next.AddDate(0, 0, 1).Format(models.DateLayout)

		for _, id := range movable {
			days = shiftTask(days, idx, id, nextDate)
			moved++
			idx = dayIndex(days, date)
			if idx < 0 {
				break
			}
		}
	}
	return days, moved, overloaded
}

// shiftTask moves one task from the day at fromIdx to toDate, appending a
// Buffer day when toDate is not scheduled yet.
func shiftTask(days []models.Day, fromIdx int, taskID, toDate string) []models.Day {
	var task models.Task
	found := false
	tasks := days[fromIdx].Tasks[:0]
	for _, t := range days[fromIdx].Tasks {
		if !found && t.ID == taskID {
			task = t
			found = true
			continue
		}
		tasks = append(tasks, t)
	}
	if !found {
		return days
	}
	days[fromIdx].Tasks = tasks

	if target := dayIndex(days, toDate); target >= 0 {
		days[target].Tasks = append(days[target].Tasks, task)
		return days
	}
	days = append(days, models.Day{
		Date:  toDate,
		Phase: models.PhaseBuffer,
		Tasks: []models.Task{task},
	})
	models.SortDays(days)
	return days
}

func dayIndex(days []models.Day, date string) int {
	for i, day := range days {
		if day.Date == date {
			return i
		}
	}
	return -1
}

func topicSlice(topics []string, from, to int) []string {
	if from >= len(topics) {
		return nil
	}
	if to > len(topics) {
		to = len(topics)
	}
	return append([]string(nil), topics[from:to]...)
}

func taskID(kind models.TaskType, date, subject string) string {
	return fmt.Sprintf("%s-%s-%s", kind, date, slugify(subject))
}

func slugify(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			out = append(out, r)
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
		case r == ' ' || r == '-' || r == '_':
			out = append(out, '-')
		}
	}
	return string(out)
}

// recommendationsFor derives deterministic advisory entries from the
// configuration and syllabus.
func recommendationsFor(exam models.Exam, cfg models.UserConfig) []models.Recommendation {
	var recs []models.Recommendation
	if cfg.HoursPerDay < 4 {
		recs = append(recs, models.Recommendation{
			Type:     "warning",
			Title:    "Low Study Hours",
			Message:  fmt.Sprintf("Consider increasing study hours from %g to at least 4 hours per day for better results.", cfg.HoursPerDay),
			Priority: models.PriorityMedium,
		})
	}
	if cfg.HoursPerDay > 8 {
		recs = append(recs, models.Recommendation{
			Type:     "warning",
			Title:    "High Study Hours",
			Message:  fmt.Sprintf("%g hours per day is intensive. Make sure to include breaks and rest days to avoid burnout.", cfg.HoursPerDay),
			Priority: models.PriorityHigh,
		})
	}
	for _, subject := range exam.Subjects {
		if subject.Weight >= 150 {
			recs = append(recs, models.Recommendation{
				Type:     "suggestion",
				Title:    "Focus on " + subject.Name,
				Message:  fmt.Sprintf("%s has high weightage (%g marks). Allocate extra time and practice.", subject.Name, subject.Weight),
				Priority: models.PriorityHigh,
			})
		}
	}
	recs = append(recs, models.Recommendation{
		Type:     "tip",
		Title:    "Spaced Repetition",
		Message:  "The schedule includes spaced revision cycles for better retention. Review concepts at increasing intervals.",
		Priority: models.PriorityLow,
	})
	return recs
}

// predictPerformance scores the configuration on a fixed heuristic scale,
// clamped to 40..95. A zero target score is treated as the 85 baseline so
// the multiplier stays neutral.
func predictPerformance(cfg models.UserConfig) models.PerformancePrediction {
	base := 60.0
	base += (cfg.HoursPerDay - 4) * 2.5

	daysPerWeek := 5.0
	if cfg.IncludeWeekends {
		daysPerWeek = 7.0
	}
	effective := math.Floor(float64(cfg.TotalDays)/7) * daysPerWeek
	base += (effective - 30) * 0.1

	multiplier := 1.0
	switch cfg.Difficulty {
	case models.DifficultyEasy:
		multiplier = 0.9
	case models.DifficultyHard:
		multiplier = 1.1
	case models.DifficultyExtreme:
		multiplier = 1.2
	}

	target := float64(cfg.TargetScore)
	if target == 0 {
		target = 85
	}

	predicted := base * multiplier * (target / 85)
	predicted = math.Max(40, math.Min(95, predicted))

	confidence := 75
	if cfg.TotalDays >= 90 {
		confidence += 10
	}
	if cfg.HoursPerDay >= 6 {
		confidence += 10
	}
	if cfg.Difficulty == models.DifficultyHard || cfg.Difficulty == models.DifficultyExtreme {
		confidence -= 5
	}
	if confidence > 95 {
		confidence = 95
	}

	weeks := float64(cfg.TotalDays) / 7
	weeklyTarget := 0
	if weeks > 0 {
		weeklyTarget = int(math.Round(predicted / weeks))
	}

	return models.PerformancePrediction{
		PredictedScore:   int(math.Round(predicted)),
		Confidence:       confidence,
		WeeklyTarget:     weeklyTarget,
		ImprovementAreas: improvementAreas(cfg),
	}
}

func improvementAreas(cfg models.UserConfig) []string {
	var areas []string
	if cfg.HoursPerDay < 4 {
		areas = append(areas, "Increase daily study hours")
	}
	if !cfg.IncludeWeekends {
		areas = append(areas, "Consider studying on weekends for faster progress")
	}
	if cfg.Difficulty == models.DifficultyEasy {
		areas = append(areas, "Challenge yourself with more difficult practice problems")
	}
	return areas
}
