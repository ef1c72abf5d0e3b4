package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/study-planner-api/internal/models"
	appErrors "github.com/noah-isme/study-planner-api/pkg/errors"
	"github.com/noah-isme/study-planner-api/pkg/export"
)

var csvHeaders = []string{"Date", "Phase", "Subject", "Task", "Type", "Priority", "Duration", "Status"}

var icalPriorities = map[models.TaskPriority]int{
	models.PriorityVeryHigh: 1,
	models.PriorityHigh:     3,
	models.PriorityMedium:   5,
	models.PriorityLow:      7,
}

// ExportFile is a rendered export ready for download.
type ExportFile struct {
	ContentType string
	Filename    string
	Body        []byte
}

// ExportService renders persisted plans into the supported download formats.
type ExportService struct {
	plans        planRepository
	csv          *export.CSVExporter
	pdf          *export.PDFExporter
	logger       *zap.Logger
	calendarName string
}

// NewExportService wires export dependencies.
func NewExportService(plans planRepository, logger *zap.Logger, calendarName string) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if calendarName == "" {
		calendarName = "Study Planner"
	}
	return &ExportService{
		plans:        plans,
		csv:          export.NewCSVExporter(),
		pdf:          export.NewPDFExporter(),
		logger:       logger,
		calendarName: calendarName,
	}
}

// Export renders the plan in the requested format.
func (s *ExportService) Export(ctx context.Context, planID, format string) (*ExportFile, error) {
	plan, err := s.plans.FindByID(ctx, planID)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(format) {
	case "json":
		body, err := ScheduleToJSON(plan.Days)
		if err != nil {
			return nil, err
		}
		return &ExportFile{ContentType: "application/json", Filename: planID + ".json", Body: body}, nil
	case "csv":
		body, err := s.renderCSV(plan.Days)
		if err != nil {
			return nil, err
		}
		return &ExportFile{ContentType: "text/csv", Filename: planID + ".csv", Body: body}, nil
	case "ical", "ics":
		return &ExportFile{
			ContentType: "text/calendar",
			Filename:    planID + ".ics",
			Body:        s.renderICal(plan.Days),
		}, nil
	case "pdf":
		body, err := s.renderPDF(plan)
		if err != nil {
			return nil, err
		}
		return &ExportFile{ContentType: "application/pdf", Filename: planID + ".pdf", Body: body}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrUnsupportedFormat, "unsupported export format "+format)
	}
}

// ScheduleToJSON serializes a schedule losslessly, pretty-printed.
func ScheduleToJSON(days []models.Day) ([]byte, error) {
	body, err := json.MarshalIndent(days, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schedule: %w", err)
	}
	return body, nil
}

// ScheduleFromJSON is the inverse of ScheduleToJSON.
func ScheduleFromJSON(body []byte) ([]models.Day, error) {
	var days []models.Day
	if err := json.Unmarshal(body, &days); err != nil {
		return nil, fmt.Errorf("unmarshal schedule: %w", err)
	}
	return days, nil
}

func (s *ExportService) scheduleDataset(days []models.Day) export.Dataset {
	data := export.Dataset{Headers: csvHeaders}
	for _, day := range days {
		for _, task := range day.Tasks {
			status := "Pending"
			if task.Completed {
				status = "Completed"
			}
			data.Rows = append(data.Rows, map[string]string{
				"Date":     day.Date,
				"Phase":    string(day.Phase),
				"Subject":  task.Subject,
				"Task":     task.Title,
				"Type":     string(task.Type),
				"Priority": string(task.Priority),
				"Duration": fmt.Sprintf("%d", task.Duration),
				"Status":   status,
			})
		}
	}
	return data
}

func (s *ExportService) renderCSV(days []models.Day) ([]byte, error) {
	return s.csv.Render(s.scheduleDataset(days))
}

func (s *ExportService) renderPDF(plan *models.StudyPlan) ([]byte, error) {
	title := fmt.Sprintf("Study Plan %s", plan.ExamID)
	return s.pdf.Render(s.scheduleDataset(plan.Days), title)
}

// renderICal emits one VEVENT per task. Events start at 09:00 UTC on the
// task's date and run for the task duration.
func (s *ExportService) renderICal(days []models.Day) []byte {
	var b strings.Builder
	writeLine := func(line string) {
		b.WriteString(line)
		b.WriteString("\r\n")
	}

	writeLine("BEGIN:VCALENDAR")
	writeLine("VERSION:2.0")
	writeLine("PRODID:-//" + s.calendarName + "//EN")
	writeLine("CALSCALE:GREGORIAN")

	for _, day := range days {
		start, err := time.Parse(models.DateLayout, day.Date)
		if err != nil {
			continue
		}
		start = time.Date(start.Year(), start.Month(), start.Day(), 9, 0, 0, 0, time.UTC)
		for _, task := range day.Tasks {
			end := start.Add(time.Duration(task.Duration) * time.Minute)
			description := task.Description
			if description == "" {
				description = "Study Session"
			}
			priority, ok := icalPriorities[task.Priority]
			if !ok {
				priority = 5
			}
			writeLine("BEGIN:VEVENT")
			writeLine("UID:" + task.ID + "@" + slugify(s.calendarName))
			writeLine("DTSTART:" + start.Format("20060102T150405Z"))
			writeLine("DTEND:" + end.Format("20060102T150405Z"))
			writeLine("SUMMARY:" + escapeICalText(task.Title))
			writeLine("DESCRIPTION:" + escapeICalText(description))
			writeLine(fmt.Sprintf("PRIORITY:%d", priority))
			writeLine("END:VEVENT")
		}
	}

	writeLine("END:VCALENDAR")
	return []byte(b.String())
}

// escapeICalText escapes the characters RFC 5545 treats as delimiters.
func escapeICalText(s string) string {
	replacer := strings.NewReplacer(
		"\\", "\\\\",
		";", "\\;",
		",", "\\,",
		"\n", "\\n",
	)
	return replacer.Replace(s)
}
