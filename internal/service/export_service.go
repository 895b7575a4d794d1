package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/guidance-schedule-api/internal/models"
	appErrors "github.com/noah-isme/guidance-schedule-api/pkg/errors"
	"github.com/noah-isme/guidance-schedule-api/pkg/export"
)

// Supported export formats.
const (
	ExportFormatCSV = "csv"
	ExportFormatPDF = "pdf"
	ExportFormatICS = "ics"
)

const opExport = "export"

type scheduleEntrySource interface {
	Entries(ctx context.Context, id string) ([]models.ScheduleEntry, error)
}

// ExportConfig tunes rendered documents.
type ExportConfig struct {
	SessionDuration time.Duration
	EventSummary    string
	DocumentTitle   string
	Location        *time.Location
}

// ExportFile is a rendered download.
type ExportFile struct {
	Filename    string
	ContentType string
	Body        []byte
}

// ExportService renders a session's schedule as CSV, PDF or iCalendar.
type ExportService struct {
	source  scheduleEntrySource
	csv     *export.CSVExporter
	pdf     *export.PDFExporter
	ics     *export.ICSExporter
	cfg     ExportConfig
	clock   Clock
	logger  *zap.Logger
	metrics *MetricsService
}

// NewExportService wires the exporters.
func NewExportService(source scheduleEntrySource, ics *export.ICSExporter, cfg ExportConfig, clock Clock, logger *zap.Logger, metrics *MetricsService) *ExportService {
	if clock == nil {
		clock = time.Now
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if ics == nil {
		ics = export.NewICSExporter("")
	}
	if cfg.SessionDuration <= 0 {
		cfg.SessionDuration = time.Hour
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	return &ExportService{
		source:  source,
		csv:     export.NewCSVExporter(),
		pdf:     export.NewPDFExporter(),
		ics:     ics,
		cfg:     cfg,
		clock:   clock,
		logger:  logger,
		metrics: metrics,
	}
}

// Export renders the session's entries in the requested format. An empty
// format means CSV.
func (s *ExportService) Export(ctx context.Context, sessionID, format string) (*ExportFile, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = ExportFormatCSV
	}

	entries, err := s.source.Entries(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	var file *ExportFile
	switch format {
	case ExportFormatCSV:
		file, err = s.renderCSV(entries)
	case ExportFormatPDF:
		file, err = s.renderPDF(entries)
	case ExportFormatICS:
		file, err = s.renderICS(sessionID, entries)
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", format))
	}
	s.metrics.ObserveScheduleOperation(opExport, err)
	if err != nil {
		s.logger.Error("schedule export failed", zap.String("session_id", sessionID), zap.String("format", format), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
	}

	s.logger.Info("schedule exported",
		zap.String("session_id", sessionID),
		zap.String("format", format),
		zap.Int("entries", len(entries)),
		zap.Int("bytes", len(file.Body)),
	)
	return file, nil
}

func (s *ExportService) renderCSV(entries []models.ScheduleEntry) (*ExportFile, error) {
	body, err := s.csv.Render(export.ScheduleDataset(rowsFor(entries)))
	if err != nil {
		return nil, err
	}
	return &ExportFile{Filename: "guidance-schedule.csv", ContentType: "text/csv; charset=utf-8", Body: body}, nil
}

func (s *ExportService) renderPDF(entries []models.ScheduleEntry) (*ExportFile, error) {
	body, err := s.pdf.Render(export.ScheduleDataset(rowsFor(entries)), s.cfg.DocumentTitle, s.clock())
	if err != nil {
		return nil, err
	}
	return &ExportFile{Filename: "guidance-schedule.pdf", ContentType: "application/pdf", Body: body}, nil
}

func (s *ExportService) renderICS(sessionID string, entries []models.ScheduleEntry) (*ExportFile, error) {
	events := make([]export.CalendarEvent, 0, len(entries))
	for i, entry := range entries {
		start := entry.StartsAt(s.cfg.Location)
		events = append(events, export.CalendarEvent{
			UID:         entryUID(sessionID, i, entry),
			Summary:     s.cfg.EventSummary,
			Description: FormatDisplay(entry),
			Start:       start,
			End:         start.Add(s.cfg.SessionDuration),
		})
	}
	body, err := s.ics.Render(events, s.clock())
	if err != nil {
		return nil, err
	}
	return &ExportFile{Filename: "guidance-schedule.ics", ContentType: "text/calendar; charset=utf-8", Body: body}, nil
}

// entryUID stays the same while an entry keeps both its position and value.
func entryUID(sessionID string, index int, entry models.ScheduleEntry) string {
	name := fmt.Sprintf("%s/%d/%s", sessionID, index, FormatDisplay(entry))
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(name)).String()
}

func rowsFor(entries []models.ScheduleEntry) []export.ScheduleRow {
	rows := make([]export.ScheduleRow, len(entries))
	for i, entry := range entries {
		rows[i] = export.ScheduleRow{
			Weekday: entry.StartsAt(time.UTC).Weekday().String(),
			Date:    entry.Date.String(),
			Time:    entry.Time.String(),
			Display: FormatDisplay(entry),
		}
	}
	return rows
}
