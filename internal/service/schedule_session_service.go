package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/guidance-schedule-api/internal/dto"
	"github.com/noah-isme/guidance-schedule-api/internal/models"
	appErrors "github.com/noah-isme/guidance-schedule-api/pkg/errors"
)

// Operation labels used for logging and metrics.
const (
	OpBeginAdd    = "begin_add"
	OpSelectEntry = "select_entry"
	OpBeginEdit   = "begin_edit"
	OpProposeDate = "propose_date"
	OpProposeTime = "propose_time"
	OpDeleteEntry = "delete_entry"
	OpDismiss     = "dismiss"
	OpImport      = "import"
)

// ScheduleSessionConfig tunes the session service.
type ScheduleSessionConfig struct {
	Hours   WorkingHours
	IdleTTL time.Duration
}

type scheduleSession struct {
	manager  *ScheduleManager
	lastSeen time.Time
}

// ScheduleSessionService keeps one ScheduleManager per open schedule screen.
// Events for all sessions are serialized through a single lock.
type ScheduleSessionService struct {
	mu       sync.Mutex
	sessions map[string]*scheduleSession

	hours     WorkingHours
	idleTTL   time.Duration
	clock     Clock
	validator *validator.Validate
	logger    *zap.Logger
	metrics   *MetricsService
}

// NewScheduleSessionService instantiates ScheduleSessionService.
func NewScheduleSessionService(cfg ScheduleSessionConfig, clock Clock, validate *validator.Validate, logger *zap.Logger, metrics *MetricsService) *ScheduleSessionService {
	if clock == nil {
		clock = time.Now
	}
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScheduleSessionService{
		sessions:  make(map[string]*scheduleSession),
		hours:     cfg.Hours,
		idleTTL:   cfg.IdleTTL,
		clock:     clock,
		validator: validate,
		logger:    logger,
		metrics:   metrics,
	}
}

// Open starts an empty schedule screen.
func (s *ScheduleSessionService) Open(ctx context.Context) (*models.ScheduleView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.evictIdle()
	id := uuid.NewString()
	sess := &scheduleSession{
		manager:  NewScheduleManager(s.hours, s.clock),
		lastSeen: s.clock(),
	}
	s.sessions[id] = sess
	s.metrics.SetActiveSessions(len(s.sessions))
	s.logger.Info("schedule session opened", zap.String("session_id", id), zap.Stringer("working_hours", s.hours))

	view := renderSession(id, sess)
	return &view, nil
}

// Get re-renders a session without changing it.
func (s *ScheduleSessionService) Get(ctx context.Context, id string) (*models.ScheduleView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	view := renderSession(id, sess)
	return &view, nil
}

// Entries returns a copy of a session's entries.
func (s *ScheduleSessionService) Entries(ctx context.Context, id string) ([]models.ScheduleEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	return sess.manager.Entries(), nil
}

// Close discards a session.
func (s *ScheduleSessionService) Close(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.lookup(id); err != nil {
		return err
	}
	delete(s.sessions, id)
	s.metrics.SetActiveSessions(len(s.sessions))
	s.logger.Info("schedule session closed", zap.String("session_id", id))
	return nil
}

// BeginAdd opens the date picker for a new entry.
func (s *ScheduleSessionService) BeginAdd(ctx context.Context, id string) (*models.ScheduleView, error) {
	return s.apply(id, OpBeginAdd, func(m *ScheduleManager) error {
		m.BeginAdd()
		return nil
	})
}

// SelectEntry opens the action menu for a card.
func (s *ScheduleSessionService) SelectEntry(ctx context.Context, id string, index int) (*models.ScheduleView, error) {
	return s.apply(id, OpSelectEntry, func(m *ScheduleManager) error {
		return m.SelectEntry(index)
	})
}

// BeginEdit starts re-editing an entry.
func (s *ScheduleSessionService) BeginEdit(ctx context.Context, id string, index int) (*models.ScheduleView, error) {
	return s.apply(id, OpBeginEdit, func(m *ScheduleManager) error {
		return m.BeginEdit(index)
	})
}

// ProposeDate submits the date picker value.
func (s *ScheduleSessionService) ProposeDate(ctx context.Context, id string, req dto.ProposeDateRequest) (*models.ScheduleView, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid date payload")
	}
	d, err := models.ParseDate(req.Date)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid date payload")
	}
	return s.apply(id, OpProposeDate, func(m *ScheduleManager) error {
		return m.ProposeDate(d)
	})
}

// ProposeTime submits the time picker value and commits the entry.
func (s *ScheduleSessionService) ProposeTime(ctx context.Context, id string, req dto.ProposeTimeRequest) (*models.ScheduleView, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid time payload")
	}
	t := models.TimeOfDay{Hour: *req.Hour, Minute: *req.Minute}
	return s.apply(id, OpProposeTime, func(m *ScheduleManager) error {
		return m.ProposeTime(t)
	})
}

// DeleteEntry removes a card.
func (s *ScheduleSessionService) DeleteEntry(ctx context.Context, id string, index int) (*models.ScheduleView, error) {
	return s.apply(id, OpDeleteEntry, func(m *ScheduleManager) error {
		return m.DeleteEntry(index)
	})
}

// Dismiss closes the open picker or menu.
func (s *ScheduleSessionService) Dismiss(ctx context.Context, id string) (*models.ScheduleView, error) {
	return s.apply(id, OpDismiss, func(m *ScheduleManager) error {
		m.Dismiss()
		return nil
	})
}

// Import appends entries given as card labels.
func (s *ScheduleSessionService) Import(ctx context.Context, id string, req dto.ImportDisplayRequest) (*models.ScheduleView, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid import payload")
	}
	return s.apply(id, OpImport, func(m *ScheduleManager) error {
		return m.ImportDisplay(req.Lines)
	})
}

// ActiveSessions reports how many sessions are open.
func (s *ScheduleSessionService) ActiveSessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *ScheduleSessionService) apply(id, operation string, fn func(m *ScheduleManager) error) (*models.ScheduleView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	opErr := fn(sess.manager)
	s.metrics.ObserveScheduleOperation(operation, opErr)
	if opErr != nil {
		return nil, s.translate(id, operation, opErr)
	}

	s.logger.Debug("schedule operation applied",
		zap.String("session_id", id),
		zap.String("operation", operation),
		zap.Int("entries", sess.manager.Len()),
	)
	view := renderSession(id, sess)
	return &view, nil
}

// lookup must be called with s.mu held.
func (s *ScheduleSessionService) lookup(id string) (*scheduleSession, error) {
	now := s.clock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "schedule session not found")
	}
	if s.expired(sess, now) {
		delete(s.sessions, id)
		s.metrics.SetActiveSessions(len(s.sessions))
		s.logger.Info("schedule session expired", zap.String("session_id", id))
		return nil, appErrors.Clone(appErrors.ErrNotFound, "schedule session expired")
	}
	sess.lastSeen = now
	return sess, nil
}

func (s *ScheduleSessionService) evictIdle() {
	now := s.clock()
	evicted := 0
	for id, sess := range s.sessions {
		if s.expired(sess, now) {
			delete(s.sessions, id)
			evicted++
		}
	}
	if evicted > 0 {
		s.metrics.SetActiveSessions(len(s.sessions))
		s.logger.Info("schedule sessions evicted", zap.Int("count", evicted))
	}
}

func (s *ScheduleSessionService) expired(sess *scheduleSession, now time.Time) bool {
	return s.idleTTL > 0 && now.Sub(sess.lastSeen) > s.idleTTL
}

func (s *ScheduleSessionService) translate(id, operation string, err error) error {
	var rej *RejectionError
	if !errors.As(err, &rej) {
		s.logger.Error("schedule operation failed", zap.String("session_id", id), zap.String("operation", operation), zap.Error(err))
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}

	s.logger.Debug("schedule operation rejected",
		zap.String("session_id", id),
		zap.String("operation", operation),
		zap.String("reason", string(rej.Reason)),
		zap.String("detail", rej.Detail),
	)

	var base *appErrors.Error
	switch rej.Reason {
	case ReasonInvalidDate:
		base = appErrors.ErrInvalidDate
	case ReasonInvalidTime:
		base = appErrors.ErrInvalidTime
	case ReasonNoPendingDate:
		base = appErrors.ErrNoPendingDate
	case ReasonIndexOutOfRange:
		base = appErrors.ErrIndexOutOfRange
	case ReasonMalformedDisplay:
		base = appErrors.ErrMalformedDisplay
	default:
		base = appErrors.ErrValidation
	}
	return appErrors.Wrap(rej, base.Code, base.Status, base.Message)
}

func renderSession(id string, sess *scheduleSession) models.ScheduleView {
	view := sess.manager.View()
	view.SessionID = id
	return view
}
