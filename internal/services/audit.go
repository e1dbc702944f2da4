package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-authgate/riskgate/internal/models"

	"github.com/google/uuid"
)

const auditBatchSize = 100

// AuditStore persists audit entries.
type AuditStore interface {
	CreateAuditLog(ctx context.Context, log *models.AuditLog) error
	CreateAuditLogBatch(ctx context.Context, logs []*models.AuditLog) error
}

// AuditLogger is what the authentication pipeline reports outcomes to.
type AuditLogger interface {
	Log(ctx context.Context, entry AuditLogEntry)
}

// AuditLogEntry represents the data needed to create an audit log entry
type AuditLogEntry struct {
	EventType models.EventType
	Severity  models.EventSeverity
	Email     string
	ActorIP   string
	Outcome   models.ResultKind
	RiskScore int
	Method    models.Method
	Success   bool
	Details   models.AuditDetails
}

// AuditService writes audit logs in batches from a background worker.
type AuditService struct {
	store      AuditStore
	enabled    bool
	bufferSize int

	logChan chan *models.AuditLog

	batchBuffer []*models.AuditLog
	batchMutex  sync.Mutex
	batchTicker *time.Ticker

	wg         sync.WaitGroup
	shutdownCh chan struct{}
	stopped    atomic.Bool
	dropped    atomic.Int64
}

// NewAuditService creates a new audit service
func NewAuditService(s AuditStore, enabled bool, bufferSize int) *AuditService {
	if bufferSize <= 0 {
		bufferSize = 1000
	}

	service := &AuditService{
		store:       s,
		enabled:     enabled,
		bufferSize:  bufferSize,
		logChan:     make(chan *models.AuditLog, bufferSize),
		batchBuffer: make([]*models.AuditLog, 0, auditBatchSize),
		batchTicker: time.NewTicker(1 * time.Second),
		shutdownCh:  make(chan struct{}),
	}

	if enabled {
		service.wg.Add(1)
		go service.worker()
		log.Printf("[Audit] Service started with buffer size %d", bufferSize)
	} else {
		service.batchTicker.Stop()
		log.Println("[Audit] Service is disabled")
	}

	return service
}

func (s *AuditService) worker() {
	defer s.wg.Done()

	for {
		select {
		case entry := <-s.logChan:
			s.addToBatch(entry)

		case <-s.batchTicker.C:
			s.flushBatch()

		case <-s.shutdownCh:
			// Drain whatever is still queued before the final flush
			for {
				select {
				case entry := <-s.logChan:
					s.addToBatch(entry)
				default:
					s.flushBatch()
					return
				}
			}
		}
	}
}

func (s *AuditService) addToBatch(entry *models.AuditLog) {
	s.batchMutex.Lock()
	defer s.batchMutex.Unlock()

	s.batchBuffer = append(s.batchBuffer, entry)
	if len(s.batchBuffer) >= auditBatchSize {
		s.flushBatchUnsafe()
	}
}

func (s *AuditService) flushBatch() {
	s.batchMutex.Lock()
	defer s.batchMutex.Unlock()
	s.flushBatchUnsafe()
}

// flushBatchUnsafe requires batchMutex.
func (s *AuditService) flushBatchUnsafe() {
	if len(s.batchBuffer) == 0 {
		return
	}

	toWrite := make([]*models.AuditLog, len(s.batchBuffer))
	copy(toWrite, s.batchBuffer)
	s.batchBuffer = s.batchBuffer[:0]

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.store.CreateAuditLogBatch(ctx, toWrite); err != nil {
		log.Printf("[Audit] Failed to write batch of %d: %v", len(toWrite), err)
	}
}

// Log records an audit log entry asynchronously. Entries are dropped when
// the buffer is full or the service has shut down.
func (s *AuditService) Log(_ context.Context, entry AuditLogEntry) {
	if !s.enabled || s.stopped.Load() {
		return
	}

	select {
	case s.logChan <- s.newAuditLog(entry):
	default:
		s.dropped.Add(1)
		log.Printf("[Audit] WARNING: buffer full, dropping %s event for %s", entry.EventType, entry.Email)
	}
}

// LogSync writes an entry immediately.
func (s *AuditService) LogSync(ctx context.Context, entry AuditLogEntry) error {
	if !s.enabled {
		return nil
	}
	return s.store.CreateAuditLog(ctx, s.newAuditLog(entry))
}

// Dropped returns how many entries were discarded because the buffer was full.
func (s *AuditService) Dropped() int64 {
	return s.dropped.Load()
}

func (s *AuditService) newAuditLog(entry AuditLogEntry) *models.AuditLog {
	now := time.Now()
	return &models.AuditLog{
		ID:        uuid.New().String(),
		EventType: entry.EventType,
		EventTime: now,
		Severity:  entry.Severity,
		Email:     entry.Email,
		ActorIP:   entry.ActorIP,
		Outcome:   entry.Outcome,
		RiskScore: entry.RiskScore,
		Method:    entry.Method,
		Success:   entry.Success,
		Details:   maskSensitiveDetails(entry.Details),
		CreatedAt: now,
	}
}

// Shutdown flushes queued entries and stops the worker.
func (s *AuditService) Shutdown(ctx context.Context) error {
	if !s.enabled || !s.stopped.CompareAndSwap(false, true) {
		return nil
	}

	s.batchTicker.Stop()
	close(s.shutdownCh)

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Println("[Audit] Service shut down gracefully")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("audit service shutdown timeout: %w", ctx.Err())
	}
}

// maskSensitiveDetails removes anything that could carry a credential.
func maskSensitiveDetails(details models.AuditDetails) models.AuditDetails {
	if details == nil {
		return nil
	}

	masked := make(models.AuditDetails, len(details))
	for key, value := range details {
		if isSensitiveField(key) {
			masked[key] = "***REDACTED***"
			continue
		}
		masked[key] = value
	}
	return masked
}

var sensitiveFields = []string{
	"password",
	"secret",
	"token",
	"mfa_code",
	"code",
}

func isSensitiveField(key string) bool {
	key = strings.ToLower(key)
	for _, field := range sensitiveFields {
		if strings.Contains(key, field) {
			return true
		}
	}
	return false
}
