package audit

import (
	"context"
	"sort"
	"sync"

	"github.com/BruksfildServices01/salon-booking/internal/models"
)

// MemorySink guarda os eventos em memória (STORE=memory e testes).
type MemorySink struct {
	mu   sync.Mutex
	logs []models.AuditLog
}

var (
	_ Sink   = (*MemorySink)(nil)
	_ Lister = (*MemorySink)(nil)
)

func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

func (s *MemorySink) Write(_ context.Context, ev Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := toLog(ev)
	entry.ID = uint(len(s.logs) + 1)
	s.logs = append(s.logs, entry)
	return nil
}

func (s *MemorySink) List(_ context.Context, f Filter) ([]models.AuditLog, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []models.AuditLog
	for _, l := range s.logs {
		if f.Action != "" && l.Action != f.Action {
			continue
		}
		if f.Entity != "" && l.Entity != f.Entity {
			continue
		}
		if f.From != nil && l.CreatedAt.Before(*f.From) {
			continue
		}
		if f.To != nil && !l.CreatedAt.Before(*f.To) {
			continue
		}
		matched = append(matched, l)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	if f.Offset >= len(matched) {
		return []models.AuditLog{}, total, nil
	}
	matched = matched[f.Offset:]
	if f.Limit > 0 && f.Limit < len(matched) {
		matched = matched[:f.Limit]
	}
	return matched, total, nil
}

func (s *MemorySink) Events() []models.AuditLog {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.AuditLog, len(s.logs))
	copy(out, s.logs)
	return out
}
