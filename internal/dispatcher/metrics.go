package dispatcher

import (
	"cmp"
	"slices"
	"sync"
	"time"

	"github.com/dshills/composable/internal/dispatcher/handler"
)

// CommandMetrics counts the top level dispatches of one command.
type CommandMetrics struct {
	Name          string
	DispatchCount uint64
	ErrorCount    uint64
	// TakenOver counts dispatches a pre-dispatch hook handled in place of
	// the command's own handler, such as a motion consumed as the object
	// of a composition.
	TakenOver     uint64
	TotalDuration time.Duration
	MaxDuration   time.Duration
	LastStatus    handler.ResultStatus
}

func (c *CommandMetrics) add(d time.Duration, status handler.ResultStatus, takenOver bool) {
	c.DispatchCount++
	c.TotalDuration += d
	c.MaxDuration = max(c.MaxDuration, d)
	c.LastStatus = status
	if status == handler.StatusError {
		c.ErrorCount++
	}
	if takenOver {
		c.TakenOver++
	}
}

// Metrics collects per-command dispatch statistics. Execute calls are
// not counted.
type Metrics struct {
	mu        sync.RWMutex
	commands  map[string]*CommandMetrics
	total     CommandMetrics
	cancelled uint64
	panics    uint64
}

func NewMetrics() *Metrics {
	return &Metrics{commands: make(map[string]*CommandMetrics)}
}

// RecordDispatch counts one top level dispatch of name.
func (m *Metrics) RecordDispatch(name string, d time.Duration, status handler.ResultStatus, takenOver bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cm := m.commands[name]
	if cm == nil {
		cm = &CommandMetrics{Name: name}
		m.commands[name] = cm
	}
	cm.add(d, status, takenOver)
	m.total.add(d, status, takenOver)
	if status == handler.StatusCancelled {
		m.cancelled++
	}
}

// RecordPanic counts a handler panic turned into an error.
func (m *Metrics) RecordPanic(string) {
	m.mu.Lock()
	m.panics++
	m.mu.Unlock()
}

// CommandStats returns a copy of the counts for name, or nil if it was
// never dispatched.
func (m *Metrics) CommandStats(name string) *CommandMetrics {
	m.mu.RLock()
	defer m.mu.RUnlock()
	cm, ok := m.commands[name]
	if !ok {
		return nil
	}
	c := *cm
	return &c
}

// TopCommands returns the n most dispatched commands, ties by name.
func (m *Metrics) TopCommands(n int) []CommandMetrics {
	m.mu.RLock()
	cmds := make([]CommandMetrics, 0, len(m.commands))
	for _, cm := range m.commands {
		cmds = append(cmds, *cm)
	}
	m.mu.RUnlock()

	slices.SortFunc(cmds, func(a, b CommandMetrics) int {
		return cmp.Or(cmp.Compare(b.DispatchCount, a.DispatchCount), cmp.Compare(a.Name, b.Name))
	})
	return cmds[:min(max(n, 0), len(cmds))]
}

// MetricsSnapshot holds the session totals.
type MetricsSnapshot struct {
	TotalDispatches uint64
	TotalErrors     uint64
	TotalCancelled  uint64
	TotalTakenOver  uint64
	TotalPanics     uint64
	AverageDuration time.Duration
	CommandCount    int
}

func (m *Metrics) Snapshot() MetricsSnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s := MetricsSnapshot{
		TotalDispatches: m.total.DispatchCount,
		TotalErrors:     m.total.ErrorCount,
		TotalCancelled:  m.cancelled,
		TotalTakenOver:  m.total.TakenOver,
		TotalPanics:     m.panics,
		CommandCount:    len(m.commands),
	}
	if s.TotalDispatches > 0 {
		s.AverageDuration = m.total.TotalDuration / time.Duration(s.TotalDispatches)
	}
	return s
}
