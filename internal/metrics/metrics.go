// Package metrics keeps in-process counters for the assistant.
package metrics

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/Jamolkhon5/projassist/internal/llm"
)

// Metrics counts model calls and chat traffic. It is an llm.Observer.
type Metrics struct {
	ModelCalls      int64
	ModelFailures   int64
	DirectQuestions int64
	GuidedRequests  int64
	BotUpdates      int64
	AverageLatency  time.Duration
	failuresByKind  map[llm.ErrorKind]int64
	mu              sync.RWMutex
}

func NewMetrics() *Metrics {
	return &Metrics{failuresByKind: make(map[llm.ErrorKind]int64)}
}

func (m *Metrics) IncDirectQuestions() { atomic.AddInt64(&m.DirectQuestions, 1) }

func (m *Metrics) IncGuidedRequests() { atomic.AddInt64(&m.GuidedRequests, 1) }

func (m *Metrics) IncBotUpdates() { atomic.AddInt64(&m.BotUpdates, 1) }

// OnCallComplete records one model call.
func (m *Metrics) OnCallComplete(event llm.CallEvent) {
	atomic.AddInt64(&m.ModelCalls, 1)
	if !event.Success {
		atomic.AddInt64(&m.ModelFailures, 1)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if !event.Success {
		m.failuresByKind[event.ErrorKind]++
	}
	m.updateLatency(time.Duration(event.LatencyMs) * time.Millisecond)
}

// updateLatency keeps a simple moving average. Callers hold mu.
func (m *Metrics) updateLatency(d time.Duration) {
	if m.AverageLatency == 0 {
		m.AverageLatency = d
	} else {
		m.AverageLatency = (m.AverageLatency + d) / 2
	}
}

// GetStats returns a snapshot suitable for JSON encoding.
func (m *Metrics) GetStats() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	byKind := make(map[string]int64, len(m.failuresByKind))
	for k, v := range m.failuresByKind {
		byKind[string(k)] = v
	}
	return map[string]interface{}{
		"model_calls":        atomic.LoadInt64(&m.ModelCalls),
		"model_failures":     atomic.LoadInt64(&m.ModelFailures),
		"failures_by_kind":   byKind,
		"direct_questions":   atomic.LoadInt64(&m.DirectQuestions),
		"guided_requests":    atomic.LoadInt64(&m.GuidedRequests),
		"bot_updates":        atomic.LoadInt64(&m.BotUpdates),
		"average_latency":    m.AverageLatency.String(),
		"average_latency_ms": m.AverageLatency.Milliseconds(),
	}
}
