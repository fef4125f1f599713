package llm

import (
	"fmt"
	"io"
	"strconv"
	"time"
)

// CallEvent records metadata about a single model invocation.
type CallEvent struct {
	Model       string
	LatencyMs   int64
	PromptChars int
	Success     bool
	ErrorKind   ErrorKind
	Message     string
}

// Observer receives events about model calls for logging and metrics.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// LogObserver writes call events to an io.Writer, one key=value line each.
type LogObserver struct {
	w io.Writer
}

func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w}
}

func (o *LogObserver) OnCallComplete(event CallEvent) {
	ts := time.Now().UTC().Format(time.RFC3339)
	status := "ok"
	if !event.Success {
		status = "err:" + string(event.ErrorKind)
	}
	line := fmt.Sprintf("[%s] llm_call model=%s latency_ms=%d prompt_chars=%d status=%s",
		ts, event.Model, event.LatencyMs, event.PromptChars, status)
	if event.Message != "" {
		line += " msg=" + strconv.Quote(event.Message)
	}
	fmt.Fprintln(o.w, line)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}

// MultiObserver fans an event out to several observers.
type MultiObserver []Observer

func (m MultiObserver) OnCallComplete(event CallEvent) {
	for _, o := range m {
		o.OnCallComplete(event)
	}
}
