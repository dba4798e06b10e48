package casematch

import (
	"sync"

	"github.com/agentstation/casematch/pkg/dataset"
	"github.com/agentstation/casematch/pkg/reconciler"
)

// Hook function types for session events
type (
	// ReportLoadedHook is called after a report is prepared and stored
	ReportLoadedHook func(report *dataset.Dataset)

	// StatusFeedLoadedHook is called after a new baseline is stored
	StatusFeedLoadedHook func(baseline *dataset.Dataset)

	// ReconciledHook is called after a reconciliation view is derived
	ReconciledHook func(result *reconciler.Result)
)

// hooks manages event callbacks for session changes
type hooks struct {
	mu                 sync.RWMutex
	onReportLoaded     []ReportLoadedHook
	onStatusFeedLoaded []StatusFeedLoadedHook
	onReconciled       []ReconciledHook
}

// newHooks creates a new hooks instance
func newHooks() *hooks {
	return &hooks{}
}

// OnReportLoaded registers a callback for when a report is loaded
func (h *hooks) OnReportLoaded(fn ReportLoadedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onReportLoaded = append(h.onReportLoaded, fn)
}

// OnStatusFeedLoaded registers a callback for when a status feed is loaded
func (h *hooks) OnStatusFeedLoaded(fn StatusFeedLoadedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onStatusFeedLoaded = append(h.onStatusFeedLoaded, fn)
}

// OnReconciled registers a callback for when a view is derived
func (h *hooks) OnReconciled(fn ReconciledHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onReconciled = append(h.onReconciled, fn)
}

func (h *hooks) triggerReportLoaded(report *dataset.Dataset) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, hook := range h.onReportLoaded {
		hook(report.Clone())
	}
}

func (h *hooks) triggerStatusFeedLoaded(baseline *dataset.Dataset) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, hook := range h.onStatusFeedLoaded {
		hook(baseline.Clone())
	}
}

func (h *hooks) triggerReconciled(result *reconciler.Result) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, hook := range h.onReconciled {
		hook(result)
	}
}
