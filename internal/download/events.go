package download

import "github.com/tubegrab/tubegrab/internal/model"

// EventKind discriminates events on the worker → UI channel.
type EventKind int

const (
	// EventLog carries a human-readable progress line for the log widget.
	EventLog EventKind = iota

	// EventBatchStart announces an accepted batch and its size. The consumer
	// resets its per-batch state here, never on the form thread.
	EventBatchStart

	// EventTask carries a task snapshot after a status or progress change.
	EventTask

	// EventResult reports one finished URL.
	EventResult

	// EventSummary reports the end of a batch. It is always queued before the
	// next batch can be accepted, so the consumer sees batches in order.
	EventSummary
)

// Event is the only thing workers are allowed to hand to the UI. Exactly one
// payload field is set, matching Kind.
type Event struct {
	Kind    EventKind
	Line    string
	Total   int // batch size, set for EventBatchStart
	Task    model.DownloadTask
	Result  model.DownloadResult
	Summary model.BatchSummary
}
