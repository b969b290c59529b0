package download

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tubegrab/tubegrab/internal/model"
)

// EventBufferSize bounds the worker → UI channel. Workers block rather than
// drop events if the UI falls behind.
const EventBufferSize = 256

// Service dispatches download batches across a bounded worker pool.
type Service struct {
	engine Engine
	log    zerolog.Logger
	events chan Event

	mu         sync.Mutex
	maxWorkers int
	running    bool
	tasks      map[string]*model.DownloadTask
}

// NewService creates a new download service. maxWorkers caps the pool size
// for every batch.
func NewService(engine Engine, maxWorkers int, log zerolog.Logger) *Service {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	return &Service{
		engine:     engine,
		log:        log,
		events:     make(chan Event, EventBufferSize),
		maxWorkers: maxWorkers,
		tasks:      make(map[string]*model.DownloadTask),
	}
}

// Events returns the channel the UI consumes. All worker output flows
// through it; the channel stays open for the lifetime of the service.
func (s *Service) Events() <-chan Event {
	return s.events
}

// Running reports whether a batch is in flight.
func (s *Service) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// SetMaxWorkers updates the worker cap for future batches.
func (s *Service) SetMaxWorkers(max int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if max < 1 {
		max = 1
	}
	s.maxWorkers = max
}

// WorkerCount returns the pool size for a batch of the given length:
// min(urls, cap), at least 1.
func (s *Service) WorkerCount(urls int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if urls < 1 {
		return 1
	}
	if urls < s.maxWorkers {
		return urls
	}
	return s.maxWorkers
}

// Tasks returns snapshots of every task the service has seen, newest state
// included.
func (s *Service) Tasks() []model.DownloadTask {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := make([]model.DownloadTask, 0, len(s.tasks))
	for _, task := range s.tasks {
		tasks = append(tasks, *task)
	}
	return tasks
}

// Start launches one batch. It returns an error for an empty batch, an
// invalid request, or a batch started while another one is running; the
// batch itself runs in the background and reports through Events.
func (s *Service) Start(ctx context.Context, requests []model.DownloadRequest) error {
	if len(requests) == 0 {
		return fmt.Errorf("no download requests in batch")
	}
	for _, req := range requests {
		if err := req.Validate(); err != nil {
			return fmt.Errorf("invalid request for %q: %w", req.URL, err)
		}
	}

	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return fmt.Errorf("a download batch is already running")
	}
	s.running = true

	tasks := make([]*model.DownloadTask, 0, len(requests))
	for _, req := range requests {
		task := &model.DownloadTask{
			ID:        generateTaskID(),
			Request:   req,
			Status:    model.TaskStatusPending,
			ETASec:    -1,
			StartedAt: time.Now(),
		}
		s.tasks[task.ID] = task
		tasks = append(tasks, task)
	}
	workers := len(tasks)
	if workers > s.maxWorkers {
		workers = s.maxWorkers
	}
	s.mu.Unlock()

	s.log.Info().Int("urls", len(tasks)).Int("workers", workers).Msg("starting download batch")
	s.events <- Event{Kind: EventBatchStart, Total: len(tasks)}
	s.emitLog(fmt.Sprintf("Starting download of %d URL(s) with %d worker(s)...", len(tasks), workers))

	go s.runBatch(ctx, tasks, workers)

	return nil
}

// runBatch feeds the tasks to a fixed pool of workers and emits the summary
// once every worker has drained the queue.
func (s *Service) runBatch(ctx context.Context, tasks []*model.DownloadTask, workers int) {
	jobs := make(chan *model.DownloadTask)
	results := make(chan model.DownloadResult, len(tasks))

	var wg sync.WaitGroup
	for i := 1; i <= workers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for task := range jobs {
				results <- s.runTask(ctx, workerID, task)
			}
		}(i)
	}

	for _, task := range tasks {
		jobs <- task
	}
	close(jobs)

	wg.Wait()
	close(results)

	summary := model.BatchSummary{Total: len(tasks)}
	for result := range results {
		summary.Results = append(summary.Results, result)
		if result.Success {
			summary.Succeeded++
		} else {
			summary.Failed++
		}
	}

	s.log.Info().
		Int("succeeded", summary.Succeeded).
		Int("failed", summary.Failed).
		Msg("download batch finished")

	// The summary must be queued before a new batch can be accepted, so the
	// consumer never sees this batch's events after the next batch's.
	s.events <- Event{Kind: EventSummary, Summary: summary}

	s.mu.Lock()
	s.running = false
	s.mu.Unlock()
}

// runTask downloads a single URL and converts any failure into a result, so
// a broken URL never takes its siblings down with it.
func (s *Service) runTask(ctx context.Context, workerID int, task *model.DownloadTask) model.DownloadResult {
	s.updateTask(task, func(t *model.DownloadTask) {
		t.Status = model.TaskStatusDownloading
	})
	s.emitLog(fmt.Sprintf("[worker %d] Downloading %s (%s, %s)...",
		workerID, task.Request.URL, task.Request.Format, task.Request.Quality))

	outputPath, err := s.engine.Fetch(ctx, task.Request, func(p Progress) {
		s.onProgress(workerID, task, p)
	})

	if err != nil {
		s.updateTask(task, func(t *model.DownloadTask) {
			t.Status = model.TaskStatusError
			t.LastError = err.Error()
			t.FinishedAt = time.Now()
		})
		s.log.Error().Err(err).Str("url", task.Request.URL).Msg("download failed")

		result := model.DownloadResult{
			URL:     task.Request.URL,
			Success: false,
			Message: fmt.Sprintf("[worker %d] Error: %v", workerID, err),
		}
		s.emitLog(result.Message)
		s.events <- Event{Kind: EventResult, Result: result}
		return result
	}

	s.updateTask(task, func(t *model.DownloadTask) {
		t.Status = model.TaskStatusCompleted
		t.Percent = 100
		t.OutputPath = outputPath
		t.FinishedAt = time.Now()
	})
	s.log.Info().Str("url", task.Request.URL).Str("output", outputPath).Msg("download completed")

	result := model.DownloadResult{
		URL:     task.Request.URL,
		Success: true,
		Message: fmt.Sprintf("[worker %d] Completed: %s", workerID, task.DisplayTitle()),
	}
	s.emitLog(result.Message)
	s.events <- Event{Kind: EventResult, Result: result}
	return result
}

// onProgress translates an engine progress sample into a task event and a
// log line.
func (s *Service) onProgress(workerID int, task *model.DownloadTask, p Progress) {
	s.updateTask(task, func(t *model.DownloadTask) {
		if p.Percent > t.Percent {
			t.Percent = p.Percent
		}
		if p.Speed != "" {
			t.Speed = p.Speed
		}
		if p.ETASec > 0 {
			t.ETASec = p.ETASec
		}
		if p.Title != "" && t.Title == "" {
			t.Title = p.Title
		}
	})

	line := fmt.Sprintf("[worker %d] %s: %d%%", workerID, task.DisplayTitle(), task.Percent)
	if task.Speed != "" {
		line += " at " + task.Speed
	}
	if task.ETASec > 0 {
		line += ", ETA " + task.ETAString()
	}
	s.emitLog(line)
}

// updateTask mutates a task under the lock and emits a snapshot event.
func (s *Service) updateTask(task *model.DownloadTask, mutate func(*model.DownloadTask)) {
	s.mu.Lock()
	mutate(task)
	snapshot := *task
	s.mu.Unlock()

	s.events <- Event{Kind: EventTask, Task: snapshot}
}

func (s *Service) emitLog(line string) {
	s.events <- Event{Kind: EventLog, Line: line}
}

// generateTaskID generates a unique task ID using UUID v7 for better
// uniqueness and time ordering.
func generateTaskID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf("task-%d", time.Now().UnixNano())
	}
	return "task-" + id.String()
}
