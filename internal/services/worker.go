package services

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"alfredoptarigan/resume-analyzer/internal/models"
)

var ErrWorkerStopped = errors.New("worker stopped")

type AnalysisJob struct {
	Document models.Document
	Role     string
}

// Worker bounds the number of analyses running at the same time.
type Worker interface {
	Start(ctx context.Context)
	Stop()
	Submit(ctx context.Context, job AnalysisJob) (models.AnalysisResult, error)
}

type queuedJob struct {
	ctx    context.Context
	job    AnalysisJob
	result chan models.AnalysisResult
}

type worker struct {
	analyzer    AnalyzerService
	jobQueue    chan queuedJob
	concurrency int
	logger      *zap.Logger
	wg          sync.WaitGroup
	stopChan    chan struct{}
	stopOnce    sync.Once
}

func NewWorker(
	analyzer AnalyzerService,
	concurrency int,
	queueSize int,
	logger *zap.Logger,
) Worker {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &worker{
		analyzer:    analyzer,
		jobQueue:    make(chan queuedJob, queueSize),
		concurrency: concurrency,
		logger:      logger,
		stopChan:    make(chan struct{}),
	}
}

// Start implements Worker.
func (w *worker) Start(ctx context.Context) {
	w.logger.Info("🚀 Starting analysis workers", zap.Int("concurrency", w.concurrency))

	for i := 0; i < w.concurrency; i++ {
		w.wg.Add(1)
		go w.processJobs(ctx, i+1)
	}
}

// Stop implements Worker.
func (w *worker) Stop() {
	w.stopOnce.Do(func() {
		w.logger.Info("🛑 Stopping analysis workers...")
		close(w.stopChan)
		w.wg.Wait()
		w.logger.Info("✅ Analysis workers stopped")
	})
}

// Submit implements Worker. It blocks until the analysis finishes or ctx is done.
func (w *worker) Submit(ctx context.Context, job AnalysisJob) (models.AnalysisResult, error) {
	queued := queuedJob{
		ctx:    ctx,
		job:    job,
		result: make(chan models.AnalysisResult, 1),
	}

	select {
	case <-w.stopChan:
		return models.AnalysisResult{}, ErrWorkerStopped
	default:
	}

	select {
	case w.jobQueue <- queued:
	case <-ctx.Done():
		return models.AnalysisResult{}, ctx.Err()
	case <-w.stopChan:
		return models.AnalysisResult{}, ErrWorkerStopped
	}

	select {
	case result := <-queued.result:
		return result, nil
	case <-ctx.Done():
		return models.AnalysisResult{}, ctx.Err()
	case <-w.stopChan:
		// The job may still complete if it was already picked up.
		select {
		case result := <-queued.result:
			return result, nil
		default:
			return models.AnalysisResult{}, ErrWorkerStopped
		}
	}
}

func (w *worker) processJobs(ctx context.Context, workerID int) {
	defer w.wg.Done()

	for {
		select {
		case <-w.stopChan:
			w.logger.Debug("👷 Worker stopped", zap.Int("worker", workerID))
			return
		case <-ctx.Done():
			return
		case queued := <-w.jobQueue:
			if queued.ctx.Err() != nil {
				continue
			}
			w.logger.Debug("👷 Worker processing job",
				zap.Int("worker", workerID),
				zap.String("file", queued.job.Document.Path),
			)
			queued.result <- w.analyzer.Analyze(queued.ctx, queued.job.Document, queued.job.Role)
		}
	}
}
