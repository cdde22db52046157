package queue

import (
	"context"
	"log"
	"sync"
	"time"

	"enso/internal/mailer"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	// MaxRetries is the maximum number of automatic retries for failed deliveries.
	MaxRetries = 3
	// RetryDelay is the base delay between retries (exponential backoff).
	RetryDelay = 5 * time.Second
	// MarkTimeout is the timeout for recording delivery after a send.
	MarkTimeout = 5 * time.Second
)

// EmailSentMarker defines the interface for recording that an invitation
// email was delivered.
type EmailSentMarker interface {
	MarkEmailSent(ctx context.Context, id primitive.ObjectID) error
}

// Processor processes invitation email jobs from the queue.
type Processor struct {
	queue        *MemoryQueue
	mailer       mailer.Service
	marker       EmailSentMarker
	workerCount  int
	wg           sync.WaitGroup
	shutdownOnce sync.Once
	shutdownCh   chan struct{}
}

// NewProcessor creates a new invitation email job processor.
func NewProcessor(queue *MemoryQueue, m mailer.Service, marker EmailSentMarker, workerCount int) *Processor {
	return &Processor{
		queue:       queue,
		mailer:      m,
		marker:      marker,
		workerCount: workerCount,
		shutdownCh:  make(chan struct{}),
	}
}

// Start begins processing jobs with the configured number of workers.
func (p *Processor) Start(ctx context.Context) {
	for i := 0; i < p.workerCount; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}
	log.Printf("Invitation email processor started with %d workers", p.workerCount)
}

// Stop gracefully stops the processor, waiting for workers to finish.
func (p *Processor) Stop() {
	p.shutdownOnce.Do(func() {
		close(p.shutdownCh)
		p.queue.Close()
	})
	p.wg.Wait()
	log.Println("Invitation email processor stopped")
}

func (p *Processor) worker(ctx context.Context, id int) {
	defer p.wg.Done()
	log.Printf("Worker %d started", id)

	for {
		job, err := p.queue.Dequeue(ctx)
		if err != nil {
			if err == ErrQueueClosed || err == context.Canceled {
				log.Printf("Worker %d shutting down", id)
				return
			}
			continue
		}
		p.processJob(ctx, job)
	}
}

func (p *Processor) processJob(ctx context.Context, job InvitationEmailJob) {
	log.Printf("Sending invitation email for %s (attempt %d)", job.InvitationID.Hex(), job.RetryCount+1)

	if err := p.mailer.SendInvitation(ctx, job.Email); err != nil {
		log.Printf("Invitation email failed for %s: %v", job.InvitationID.Hex(), err)
		p.handleFailure(job)
		return
	}

	// Delivery succeeded; the timestamp is record keeping, not worth a retry.
	markCtx, cancel := context.WithTimeout(context.Background(), MarkTimeout)
	defer cancel()
	if err := p.marker.MarkEmailSent(markCtx, job.InvitationID); err != nil {
		log.Printf("Failed to mark invitation %s as sent: %v", job.InvitationID.Hex(), err)
	}

	log.Printf("Invitation email sent for %s", job.InvitationID.Hex())
}

func (p *Processor) handleFailure(job InvitationEmailJob) {
	job.RetryCount++

	if job.RetryCount >= MaxRetries {
		// Give up. The invitation stays valid and acceptable by link; only
		// the email went undelivered.
		log.Printf("Max retries reached for invitation %s, giving up on email delivery", job.InvitationID.Hex())
		return
	}

	// Calculate exponential backoff delay
	delay := RetryDelay * time.Duration(1<<uint(job.RetryCount-1))
	log.Printf("Retrying invitation email %s in %v (attempt %d/%d)", job.InvitationID.Hex(), delay, job.RetryCount+1, MaxRetries)

	// Schedule retry with delay. Uses shutdownCh instead of ctx to allow
	// in-flight retries to complete during graceful shutdown.
	go func() {
		select {
		case <-p.shutdownCh:
			log.Printf("Shutdown during retry delay for invitation %s, dropping email job", job.InvitationID.Hex())
			return
		case <-time.After(delay):
			if err := p.queue.Enqueue(job); err != nil {
				log.Printf("Failed to re-enqueue email job for invitation %s: %v", job.InvitationID.Hex(), err)
			}
		}
	}()
}
