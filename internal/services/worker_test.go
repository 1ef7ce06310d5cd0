package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestEnqueueJobDeduplicatesInFlight(t *testing.T) {
	w := NewWorker(&fakeAnalysisRepo{}, nil, 1).(*worker)

	analysisID := uuid.New()
	w.EnqueueJob(analysisID)
	w.EnqueueJob(analysisID)
	w.EnqueueJob(uuid.New())

	// The duplicate enqueue is dropped; the poller re-finding a queued
	// row cannot schedule it twice.
	assert.Len(t, w.jobQueue, 2)
}

func TestEnqueueJobAcceptsAgainAfterRelease(t *testing.T) {
	w := NewWorker(&fakeAnalysisRepo{}, nil, 1).(*worker)

	analysisID := uuid.New()
	w.EnqueueJob(analysisID)
	<-w.jobQueue
	w.release(analysisID)

	w.EnqueueJob(analysisID)
	assert.Len(t, w.jobQueue, 1)
}
