package store

import (
	"context"
	"sync"

	"github.com/akolanti/SheetAPI/internal/domain/jobModel"
	"github.com/akolanti/SheetAPI/pkg/logger_i"
)

var inMemLogger = logger_i.NewLogger("InMem JobStore")

// InMemoryJobStore is the fallback when Redis is offline. Jobs are lost on
// restart, which is acceptable - job entries are operational state with a
// TTL, not durable data.
type InMemoryJobStore struct {
	jobMutex *sync.RWMutex
	jobMap   map[string]jobModel.Job
}

func InitInMemoryJobStore() *InMemoryJobStore {
	return &InMemoryJobStore{
		jobMutex: new(sync.RWMutex),
		jobMap:   make(map[string]jobModel.Job),
	}
}

func (store *InMemoryJobStore) SaveJob(ctx context.Context, jobToStore jobModel.Job) error {
	store.jobMutex.Lock()
	defer store.jobMutex.Unlock()
	store.jobMap[jobToStore.Id] = jobToStore
	inMemLogger.Debug("Saved job to store", "jobId", jobToStore.Id)
	return nil
}

func (store *InMemoryJobStore) GetJob(ctx context.Context, jobId string) (jobModel.Job, bool) {
	store.jobMutex.RLock()
	defer store.jobMutex.RUnlock()
	result, found := store.jobMap[jobId]
	return result, found
}

func (store *InMemoryJobStore) DeleteJob(ctx context.Context, jobID string) {
	store.jobMutex.Lock()
	defer store.jobMutex.Unlock()
	delete(store.jobMap, jobID)
}
