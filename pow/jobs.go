package pow

import (
	"sync"

	"github.com/dolthub/swiss"
)

// Jobs registry of active jobs keyed by their id
type Jobs struct {
	lock sync.RWMutex
	jobs *swiss.Map[uint64, *Job]
}

func NewJobs() *Jobs {
	return &Jobs{
		jobs: swiss.NewMap[uint64, *Job](8),
	}
}

// Add inserts job, returns false if a job with the same id is already present
func (j *Jobs) Add(job *Job) (added bool) {
	j.lock.Lock()
	defer j.lock.Unlock()
	if !j.jobs.Has(job.Id()) {
		j.jobs.Put(job.Id(), job)
		added = true
	}
	return added
}

func (j *Jobs) Get(id uint64) (*Job, bool) {
	j.lock.RLock()
	defer j.lock.RUnlock()
	return j.jobs.Get(id)
}

func (j *Jobs) Delete(id uint64) bool {
	j.lock.Lock()
	defer j.lock.Unlock()
	return j.jobs.Delete(id)
}

func (j *Jobs) Len() int {
	j.lock.RLock()
	defer j.lock.RUnlock()
	return j.jobs.Count()
}
