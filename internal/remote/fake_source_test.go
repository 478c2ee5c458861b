package remote_test

import (
	"context"
	"strconv"
	"sync"

	"github.com/spec-kit/roster-service/internal/domain"
	"github.com/spec-kit/roster-service/internal/remote"
)

// fakeSource is an in-memory remote.Source counting calls.
type fakeSource struct {
	mu         sync.Mutex
	records    []remote.RawRecord
	nextID     int
	fetchCalls int
	err        error
}

func newFakeSource(records ...remote.RawRecord) *fakeSource {
	return &fakeSource{records: records, nextID: 100}
}

func (f *fakeSource) FetchAll(context.Context) ([]remote.RawRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetchCalls++
	if f.err != nil {
		return nil, f.err
	}
	return append([]remote.RawRecord(nil), f.records...), nil
}

func (f *fakeSource) Create(_ context.Context, fields domain.EmployeeFields) (remote.RawRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return remote.RawRecord{}, f.err
	}
	f.nextID++
	rec := remote.FromFields(strconv.Itoa(f.nextID), fields)
	f.records = append(f.records, rec)
	return rec, nil
}

func (f *fakeSource) Delete(_ context.Context, remoteID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	for i, r := range f.records {
		if r.ID == remoteID {
			f.records = append(f.records[:i], f.records[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeSource) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fetchCalls
}
