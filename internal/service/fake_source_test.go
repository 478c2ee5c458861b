package service_test

import (
	"context"
	"strconv"
	"sync"

	"github.com/spec-kit/roster-service/internal/domain"
	"github.com/spec-kit/roster-service/internal/remote"
)

// fakeSource records calls and can be told to fail or to return a fixed create id.
type fakeSource struct {
	mu        sync.Mutex
	records   []remote.RawRecord
	nextID    int
	createID  *string
	err       error
	created   []domain.EmployeeFields
	deleted   []string
	callCount int
}

func newFakeSource(n int) *fakeSource {
	f := &fakeSource{nextID: n}
	for i := 1; i <= n; i++ {
		f.records = append(f.records, remote.RawRecord{
			ID:    strconv.Itoa(i),
			Name:  "User " + strconv.Itoa(i),
			Email: "user" + strconv.Itoa(i) + "@example.com",
		})
	}
	return f
}

func (f *fakeSource) FetchAll(context.Context) ([]remote.RawRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.callCount++
	if f.err != nil {
		return nil, f.err
	}
	return append([]remote.RawRecord(nil), f.records...), nil
}

func (f *fakeSource) Create(_ context.Context, fields domain.EmployeeFields) (remote.RawRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.callCount++
	if f.err != nil {
		return remote.RawRecord{}, f.err
	}
	f.created = append(f.created, fields)
	id := ""
	if f.createID != nil {
		id = *f.createID
	} else {
		f.nextID++
		id = strconv.Itoa(f.nextID)
	}
	return remote.FromFields(id, fields), nil
}

func (f *fakeSource) Delete(_ context.Context, remoteID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.callCount++
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, remoteID)
	return nil
}

func (f *fakeSource) fail(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

func (f *fakeSource) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.callCount
}
