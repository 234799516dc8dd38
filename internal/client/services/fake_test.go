package services

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
)

type recordedCall struct {
	Method   string
	Endpoint string
	Body     any
}

// fakeAPI is a client.Requester that records calls and answers from a table
// keyed by "METHOD endpoint".
type fakeAPI struct {
	mu        sync.Mutex
	calls     []recordedCall
	responses map[string]any
	errs      map[string]error
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{responses: map[string]any{}, errs: map[string]error{}}
}

func (f *fakeAPI) on(method, endpoint string, data any) *fakeAPI {
	f.responses[method+" "+endpoint] = data
	return f
}

func (f *fakeAPI) fail(method, endpoint string, err error) *fakeAPI {
	f.errs[method+" "+endpoint] = err
	return f
}

func (f *fakeAPI) Do(_ context.Context, method, endpoint string, body any, _ http.Header, out any) error {
	f.mu.Lock()
	f.calls = append(f.calls, recordedCall{Method: method, Endpoint: endpoint, Body: body})
	f.mu.Unlock()

	key := method + " " + endpoint
	if err, ok := f.errs[key]; ok {
		return err
	}
	data, ok := f.responses[key]
	if !ok || out == nil {
		return nil
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

func (f *fakeAPI) last() recordedCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.calls) == 0 {
		return recordedCall{}
	}
	return f.calls[len(f.calls)-1]
}

func (f *fakeAPI) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}
