package testing

import (
	"context"
	"sync"
)

// Call is one recorded provider method invocation.
type Call struct {
	Method string
	Args   []any
}

// CallRecorder records method calls and lets tests wait for them.
type CallRecorder struct {
	mu     sync.Mutex
	calls  []Call
	errs   map[string]error
	notify chan struct{}
}

// MethodCalled records a call and returns the error injected for method.
func (r *CallRecorder) MethodCalled(method string, args ...any) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls = append(r.calls, Call{Method: method, Args: args})
	if r.notify != nil {
		close(r.notify)
		r.notify = nil
	}
	return r.errs[method]
}

// SetError makes subsequent calls to method fail with err. Nil clears it.
func (r *CallRecorder) SetError(method string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.errs == nil {
		r.errs = make(map[string]error)
	}
	if err == nil {
		delete(r.errs, method)
		return
	}
	r.errs[method] = err
}

// WhenCalled returns the first recorded call to method since the last Reset,
// waiting for it if necessary.
func (r *CallRecorder) WhenCalled(ctx context.Context, method string) (Call, error) {
	for {
		r.mu.Lock()
		for _, c := range r.calls {
			if c.Method == method {
				r.mu.Unlock()
				return c, nil
			}
		}
		if r.notify == nil {
			r.notify = make(chan struct{})
		}
		ch := r.notify
		r.mu.Unlock()

		select {
		case <-ch:
		case <-ctx.Done():
			return Call{}, ctx.Err()
		}
	}
}

// CallCount returns how many times method was called.
func (r *CallRecorder) CallCount(method string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, c := range r.calls {
		if c.Method == method {
			n++
		}
	}
	return n
}

// ArgsFor returns the arguments of every call to method, oldest first.
func (r *CallRecorder) ArgsFor(method string) [][]any {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out [][]any
	for _, c := range r.calls {
		if c.Method == method {
			out = append(out, c.Args)
		}
	}
	return out
}

// Calls returns every recorded call, oldest first.
func (r *CallRecorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Call(nil), r.calls...)
}

// Reset forgets recorded calls. Injected errors are kept.
func (r *CallRecorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
}
