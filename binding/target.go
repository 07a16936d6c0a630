package binding

import "sync"

// Target is one document element bound to a placeholder. The document
// collaborator implements it; the renderer pushes the resolved fragment into
// every target bound to a placeholder and marks each one resolved.
type Target interface {
	SetFragment(html string)
	MarkResolved()
}

// Recorder is an in-memory Target. It backs the CLI output and tests.
type Recorder struct {
	mu       sync.Mutex
	fragment string
	resolved bool
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) SetFragment(html string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fragment = html
}

func (r *Recorder) MarkResolved() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resolved = true
}

func (r *Recorder) Fragment() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.fragment
}

func (r *Recorder) Resolved() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.resolved
}
