package usecase

import "sync"

// TitleStore is the shared mutable document title the print path overwrites
// with the suggested save name.
type TitleStore interface {
	Title() string
	SetTitle(string)
}

// MemoryTitleStore is the process-wide default title store.
type MemoryTitleStore struct {
	mu    sync.Mutex
	title string
}

func NewMemoryTitleStore(title string) *MemoryTitleStore {
	return &MemoryTitleStore{title: title}
}

func (s *MemoryTitleStore) Title() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.title
}

func (s *MemoryTitleStore) SetTitle(t string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.title = t
}

// overrideTitle swaps the title and returns a restore func. Callers defer the
// restore so the original title comes back on every exit path, including
// failures. Concurrent exports racing on the title are not supported; the
// last restore wins.
func overrideTitle(store TitleStore, temp string) func() {
	if store == nil {
		return func() {}
	}
	original := store.Title()
	store.SetTitle(temp)
	return func() { store.SetTitle(original) }
}
