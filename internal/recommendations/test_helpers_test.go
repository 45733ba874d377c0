package recommendations

import (
	"context"
	"sync"
)

type fakeGenerator struct {
	mu      sync.Mutex
	text    string
	err     error
	prompts []string
	block   bool
}

func (f *fakeGenerator) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	f.mu.Lock()
	f.prompts = append(f.prompts, prompt)
	f.mu.Unlock()
	if f.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return f.text, f.err
}

func (f *fakeGenerator) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.prompts)
}
