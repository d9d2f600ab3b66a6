package ocr

import (
	"context"
	"errors"
	"sync"
)

var (
	defaultMu     sync.RWMutex
	defaultEngine Engine
)

// DefaultEngine returns the registered default OCR engine, or nil when no
// provider has been linked in.
func DefaultEngine() Engine {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultEngine
}

// SetDefaultEngine sets the library's default OCR engine. Providers call this
// from their package init so that importing a provider is enough to enable it.
func SetDefaultEngine(engine Engine) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultEngine = engine
}

// ErrNoEngine is returned by Recognize when no provider has been linked in.
var ErrNoEngine = errors.New("no ocr engine registered")

// Recognize runs the default engine over inputs, taking the provider's batch
// path when it offers one so multi-image callers amortize client setup. It
// fails as a whole on the first input error.
func Recognize(ctx context.Context, inputs ...Input) ([]Result, error) {
	eng := DefaultEngine()
	if eng == nil {
		return nil, ErrNoEngine
	}
	if batch, ok := eng.(BatchEngine); ok {
		return batch.RecognizeBatch(ctx, inputs)
	}
	results := make([]Result, 0, len(inputs))
	for _, in := range inputs {
		res, err := eng.Recognize(ctx, in)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}
