package main

import (
	"errors"
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// The slot functions key on the calling OS thread, so every test pins its
// goroutine first.

func TestLastErrorSetTakeClear(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	clearLastError()

	assert.False(t, hasLastError())
	assert.NoError(t, takeLastError())

	boom := errors.New("boom")
	setLastError(boom)
	assert.True(t, hasLastError())

	assert.Same(t, boom, takeLastError())
	assert.False(t, hasLastError(), "take clears the slot")

	setLastError(boom)
	clearLastError()
	assert.False(t, hasLastError())
}

func TestLastErrorReplacement(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	clearLastError()

	setLastError(errors.New("first"))
	second := errors.New("second")
	setLastError(second)
	assert.Same(t, second, takeLastError())
}

func TestBeginExtractionResetsSlot(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	setLastError(errors.New("stale failure"))
	beginExtraction()
	assert.False(t, hasLastError(), "a new extraction starts with a clean slot")
}

func TestLastErrorThreadIsolation(t *testing.T) {
	start := make(chan struct{})
	var wg sync.WaitGroup

	results := make([]bool, 2)
	wg.Add(2)

	// Thread A stores an error; thread B must not observe it.
	go func() {
		defer wg.Done()
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		setLastError(errors.New("thread A failure"))
		close(start)
		results[0] = hasLastError()
		clearLastError()
	}()
	go func() {
		defer wg.Done()
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		<-start
		results[1] = hasLastError()
	}()
	wg.Wait()

	assert.True(t, results[0], "owning thread sees its error")
	assert.False(t, results[1], "other thread sees a clean slot")
}
