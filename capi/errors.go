package main

/*
#include <stdlib.h>
#include <pthread.h>
#include "cabi.h"
*/
import "C"

import "sync"

// lastErrors keeps one pending detailed error per OS thread, keyed by
// pthread_self. Calls arriving from C are pinned to their calling thread for
// the duration of the call, so the key is stable while an export runs, and a
// C thread that triggers a failure reads back its own diagnostics without
// seeing errors raised on other threads.
var lastErrors sync.Map // uint64 -> error

func threadID() uint64 {
	return uint64(C.pthread_self())
}

// setLastError stores err without formatting it; rendering is deferred until
// the caller actually asks for the debug string.
func setLastError(err error) {
	lastErrors.Store(threadID(), err)
}

func hasLastError() bool {
	_, ok := lastErrors.Load(threadID())
	return ok
}

func takeLastError() error {
	if v, ok := lastErrors.LoadAndDelete(threadID()); ok {
		return v.(error)
	}
	return nil
}

func clearLastError() {
	lastErrors.Delete(threadID())
}

// beginExtraction resets the calling thread's slot so a pending error always
// describes that thread's most recent extraction. Slots are keyed by pthread
// id and are not dropped when a thread exits; resetting at the start of each
// extraction also keeps a recycled id from surfacing a dead thread's error.
func beginExtraction() {
	clearLastError()
}

// Category names are allocated once and owned by the library; callers must
// not free the pointers returned by extractkit_error_category.
var categoryPtrs = map[string]*C.char{
	"success":          C.CString("success"),
	"invalid_argument": C.CString("invalid_argument"),
	"io_error":         C.CString("io_error"),
	"extraction_error": C.CString("extraction_error"),
	"resource_error":   C.CString("resource_error"),
	"unknown":          C.CString("unknown"),
}

//export extractkit_error_message
func extractkit_error_message(code C.int) *C.char {
	return C.CString(errorMessageText(int(code)))
}

//export extractkit_error_category
func extractkit_error_category(code C.int) *C.char {
	return categoryPtrs[errorCategoryText(int(code))]
}

//export extractkit_error_has_debug
func extractkit_error_has_debug() C.int {
	if hasLastError() {
		return 1
	}
	return 0
}

//export extractkit_error_get_last_debug
func extractkit_error_get_last_debug() *C.char {
	err := takeLastError()
	if err == nil {
		return nil
	}
	return C.CString(renderDebug(err))
}

//export extractkit_error_clear_last
func extractkit_error_clear_last() {
	clearLastError()
}
