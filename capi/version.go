package main

/*
#include "cabi.h"
*/
import "C"

import "github.com/wudi/extractkit/engine"

// Version identifies the boundary library itself; the engine keeps its own
// version string.
const Version = "1.0.2"

// Allocated once; callers never free pointers returned by the version
// functions.
var (
	versionC       = C.CString(Version)
	engineVersionC = C.CString(engine.Version)
)

//export extractkit_version
func extractkit_version() *C.char {
	return versionC
}

//export extractkit_engine_version
func extractkit_engine_version() *C.char {
	return engineVersionC
}
