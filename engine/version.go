package engine

// Version is the engine release, reported through the boundary's version
// accessor.
const Version = "0.3.1"
