// meta/meta.go
package meta

// THRESHOLD is the finger count at which a hand dies.
const THRESHOLD = 5

// START_FINGERS is the finger count on each hand at the start.
const START_FINGERS = 1

// MAX_TURNS caps a self-play playout.
const MAX_TURNS = 300

// DEPTH_LIMIT bounds the rendered tree depth.
const DEPTH_LIMIT = 13
