package workflow

// Log prefixes
const (
	LogPrefixRun = "internal.workflow.Run"
)

// End marks the terminal edge of a path through the graph.
const End = ""

// MaxSteps bounds a single run. The clinic graph is three nodes deep at
// most, so hitting this means a wiring bug.
const MaxSteps = 8
