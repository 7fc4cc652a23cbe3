// ABOUTME: Arbitration of simultaneously pending user actions by invocation timestamp.
// ABOUTME: Pure function from a set of pending actions to at most one selected action.
package command

// Action is one user-triggered editor operation.
type Action int

const (
	ActionAddVertex Action = iota
	ActionAddEdge
	ActionRemoveVertex
	ActionRemoveEdge
	ActionRun
	ActionReset
	ActionClear
	actionCount
)

var actionNames = [...]string{
	ActionAddVertex:    "add_vertex",
	ActionAddEdge:      "add_edge",
	ActionRemoveVertex: "remove_vertex",
	ActionRemoveEdge:   "remove_edge",
	ActionRun:          "run",
	ActionReset:        "reset",
	ActionClear:        "clear",
}

// String returns the wire name of the action.
func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "unknown"
	}
	return actionNames[a]
}

// ParseAction resolves a wire name back to an Action.
func ParseAction(name string) (Action, bool) {
	for a, n := range actionNames {
		if n == name {
			return Action(a), true
		}
	}
	return 0, false
}

// Pending maps each reported action to its invocation timestamp. An action
// absent from the map never reported an invocation.
type Pending map[Action]int64

// Select picks the action with the maximum timestamp, treating absent actions
// as zero and breaking ties in declaration order. The nominal winner must
// additionally have actually reported an invocation: when every action is
// absent the first-declared slot wins the tie but fails the presence guard,
// and no action executes.
func Select(pending Pending) (Action, bool) {
	selected := Action(0)
	var best int64
	for a := Action(0); a < actionCount; a++ {
		if ts := pending[a]; ts > best {
			best = ts
			selected = a
		}
	}
	_, present := pending[selected]
	return selected, present
}
