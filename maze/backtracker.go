package maze

import (
	"errors"
	"fmt"
	"strings"
)

// BranchPolicy selects how pending branch records are resumed once the
// initial walk has stopped.
type BranchPolicy uint8

const (
	// LIFOWithSkip resumes the newest branch first and, once the goal has been
	// reached, only occasionally extends further.
	LIFOWithSkip BranchPolicy = iota
	// MiddleIndex samples the branch a third of the way into the pending list
	// and trims late detours when the goal is first reached.
	MiddleIndex
)

const (
	// skipOdds: after the goal is reached a branch is resumed once in skipOdds.
	skipOdds = 20
	// goalTrimCount is how many of the newest branches MiddleIndex drops on
	// first reaching the goal.
	goalTrimCount = 10
)

var ErrUnknownPolicy = errors.New("unknown branch policy")

var policyNames = map[BranchPolicy]string{
	LIFOWithSkip: "lifo-skip",
	MiddleIndex:  "middle-index",
}

// String returns the configuration name of the policy.
func (p BranchPolicy) String() string {
	if name, ok := policyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("policy(%d)", uint8(p))
}

func (p BranchPolicy) valid() bool {
	_, ok := policyNames[p]
	return ok
}

// ParsePolicy maps a configuration name ("lifo-skip", "middle-index") to a policy.
func ParsePolicy(name string) (BranchPolicy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for p, n := range policyNames {
		if n == name {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
}

// backtrack drains the pending branches according to policy.
func (c *carver) backtrack(policy BranchPolicy) {
	switch policy {
	case MiddleIndex:
		c.backtrackMiddle()
	default:
		c.backtrackLIFO()
	}
}

func (c *carver) backtrackLIFO() {
	for len(c.branches) > 0 {
		last := len(c.branches) - 1
		branch := c.branches[last]
		c.branches = c.branches[:last]

		if c.goalReached && c.rng.Intn(skipOdds) != 0 {
			continue
		}

		for _, n := range branch.neighbors {
			if c.grid.At(n.Pos) != Reserved {
				continue
			}
			if !c.eligible(branch.Pos, n.Pos) {
				c.grid.set(n.Pos, Excluded)
				continue
			}
			if c.resume(n) {
				c.goalReached = true
			}
		}
	}
}

func (c *carver) backtrackMiddle() {
	for len(c.branches) > 0 {
		c.resumeMiddle()
	}
}

// resumeMiddle handles the record a third of the way into the pending list.
func (c *carver) resumeMiddle() {
	idx := len(c.branches) / 3
	branch := c.branches[idx]

	reserved := c.reservedOf(branch)
	if len(reserved) < 2 || c.goalReached {
		c.branches = append(c.branches[:idx], c.branches[idx+1:]...)
	}
	if len(reserved) == 0 {
		return
	}

	n := reserved[c.rng.Intn(len(reserved))]
	if c.resume(n) && !c.goalReached {
		c.goalReached = true
		keep := max(len(c.branches)-goalTrimCount, 0)
		c.branches = c.branches[:keep]
	}
}
