package evict

import (
	"fmt"
	"strings"
)

type Policy int

const (
	NRU Policy = iota
	FIFO
	LRU
	SecondChance
)

// Policies lists every policy in report order.
var Policies = []Policy{NRU, FIFO, LRU, SecondChance}

func (p Policy) String() string {
	switch p {
	case NRU:
		return "nru"
	case FIFO:
		return "fifo"
	case LRU:
		return "lru"
	case SecondChance:
		return "second-chance"
	}
	return fmt.Sprintf("policy(%d)", int(p))
}

// Title is the human name used by the report.
func (p Policy) Title() string {
	switch p {
	case NRU:
		return "NRU"
	case FIFO:
		return "FIFO"
	case LRU:
		return "LRU"
	case SecondChance:
		return "Second Chance"
	}
	return p.String()
}

func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "nru":
		return NRU, nil
	case "fifo":
		return FIFO, nil
	case "lru":
		return LRU, nil
	case "second-chance", "secondchance", "sc", "clock":
		return SecondChance, nil
	}
	return 0, &Error{Code: ErrCodeUnknownPolicy, Op: "parse-policy", Message: fmt.Sprintf("unknown policy %q", name)}
}

// Result is one selector's choice. For NRU, Class is the tier the page was
// drawn from; for the other policies it is the chosen page's class.
// Fallback is only set by Second-Chance.
type Result struct {
	Policy Policy
	Page   Page
	Class  Class
	// Fallback is set when every page had its reference bit set and the
	// queue wrapped around to the earliest loaded page.
	Fallback bool
}

// Report holds the four results for one page set.
type Report struct {
	Size         int
	NRU          Result
	FIFO         Result
	LRU          Result
	SecondChance Result
}

// Results returns the results in report order.
func (r Report) Results() []Result {
	return []Result{r.NRU, r.FIFO, r.LRU, r.SecondChance}
}
