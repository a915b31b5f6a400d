package catalog

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Predicate grades an observed value against an expected condition.
// Implementations are immutable and safe for concurrent use.
type Predicate interface {
	// Describe returns the expected condition for listings and reports.
	Describe() string

	// Grade reports whether observed satisfies the condition.
	Grade(observed string) bool
}

// OneOf passes when the observed value equals any of the listed values.
func OneOf(values ...string) Predicate { return oneOf(values) }

type oneOf []string

func (p oneOf) Describe() string { return "one of [" + strings.Join(p, ", ") + "]" }

func (p oneOf) Grade(observed string) bool {
	for _, v := range p {
		if observed == v {
			return true
		}
	}
	return false
}

// Equals passes on exact equality.
func Equals(value string) Predicate { return equals(value) }

type equals string

func (p equals) Describe() string           { return string(p) }
func (p equals) Grade(observed string) bool { return observed == string(p) }

// NotEquals passes when the observed value differs from the given one.
func NotEquals(value string) Predicate { return notEquals(value) }

type notEquals string

func (p notEquals) Describe() string           { return "anything but " + string(p) }
func (p notEquals) Grade(observed string) bool { return observed != string(p) }

// BoolIs interprets the observed value as a server boolean
// (on/off/true/false/1/0/yes/no) and compares it to want.
func BoolIs(want bool) Predicate { return boolIs(want) }

type boolIs bool

func (p boolIs) Describe() string {
	if bool(p) {
		return "on"
	}
	return "off"
}

func (p boolIs) Grade(observed string) bool {
	switch strings.ToLower(strings.TrimSpace(observed)) {
	case "on", "true", "1", "yes":
		return bool(p)
	case "off", "false", "0", "no":
		return !bool(p)
	default:
		return false
	}
}

// IntAtMost passes when the observed value parses as an integer ≤ n.
func IntAtMost(n int) Predicate { return intAtMost(n) }

type intAtMost int

func (p intAtMost) Describe() string { return fmt.Sprintf("at most %d", int(p)) }

func (p intAtMost) Grade(observed string) bool {
	v, err := strconv.Atoi(strings.TrimSpace(observed))
	return err == nil && v <= int(p)
}

// IntAtLeast passes when the observed value parses as an integer ≥ n.
func IntAtLeast(n int) Predicate { return intAtLeast(n) }

type intAtLeast int

func (p intAtLeast) Describe() string { return fmt.Sprintf("at least %d", int(p)) }

func (p intAtLeast) Grade(observed string) bool {
	v, err := strconv.Atoi(strings.TrimSpace(observed))
	return err == nil && v >= int(p)
}

// Matches passes when the observed value matches the anchored pattern.
// The pattern must compile; packs are validated at catalogue load.
func Matches(pattern string) Predicate {
	return matches{re: regexp.MustCompile(pattern), src: pattern}
}

type matches struct {
	re  *regexp.Regexp
	src string
}

func (p matches) Describe() string           { return "matching " + p.src }
func (p matches) Grade(observed string) bool { return p.re.MatchString(observed) }

// NoneOfSubstrings passes when the observed value contains none of the given
// substrings (case-insensitive). Used for deny-lists such as risky preload
// libraries.
func NoneOfSubstrings(subs ...string) Predicate { return noneOfSubstrings(subs) }

type noneOfSubstrings []string

func (p noneOfSubstrings) Describe() string {
	return "none of [" + strings.Join(p, ", ") + "]"
}

func (p noneOfSubstrings) Grade(observed string) bool {
	lower := strings.ToLower(observed)
	for _, s := range p {
		if strings.Contains(lower, strings.ToLower(s)) {
			return false
		}
	}
	return true
}

// ContainsAny passes when the observed value contains at least one of the
// given substrings (case-insensitive).
func ContainsAny(subs ...string) Predicate { return containsAny(subs) }

type containsAny []string

func (p containsAny) Describe() string {
	return "containing any of [" + strings.Join(p, ", ") + "]"
}

func (p containsAny) Grade(observed string) bool {
	lower := strings.ToLower(observed)
	for _, s := range p {
		if strings.Contains(lower, strings.ToLower(s)) {
			return true
		}
	}
	return false
}
