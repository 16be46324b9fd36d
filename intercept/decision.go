package intercept

import (
	"fmt"
	"os"
)

// RedirectEnvVar names the environment variable that supplies the substitute
// executable path. When set, every intercepted call is redirected to its
// value; when unset, all calls pass through unmodified. This is the sole
// configuration surface of the redirect decision.
const RedirectEnvVar = "PITY_REPORT_CONTAINER_PATH"

// Lookup resolves the redirect configuration value. It is consulted fresh on
// every intercepted call, so changes to process-wide environment state
// between calls are observed immediately. ok=false means pass-through; a
// present but empty value still counts as present.
type Lookup func() (value string, ok bool)

// EnvLookup reads RedirectEnvVar from the process environment.
func EnvLookup() (string, bool) {
	return os.LookupEnv(RedirectEnvVar)
}

// StaticLookup returns a Lookup that always yields the given value.
// Intended for tests and embedding scenarios with a fixed target.
func StaticLookup(value string, ok bool) Lookup {
	return func() (string, bool) {
		return value, ok
	}
}

// Outcome is the result of a redirect decision.
type Outcome int

const (
	// OutcomePassThrough forwards the original path unchanged.
	OutcomePassThrough Outcome = iota
	// OutcomeRedirect substitutes the configured target path.
	OutcomeRedirect
)

// String returns the string representation of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomePassThrough:
		return "pass-through"
	case OutcomeRedirect:
		return "redirect"
	default:
		return "unknown"
	}
}

// Decision records a single substitution decision. Target is the path the
// primitive receives: the configured substitute when redirected, otherwise
// the original path.
type Decision struct {
	// Original is the path the caller asked to execute.
	Original string

	// Target is the path forwarded to the primitive.
	Target string

	// Outcome is the decision that was made.
	Outcome Outcome

	// Argv is the caller's argument vector, forwarded untouched. It is
	// caller-owned for the duration of the call; hooks must not retain it.
	Argv []string

	// Envp is the caller's environment, nil meaning the caller's own
	// environment is inherited. Caller-owned like Argv.
	Envp []string
}

// Redirected reports whether the call was redirected.
func (d *Decision) Redirected() bool {
	return d.Outcome == OutcomeRedirect
}

// String returns a string representation of the decision.
func (d *Decision) String() string {
	if d.Redirected() {
		return fmt.Sprintf("redirect %s -> %s", d.Original, d.Target)
	}
	return fmt.Sprintf("pass-through %s", d.Original)
}

// Decide makes a fresh redirect decision for path using lookup.
// A nil lookup falls back to EnvLookup.
//
// No validation is performed on the configured value: an empty or invalid
// path is used verbatim and the primitive fails accordingly.
func Decide(path string, lookup Lookup) *Decision {
	if lookup == nil {
		lookup = EnvLookup
	}

	value, ok := lookup()
	if !ok {
		return &Decision{
			Original: path,
			Target:   path,
			Outcome:  OutcomePassThrough,
		}
	}

	return &Decision{
		Original: path,
		Target:   value,
		Outcome:  OutcomeRedirect,
	}
}
