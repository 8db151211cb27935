// Package flags provides the feature flag gate.
//
// The gate starts with a compiled-in default set and performs exactly one
// fetch against a remote provider at startup. On success the whole set is
// replaced; on failure the defaults are kept for the life of the process.
// There is no retry and no periodic refresh; reads never fail.
package flags

// Set maps flag names to values. Values are bool, string, float64 or
// []string, matching what a JSON flag document can carry.
type Set map[string]any

// Flag names consulted by the eligibility rules.
const (
	FlagSupportedDissolutionEntities     = "supported-dissolution-entities"
	FlagSupportedBusinessSummaryEntities = "supported-business-summary-entities"
	FlagSpecialResolutionUIEnabled       = "special-resolution-ui-enabled"
	FlagEnableDigitalCredentials         = "enable-digital-credentials"
)

// Defaults returns the compiled-in flag set used until (and instead of, on
// failure) the provider fetch. Kept deliberately conservative: UI experiments
// stay off, the well-established entity lists stay on.
func Defaults() Set {
	return Set{
		FlagSupportedDissolutionEntities:     []string{"BC", "BEN", "CC", "CP", "SP", "GP", "ULC"},
		FlagSupportedBusinessSummaryEntities: []string{"BC", "BEN", "CC", "CP", "ULC"},
		FlagSpecialResolutionUIEnabled:       false,
		FlagEnableDigitalCredentials:         false,
	}
}

// clone copies a set so the gate's frozen state can't be mutated by callers.
func clone(s Set) Set {
	out := make(Set, len(s))
	for k, v := range s {
		if list, ok := v.([]string); ok {
			c := make([]string, len(list))
			copy(c, list)
			out[k] = c
			continue
		}
		out[k] = v
	}
	return out
}
