package cartesian

import "fmt"

// Options is the closed set of Indexer configuration. The zero value is the
// default.
type Options struct {
	// Cache the stride table and tuple count at construction instead of
	// recomputing from set lengths on every call. Faster, but the Indexer
	// stops tracking length changes to the sets: results go stale if the
	// caller grows or shrinks a set afterwards.
	LessLazy bool
}

// OptionsFromMap converts a dynamic options mapping, as accepted by
// interfaces that take configuration by key. Unrecognized keys are a
// configuration error, not ignored.
func OptionsFromMap(m map[string]any) (opts Options, err error) {
	for key, value := range m {
		switch key {
		case "less_lazy":
			b, ok := value.(bool)
			if !ok {
				err = fmt.Errorf("option %q: expected bool, got %T", key, value)
				return
			}
			opts.LessLazy = b
		default:
			err = fmt.Errorf("unrecognized option %q", key)
			return
		}
	}
	return
}
