package mutators

import (
	"slices"
	"strings"

	"github.com/diwise/entity-model/pkg/model/errors"
	"github.com/diwise/entity-model/pkg/model/types"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	Upper string = "upper"
	Lower string = "lower"
	Trim  string = "trim"
	Title string = "title"
)

var named = map[string]types.MutatorFunc{
	Upper: Strings(strings.ToUpper),
	Lower: Strings(strings.ToLower),
	Trim:  Strings(strings.TrimSpace),
	Title: Strings(title),
}

// Strings lifts a string transformation into a mutator. Values that are not
// strings are returned unchanged.
func Strings(fn func(string) string) types.MutatorFunc {
	return func(value any) any {
		if s, ok := value.(string); ok {
			return fn(s)
		}
		return value
	}
}

// Prefix ensures that string values start with prefix
func Prefix(prefix string) types.MutatorFunc {
	return Strings(func(s string) string {
		if s == "" || strings.HasPrefix(s, prefix) {
			return s
		}
		return prefix + s
	})
}

// Chain applies the mutators from left to right
func Chain(mutators ...types.MutatorFunc) types.MutatorFunc {
	return func(value any) any {
		for _, m := range mutators {
			value = m(value)
		}
		return value
	}
}

// a Caser is stateful, so one is created per call
func title(s string) string {
	return cases.Title(language.Und).String(s)
}

func Lookup(name string) (types.MutatorFunc, error) {
	m, ok := named[name]
	if !ok {
		return nil, errors.NewUnknownMutatorError(name)
	}
	return m, nil
}

func Names() []string {
	names := make([]string, 0, len(named))
	for n := range named {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}
