package mutators

import (
	"errors"
	"testing"

	modelerrors "github.com/diwise/entity-model/pkg/model/errors"
	"github.com/matryer/is"
)

func TestNamedMutators(t *testing.T) {
	is := is.New(t)

	upper, err := Lookup(Upper)
	is.NoErr(err)
	is.Equal(upper("john doe"), "JOHN DOE")

	title, err := Lookup(Title)
	is.NoErr(err)
	is.Equal(title("john doe"), "John Doe")

	trim, _ := Lookup(Trim)
	is.Equal(trim("  spaced  "), "spaced")
}

func TestStringMutatorsIgnoreOtherTypes(t *testing.T) {
	is := is.New(t)

	lower, _ := Lookup(Lower)
	is.Equal(lower(17.2), 17.2) // should pass non strings through
	is.Equal(lower(nil), nil)
}

func TestLookupUnknownMutator(t *testing.T) {
	is := is.New(t)

	m, err := Lookup("shout")
	is.True(m == nil)
	is.True(errors.Is(err, modelerrors.ErrUnknownMutator))
}

func TestPrefix(t *testing.T) {
	is := is.New(t)

	p := Prefix("urn:ngsi-ld:Device:")
	is.Equal(p("sensor-1"), "urn:ngsi-ld:Device:sensor-1")
	is.Equal(p("urn:ngsi-ld:Device:sensor-1"), "urn:ngsi-ld:Device:sensor-1") // should not add the prefix twice
	is.Equal(p(""), "")
}

func TestChain(t *testing.T) {
	is := is.New(t)

	m := Chain(Strings(func(s string) string { return s + "!" }), Prefix("> "))
	is.Equal(m("hi"), "> hi!")
}

func TestNames(t *testing.T) {
	is := is.New(t)
	is.Equal(Names(), []string{"lower", "title", "trim", "upper"})
}
