package schema

import (
	"errors"
	"strings"
	"testing"

	modelerrors "github.com/diwise/entity-model/pkg/model/errors"
	"github.com/matryer/is"
)

func TestEmptySchema(t *testing.T) {
	is := is.New(t)

	s, err := New()
	is.NoErr(err)

	is.True(s.Fields() != nil) // should never be nil
	is.Equal(len(s.Fields()), 0)
	is.Equal(len(s.Mutators()), 0)
	is.Equal(s.Hydrate(map[string]any{"id": 1}).Len(), 0) // should drop everything
}

func TestDefaultsAreApplied(t *testing.T) {
	is, s := setupUserSchema(t)

	r := s.Hydrate(map[string]any{})

	name, _ := r.Get("name")
	email, _ := r.Get("email")
	is.Equal(name, "John Doe")
	is.Equal(email, "john@example.com")
}

func TestNilInputUsesDefaults(t *testing.T) {
	is, s := setupUserSchema(t)

	r := s.Hydrate(nil)
	is.Equal(r.Keys(), []string{"name", "email"})
}

func TestInputOverridesAndUnknownFieldsAreDropped(t *testing.T) {
	is, s := setupUserSchema(t)

	r := s.Hydrate(map[string]any{"name": "Jane Doe", "age": 32})

	name, _ := r.Get("name")
	email, _ := r.Get("email")
	is.Equal(name, "Jane Doe")
	is.Equal(email, "john@example.com") // should keep the default
	is.True(!r.Has("age"))              // should drop undeclared fields
	is.Equal(r.Keys(), []string{"name", "email"})
}

func TestExplicitNilOverridesDefault(t *testing.T) {
	is, s := setupUserSchema(t)

	r := s.Hydrate(map[string]any{"name": nil})

	name, ok := r.Get("name")
	is.True(ok)
	is.Equal(name, nil)
}

func TestFieldMutatorTakesPrecedence(t *testing.T) {
	is := is.New(t)

	s, err := New(
		Attr("name", "", upper),
		Mutator("name", func(v any) any { return "Not Expected" }),
	)
	is.NoErr(err)

	name, _ := s.Hydrate(map[string]any{"name": "john doe"}).Get("name")
	is.Equal(name, "JOHN DOE")
}

func TestEntityMutatorIsUsedAsFallback(t *testing.T) {
	is := is.New(t)

	s, err := New(
		Attr("name", ""),
		Mutator("name", upper),
	)
	is.NoErr(err)

	name, _ := s.Hydrate(map[string]any{"name": "john doe"}).Get("name")
	is.Equal(name, "JOHN DOE")
}

func TestDefaultsAreNotMutated(t *testing.T) {
	is := is.New(t)

	s, err := New(
		Attr("name", "john doe", upper),
		Attr("email", "JOHN@EXAMPLE.COM"),
		Mutator("email", func(v any) any { return strings.ToLower(v.(string)) }),
	)
	is.NoErr(err)

	r := s.Hydrate(map[string]any{})

	name, _ := r.Get("name")
	email, _ := r.Get("email")
	is.Equal(name, "john doe")
	is.Equal(email, "JOHN@EXAMPLE.COM")
}

func TestTypedFieldsAreCoercedBeforeMutation(t *testing.T) {
	is := is.New(t)

	s, err := New(
		Number("temperature", 0.0),
		String("code", "", func(v any) any { return v.(string) + "!" }),
		Boolean("active", false),
	)
	is.NoErr(err)

	r := s.Hydrate(map[string]any{"temperature": "17.5", "code": 42, "active": "true"})

	temperature, _ := r.Get("temperature")
	code, _ := r.Get("code")
	active, _ := r.Get("active")
	is.Equal(temperature, 17.5)
	is.Equal(code, "42!") // should hand the mutator a string
	is.Equal(active, true)
}

func TestUIDFieldsAreGenerated(t *testing.T) {
	is := is.New(t)

	s, err := New(UID("id"), Attr("name", ""))
	is.NoErr(err)

	first, _ := s.Hydrate(nil).Get("id")
	second, _ := s.Hydrate(nil).Get("id")
	given, _ := s.Hydrate(map[string]any{"id": "abc"}).Get("id")

	is.True(first != second)
	is.Equal(given, "abc")
}

func TestRecordsDoNotShareDefaults(t *testing.T) {
	is := is.New(t)

	s, err := New(Attr("tags", []any{"a"}))
	is.NoErr(err)

	first, _ := s.Hydrate(nil).Get("tags")
	first.([]any)[0] = "changed"

	second, _ := s.Hydrate(nil).Get("tags")
	is.Equal(second, []any{"a"})
}

func TestUnknownKindAbortsSchema(t *testing.T) {
	is := is.New(t)

	s, err := New(Attr("name", ""), Field("email", "blah", ""))

	is.True(s == nil)
	is.True(errors.Is(err, modelerrors.ErrUnknownAttributeKind)) // should report the unknown kind
}

func TestDuplicateFieldsAreRejected(t *testing.T) {
	is := is.New(t)

	_, err := New(Attr("name", ""), Attr("name", "again"))
	is.True(errors.Is(err, modelerrors.ErrInvalidSchema))
}

func TestFieldLookup(t *testing.T) {
	is, s := setupUserSchema(t)

	a, ok := s.Field("email")
	is.True(ok)
	is.Equal(a.Default(), "john@example.com")

	_, ok = s.Field("age")
	is.True(!ok)
	is.Equal(s.Names(), []string{"name", "email"})
	is.Equal(s.Len(), 2)
}

func upper(v any) any {
	return strings.ToUpper(v.(string))
}

func setupUserSchema(t *testing.T) (*is.I, *Schema) {
	is := is.New(t)

	s, err := New(
		Attr("name", "John Doe"),
		Attr("email", "john@example.com"),
	)
	is.NoErr(err)

	return is, s
}
