package attributes

import (
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// coerce converts a native value into the wanted primitive type using the
// implicit conversion rules of cty. nil is returned unchanged.
func coerce(value any, want cty.Type) (any, bool) {
	if value == nil {
		return nil, true
	}

	impliedType, err := gocty.ImpliedType(value)
	if err != nil {
		return nil, false
	}

	val, err := gocty.ToCtyValue(value, impliedType)
	if err != nil {
		return nil, false
	}

	converted, err := convert.Convert(val, want)
	if err != nil || converted.IsNull() || !converted.IsKnown() {
		return nil, false
	}

	switch {
	case want.Equals(cty.String):
		return converted.AsString(), true
	case want.Equals(cty.Number):
		f, _ := converted.AsBigFloat().Float64()
		return f, true
	case want.Equals(cty.Bool):
		return converted.True(), true
	}

	return nil, false
}
