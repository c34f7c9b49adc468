package model

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/corbinhal/dictgraph/errs"
)

// PropertyType is the closed set of scalar shapes a dictionary property
// can declare.
type PropertyType uint8

const (
	String PropertyType = iota
	Integer
	Decimal
	Boolean
)

func (t PropertyType) String() string {
	switch t {
	case Integer:
		return "integer"
	case Decimal:
		return "decimal"
	case Boolean:
		return "boolean"
	default:
		return "string"
	}
}

var lower = cases.Lower(language.English)

// ParsePropertyType parses a schema-declared type string case-insensitively.
// "datetime" and "enum" both collapse to String. Any other unrecognized
// string is a build error, since PropertyType is a closed enumeration the
// graph cache's property map depends on.
func ParsePropertyType(s string) (PropertyType, error) {
	switch lower.String(s) {
	case "integer", "int":
		return Integer, nil
	case "number", "float", "decimal":
		return Decimal, nil
	case "boolean", "bool":
		return Boolean, nil
	case "string", "datetime", "enum":
		return String, nil
	default:
		return 0, errs.New(errs.BuildError, "model.ParsePropertyType", "unrecognized property type "+s)
	}
}
