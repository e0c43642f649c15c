// Package schema declares one structural contract per entity kind and a
// single generic validator that interprets them. A contract is a list of
// field descriptors (type, required, enum, range, conditional presence);
// validation is pure and attributes every failure to a specific field and
// rule.
package schema

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
	"time"

	"seeder/internal/domain/entity"
)

// FieldType names the expected shape of a field value.
type FieldType string

const (
	TypeString  FieldType = "string"
	TypeNumber  FieldType = "number"
	TypeInteger FieldType = "integer"
	TypeBool    FieldType = "bool"
	TypeList    FieldType = "list"
	TypeObject  FieldType = "object"
	TypeTime    FieldType = "time"
)

// Condition gates a conditional field on the value of a sibling field.
type Condition struct {
	Field string
	In    []string
}

// Field describes one field of an entity contract.
type Field struct {
	Name     string
	Type     FieldType
	Required bool
	// Enum restricts string-like values to a fixed set.
	Enum []string
	// Min and Max bound numeric values inclusively; ExclusiveMin excludes the
	// lower bound (e.g. a discount must be strictly above zero).
	Min          *float64
	Max          *float64
	ExclusiveMin bool
	// MinItems and MaxItems bound list length; MaxItems 0 means unbounded.
	MinItems int
	MaxItems int
	// When makes presence conditional: the field must be present iff the
	// condition holds. Overrides Required.
	When *Condition
	// Fields validates a nested object when it is present.
	Fields []Field
}

// Descriptor is the structural contract of one entity kind.
type Descriptor struct {
	Kind entity.Kind
	// Fields lists the field rules, including conditional-presence rules
	// co-located with the rest of the contract.
	Fields []Field
	// ExactlyOne lists groups of fields where exactly one member must be set.
	ExactlyOne [][]string
}

// Violation attributes a validation failure to a field and a rule.
type Violation struct {
	Field  string
	Rule   string
	Detail string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s (%s)", v.Field, v.Rule, v.Detail)
}

// Validate checks e against desc and returns every violation found, or nil
// when the entity conforms. It inspects the entity through its JSON-tag view,
// the same shape that is serialized and loaded.
func Validate(desc Descriptor, e entity.Entity) []Violation {
	return validateStruct(desc.Fields, desc.ExactlyOne, reflect.ValueOf(e))
}

func validateStruct(fields []Field, exactlyOne [][]string, v reflect.Value) []Violation {
	byTag := fieldsByTag(v)

	var out []Violation
	for _, f := range fields {
		fv, ok := byTag[f.Name]
		if !ok {
			out = append(out, Violation{Field: f.Name, Rule: "unknown_field", Detail: "field not present in entity shape"})

			continue
		}
		out = append(out, validateField(f, fv, byTag)...)
	}

	for _, group := range exactlyOne {
		set := 0
		for _, name := range group {
			if fv, ok := byTag[name]; ok && isPresent(fv) {
				set++
			}
		}
		if set != 1 {
			out = append(out, Violation{
				Field:  strings.Join(group, "|"),
				Rule:   "exactly_one",
				Detail: fmt.Sprintf("%d of %d fields set, want exactly one", set, len(group)),
			})
		}
	}

	return out
}

func validateField(f Field, fv reflect.Value, siblings map[string]reflect.Value) []Violation {
	present := isPresent(fv)

	if f.When != nil {
		want := conditionHolds(*f.When, siblings)
		switch {
		case want && !present:
			return []Violation{{Field: f.Name, Rule: "required_when", Detail: conditionDetail(*f.When)}}
		case !want && present:
			return []Violation{{Field: f.Name, Rule: "forbidden_when", Detail: "present outside " + conditionDetail(*f.When)}}
		}
	} else if f.Required && !present {
		return []Violation{{Field: f.Name, Rule: "required", Detail: "missing value"}}
	}

	if !present {
		return nil
	}

	val := deref(fv)
	var out []Violation

	if !typeMatches(f.Type, val) {
		out = append(out, Violation{Field: f.Name, Rule: "type", Detail: fmt.Sprintf("want %s, got %s", f.Type, val.Kind())})

		return out
	}

	if len(f.Enum) > 0 {
		if s := fmt.Sprint(val.Interface()); !slices.Contains(f.Enum, s) {
			out = append(out, Violation{Field: f.Name, Rule: "enum", Detail: fmt.Sprintf("%q not in %v", s, f.Enum)})
		}
	}

	if n, ok := numeric(val); ok {
		if f.Min != nil && (n < *f.Min || (f.ExclusiveMin && n == *f.Min)) {
			out = append(out, Violation{Field: f.Name, Rule: "range", Detail: fmt.Sprintf("%v below minimum %v", n, *f.Min)})
		}
		if f.Max != nil && n > *f.Max {
			out = append(out, Violation{Field: f.Name, Rule: "range", Detail: fmt.Sprintf("%v above maximum %v", n, *f.Max)})
		}
	}

	if f.Type == TypeList {
		length := val.Len()
		if length < f.MinItems {
			out = append(out, Violation{Field: f.Name, Rule: "min_items", Detail: fmt.Sprintf("%d items, want at least %d", length, f.MinItems)})
		}
		if f.MaxItems > 0 && length > f.MaxItems {
			out = append(out, Violation{Field: f.Name, Rule: "max_items", Detail: fmt.Sprintf("%d items, want at most %d", length, f.MaxItems)})
		}
	}

	if f.Type == TypeObject && len(f.Fields) > 0 {
		out = append(out, validateStruct(f.Fields, nil, val)...)
	}

	return out
}

// fieldsByTag maps JSON tag names to field values of the (possibly pointed-to)
// struct v.
func fieldsByTag(v reflect.Value) map[string]reflect.Value {
	v = deref(v)
	out := make(map[string]reflect.Value, v.NumField())
	t := v.Type()
	for i := range t.NumField() {
		tag := t.Field(i).Tag.Get("json")
		if tag == "" || tag == "-" {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")
		out[name] = v.Field(i)
	}

	return out
}

// isPresent reports whether a field carries a value: nil pointers, empty
// strings and nil slices count as absent.
func isPresent(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer:
		return !v.IsNil()
	case reflect.String:
		return v.String() != ""
	case reflect.Slice:
		return !v.IsNil()
	default:
		return v.IsValid()
	}
}

func deref(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Pointer {
		v = v.Elem()
	}

	return v
}

func conditionHolds(c Condition, siblings map[string]reflect.Value) bool {
	fv, ok := siblings[c.Field]
	if !ok || !isPresent(fv) {
		return false
	}

	return slices.Contains(c.In, fmt.Sprint(deref(fv).Interface()))
}

func conditionDetail(c Condition) string {
	return fmt.Sprintf("%s in %v", c.Field, c.In)
}

func typeMatches(t FieldType, v reflect.Value) bool {
	switch t {
	case TypeString:
		return v.Kind() == reflect.String
	case TypeInteger:
		switch v.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return true
		default:
			return false
		}
	case TypeNumber:
		if v.Kind() == reflect.Float32 || v.Kind() == reflect.Float64 {
			return true
		}

		return typeMatches(TypeInteger, v)
	case TypeBool:
		return v.Kind() == reflect.Bool
	case TypeList:
		return v.Kind() == reflect.Slice
	case TypeObject:
		return v.Kind() == reflect.Struct
	case TypeTime:
		return v.Type() == reflect.TypeOf(time.Time{})
	default:
		return false
	}
}

func numeric(v reflect.Value) (float64, bool) {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), true
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	default:
		return 0, false
	}
}
