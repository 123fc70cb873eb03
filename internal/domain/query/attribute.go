// Package query holds the typed restriction vocabulary a parsed query
// is translated into, independent of any particular card instance.
package query

// Attribute names a card attribute a restriction reads. Restrictions
// carry an attribute tag and are dispatched through fixed lookup
// tables, keeping the restriction list plain data.
type Attribute string

// Numeric attributes.
const (
	AttrCost    Attribute = "cost"
	AttrHealth  Attribute = "health"
	AttrDefense Attribute = "defense"
	AttrPower   Attribute = "power"
)

// Text attributes.
const (
	AttrName        Attribute = "name"
	AttrType        Attribute = "type"
	AttrDescription Attribute = "description"
)

// Set-valued attributes.
const (
	AttrKins      Attribute = "kins"
	AttrAbilities Attribute = "abilities"
	AttrFunctions Attribute = "functions"
	AttrOther     Attribute = "other"
	AttrArtists   Attribute = "artists"
)

var numericAttrs = map[Attribute]bool{
	AttrCost: true, AttrHealth: true, AttrDefense: true, AttrPower: true,
}

var textAttrs = map[Attribute]bool{
	AttrName: true, AttrType: true, AttrDescription: true,
}

var setAttrs = map[Attribute]bool{
	AttrKins: true, AttrAbilities: true, AttrFunctions: true,
	AttrOther: true, AttrArtists: true,
}

// IsNumeric reports whether the attribute is a numeric stat.
func (a Attribute) IsNumeric() bool { return numericAttrs[a] }

// IsText reports whether the attribute is a free-text field.
func (a Attribute) IsText() bool { return textAttrs[a] }

// IsSet reports whether the attribute is a set-valued field.
func (a Attribute) IsSet() bool { return setAttrs[a] }

// LookupAttribute resolves a field name from query text. ok is false
// for names the query language does not know.
func LookupAttribute(name string) (Attribute, bool) {
	a := Attribute(name)
	if a.IsNumeric() || a.IsText() || a.IsSet() {
		return a, true
	}
	return "", false
}
