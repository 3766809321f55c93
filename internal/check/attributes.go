package check

import "strings"

// Attribute is one of the eight base attributes of a character
type Attribute string

const (
	// AttributeCourage (Mut)
	AttributeCourage Attribute = "MU"

	// AttributeWisdom (Klugheit)
	AttributeWisdom Attribute = "KL"

	// AttributeIntuition (Intuition)
	AttributeIntuition Attribute = "IN"

	// AttributeCharisma (Charisma)
	AttributeCharisma Attribute = "CH"

	// AttributeDexterity (Fingerfertigkeit)
	AttributeDexterity Attribute = "FF"

	// AttributeAgility (Gewandtheit)
	AttributeAgility Attribute = "GE"

	// AttributeConstitution (Konstitution)
	AttributeConstitution Attribute = "KO"

	// AttributeStrength (Körperkraft)
	AttributeStrength Attribute = "KK"
)

// Attributes lists the full vocabulary in sheet order
var Attributes = []Attribute{
	AttributeCourage,
	AttributeWisdom,
	AttributeIntuition,
	AttributeCharisma,
	AttributeDexterity,
	AttributeAgility,
	AttributeConstitution,
	AttributeStrength,
}

// IsValid reports whether the attribute belongs to the vocabulary
func (a Attribute) IsValid() bool {
	for _, known := range Attributes {
		if a == known {
			return true
		}
	}
	return false
}

// String returns the attribute symbol
func (a Attribute) String() string {
	return string(a)
}

// ParseAttribute turns a user supplied symbol such as "mu" or " KL" into an Attribute
func ParseAttribute(s string) (Attribute, error) {
	a := Attribute(strings.ToUpper(strings.TrimSpace(s)))
	if !a.IsValid() {
		return "", ErrUnknownAttribute
	}
	return a, nil
}

// ParseAttributeList parses a comma separated list like "MU,KL,IN".
// A skill is governed by one to three attributes.
func ParseAttributeList(s string) ([]Attribute, error) {
	parts := strings.Split(s, ",")
	attrs := make([]Attribute, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		a, err := ParseAttribute(part)
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, a)
	}

	if len(attrs) == 0 {
		return nil, ErrNoGoverningAttributes
	}
	if len(attrs) > MaxGoverningAttributes {
		return nil, ErrTooManyGoverningAttributes
	}

	return attrs, nil
}

// AttributeSet maps attributes to their current rating
type AttributeSet map[Attribute]int

// Get returns the rating of an attribute, 0 when it is missing
func (s AttributeSet) Get(a Attribute) int {
	if s == nil {
		return 0
	}
	return s[a]
}

// Clone returns an independent copy of the set
func (s AttributeSet) Clone() AttributeSet {
	if s == nil {
		return nil
	}
	clone := make(AttributeSet, len(s))
	for a, v := range s {
		clone[a] = v
	}
	return clone
}

// NewAttributeSet returns a set with every attribute at the given value
func NewAttributeSet(value int) AttributeSet {
	set := make(AttributeSet, len(Attributes))
	for _, a := range Attributes {
		set[a] = value
	}
	return set
}
