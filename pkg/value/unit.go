package value

import "encoding/json"

// Unit is the absent value: the result of declarations, empty branches, and
// unknown-name lookups in expression position.
type Unit struct{}

func (Unit) Kind() Kind {
	return UnitKind
}

func (Unit) TypeName() string {
	return "unit"
}

func (Unit) NativeValue() any {
	return nil
}

func (u Unit) Eq(right Value) (Value, error) {
	return Bool(Equal(u, right)), nil
}

func (u Unit) Ne(right Value) (Value, error) {
	return Bool(!Equal(u, right)), nil
}

func (Unit) MarshalJSON() ([]byte, error) {
	return json.Marshal(nil)
}
