package value

import "encoding/json"

// Field is one named slot of a record, in declaration order.
type Field struct {
	Name  string
	Value Value
}

// Record is an instance of a user-declared struct type. It always carries
// exactly the declared fields, fully evaluated. Its external representation
// is the ordered array of its field representations, names omitted.
type Record struct {
	Name   string
	Fields []Field
}

func (r Record) Kind() Kind {
	return RecordKind
}

func (r Record) TypeName() string {
	return r.Name
}

func (r Record) NativeValue() any {
	result := make([]any, 0, len(r.Fields))
	for _, f := range r.Fields {
		result = append(result, f.Value.NativeValue())
	}
	return result
}

// Lookup returns the named field's value.
func (r Record) Lookup(name string) (Value, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

func (r Record) Eq(right Value) (Value, error) {
	return Bool(Equal(r, right)), nil
}

func (r Record) Ne(right Value) (Value, error) {
	return Bool(!Equal(r, right)), nil
}

func (r Record) MarshalJSON() ([]byte, error) {
	values := make([]Value, 0, len(r.Fields))
	for _, f := range r.Fields {
		values = append(values, f.Value)
	}
	return json.Marshal(values)
}
