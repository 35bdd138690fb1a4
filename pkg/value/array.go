package value

// Array is an ordered sequence of values; elements may be of mixed types.
type Array []Value

func (a Array) Kind() Kind {
	return ArrayKind
}

func (a Array) TypeName() string {
	return "array"
}

func (a Array) NativeValue() any {
	result := make([]any, 0, len(a))
	for _, v := range a {
		result = append(result, v.NativeValue())
	}
	return result
}

// Index returns the element at idx, false when out of range.
func (a Array) Index(idx int64) (Value, bool) {
	if idx < 0 || int(idx) >= len(a) {
		return nil, false
	}
	return a[idx], true
}

func (a Array) Len() int64 {
	return int64(len(a))
}

func (a Array) Eq(right Value) (Value, error) {
	return Bool(Equal(a, right)), nil
}

func (a Array) Ne(right Value) (Value, error) {
	return Bool(!Equal(a, right)), nil
}
