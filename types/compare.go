package types

// IsEqual reports whether a and b are structurally equal: same type, same
// payload, and for arrays and objects the same children in the same order.
// Object field order and duplicate fields are significant. Doubles compare
// with ==, so NaN is never equal to anything, including itself.
func IsEqual(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	if a.Type() != b.Type() {
		return false
	}

	switch a.Type() {
	case TypeNull:
		return true
	case TypeBoolean:
		return AsBool(a) == AsBool(b)
	case TypeDouble:
		return AsFloat64(a) == AsFloat64(b)
	case TypeText:
		return AsString(a) == AsString(b)
	case TypeArray:
		return isEqualArrays(AsArray(a), AsArray(b))
	case TypeObject:
		return isEqualObjects(AsObject(a), AsObject(b))
	}

	return false
}

func isEqualArrays(a, b Array) bool {
	if a.Len() != b.Len() {
		return false
	}

	for i := 0; i < a.Len(); i++ {
		av, err := a.GetByIndex(i)
		if err != nil {
			return false
		}
		bv, err := b.GetByIndex(i)
		if err != nil {
			return false
		}
		if !IsEqual(av, bv) {
			return false
		}
	}

	return true
}

func isEqualObjects(a, b Object) bool {
	if a.Len() != b.Len() {
		return false
	}

	return isEqualFields(fieldsOf(a), fieldsOf(b))
}

func isEqualFields(a, b []Field) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i].Name != b[i].Name || !IsEqual(a[i].Value, b[i].Value) {
			return false
		}
	}

	return true
}

// fieldsOf materializes the pair sequence of o. FieldBuffer is accessed
// directly, other implementations are iterated.
func fieldsOf(o Object) []Field {
	if fb, ok := o.(*FieldBuffer); ok {
		return fb.Fields()
	}

	fields := make([]Field, 0, o.Len())
	_ = o.Iterate(func(field string, value Value) error {
		fields = append(fields, Field{Name: field, Value: value})
		return nil
	})

	return fields
}
