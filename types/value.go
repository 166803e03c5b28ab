package types

func AsBool(v Value) bool {
	bv, ok := v.(BooleanValue)
	if ok {
		return bool(bv)
	}

	return v.V().(bool)
}

func AsFloat64(v Value) float64 {
	dv, ok := v.(DoubleValue)
	if ok {
		return float64(dv)
	}

	return v.V().(float64)
}

func AsString(v Value) string {
	tv, ok := v.(TextValue)
	if ok {
		return string(tv)
	}

	return v.V().(string)
}

func AsArray(v Value) Array {
	av, ok := v.(*ArrayValue)
	if ok {
		return av.a
	}

	return v.V().(Array)
}

func AsObject(v Value) Object {
	ov, ok := v.(*ObjectValue)
	if ok {
		return ov.o
	}

	return v.V().(Object)
}

func IsNull(v Value) bool {
	return v == nil || v.Type() == TypeNull
}
