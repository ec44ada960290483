package value

// ToString converts scalars to their string form. Objects, arrays and
// functions are not convertible.
func ToString(v Value) (string, error) {
	switch s := v.(type) {
	case String:
		return string(s), nil
	case Number:
		return s.String(), nil
	case Boolean:
		if s {
			return "true", nil
		}
		return "false", nil
	case Null, PropagatedNull:
		return "null", nil
	}
	return "", &ErrNotStringConvertible{Kind: v.Kind()}
}

func ToInt(v Value) (int64, error) {
	if n, ok := v.(Number); ok {
		if i, ok := n.ToInt(); ok {
			return i, nil
		}
	}
	return 0, &ErrNotIntConvertible{Kind: v.Kind()}
}

// GetProperty reads key from v. Objects are indexed by the string form of key
// and arrays by its integer form. A miss is an ErrPropertyNotFound unless
// propagate is set, in which case the result is PropagatedNull. Once a chain
// has produced PropagatedNull every further access yields PropagatedNull.
func GetProperty(v Value, key Value, propagate bool) (Value, error) {
	var (
		result Value
		found  bool
	)

	switch base := v.(type) {
	case PropagatedNull:
		return base, nil
	case *Object:
		k, err := ToString(key)
		if err != nil {
			return nil, err
		}
		result, found = base.LookupValue(k)
	case Array:
		i, err := ToInt(key)
		if err != nil {
			return nil, err
		}
		result, found = base.Index(i)
	}

	if found {
		if propagate {
			return OrPropagatedNull(result), nil
		}
		return result, nil
	}

	if propagate {
		return PropagatedNull{}, nil
	}

	k, err := ToString(key)
	if err != nil {
		k = "<" + string(key.Kind()) + ">"
	}
	return nil, &ErrPropertyNotFound{
		Kind: v.Kind(),
		Key:  k,
	}
}
