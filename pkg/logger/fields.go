package logger

import "strconv"

// With returns a copy of f with key set to value.
func (f Fields) With(key string, value any) Fields {
	out := make(Fields, len(f)+1)
	for k, v := range f {
		out[k] = v
	}
	out[key] = value
	return out
}

// Merge combines field sets into a new one. Later sets win on collisions.
func Merge(sets ...Fields) Fields {
	out := Fields{}
	for _, set := range sets {
		for k, v := range set {
			out[k] = v
		}
	}
	return out
}

// Err records err under the key "error".
// If err is nil, it returns empty Fields.
func Err(err error) Fields {
	if err == nil {
		return Fields{}
	}
	return Fields{"error": err.Error()}
}

// Errs groups the non-nil errors under the key "errors", keyed by position.
func Errs(errs ...error) Fields {
	group := make(map[string]string, len(errs))
	for i, err := range errs {
		if err != nil {
			group[strconv.Itoa(i)] = err.Error()
		}
	}
	if len(group) == 0 {
		return Fields{}
	}
	return Fields{"errors": group}
}
