package functional

// WrapFields wraps every field of a record in Some and merges any defaults
// records of already-wrapped fields underneath. The record's own fields take
// precedence on key collision; among defaults, earlier maps win over later
// ones.
func WrapFields[K comparable, V any](fields map[K]V, defaults ...map[K]Option[V]) map[K]Option[V] {
	out := make(map[K]Option[V], len(fields))
	for i := len(defaults) - 1; i >= 0; i-- {
		for k, v := range defaults[i] {
			out[k] = v
		}
	}
	for k, v := range fields {
		out[k] = Some(v)
	}
	return out
}

// UnwrapFields converts a record of wrapped fields back to a plain record,
// dropping None entries.
func UnwrapFields[K comparable, V any](fields map[K]Option[V]) map[K]V {
	out := make(map[K]V, len(fields))
	for k, o := range fields {
		if o.present {
			out[k] = o.value
		}
	}
	return out
}
