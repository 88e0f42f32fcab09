package service

// patchField applies one optional field of a partial update to T.
type patchField[T any] func(*T)

// field copies *value into the field selected by target when value is set.
func field[T, V any](value *V, target func(*T) *V) patchField[T] {
	return convertedField(value, target, func(v V) V { return v })
}

// convertedField is [field] for request and model types that differ, e.g. a
// float64 quantity in the request and an int in the model.
func convertedField[T, V, W any](value *V, target func(*T) *W, convert func(V) W) patchField[T] {
	return func(t *T) {
		if value != nil {
			*target(t) = convert(*value)
		}
	}
}

// applyPatch returns a copy of base with every set field applied.
func applyPatch[T any](base T, fields ...patchField[T]) T {
	for _, apply := range fields {
		apply(&base)
	}
	return base
}
