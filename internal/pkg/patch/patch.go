package patch

// Set adds key=*ptr to fields when ptr is not nil. Used to build partial $set documents.
func Set[T any](fields map[string]any, key string, ptr *T) {
	if ptr != nil {
		fields[key] = *ptr
	}
}
