package core

// Detect returns the first schema whose markers match the header.
// A schema matches when any one of its markers matches any column.
// Schemas are tried in the order given, so callers control priority.
func Detect(header HeaderIndex, schemas []CategorySchema) Category {
	for _, schema := range schemas {
		for _, marker := range schema.Markers {
			for column := range header {
				if marker.Matches(column) {
					return schema.Category
				}
			}
		}
	}
	return CategoryUnknown
}

// DetectCategory classifies a header against every registered schema.
func DetectCategory(header HeaderIndex) Category {
	return Detect(header, All())
}
