package config

const (
	// MaxFormTitleLength is the maximum length for form titles.
	// Limited to 255 to fit in PostgreSQL VARCHAR(255) and provide
	// reasonable UX (titles should be short and descriptive).
	MaxFormTitleLength = 255

	// MaxFormDescriptionLength is the maximum length for form descriptions.
	MaxFormDescriptionLength = 2000

	// MaxFieldLabelLength is the maximum length for field display labels.
	MaxFieldLabelLength = 255

	// MaxFieldNameLength is the maximum length for field machine names.
	// Machine names are used as submission keys and should stay short.
	MaxFieldNameLength = 100
)
