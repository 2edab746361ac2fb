package parser

// Entry is a single NAME = NUMBER assignment from a flat table body.
type Entry struct {
	// Name is the left-hand side, trimmed.
	Name string
	// Value is the parsed integer on the right-hand side.
	Value int64
}

// Record is one [KEY] = { ... } unit found while walking a record table.
type Record struct {
	// Key is the trimmed text between the brackets.
	Key string
	// Body is the text between the record's braces.
	Body string
}
