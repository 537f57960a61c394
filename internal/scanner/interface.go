package scanner

// NameExtractor pulls environment variable names out of one file's
// content. Extractors only see files their CanHandle accepts.
type NameExtractor interface {
	// Extract returns the variable names referenced in the file
	Extract(filename string, content []byte) ([]string, error)

	// CanHandle returns true if this extractor can process the given file
	CanHandle(filename string) bool
}
