package extraction

import "fmt"

// UnsupportedFormatError indicates a file extension we cannot extract text from.
type UnsupportedFormatError struct {
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format %q: only pdf, docx and txt are allowed", e.Extension)
}

// ExtractionError wraps a failure while reading or decoding a document.
type ExtractionError struct {
	Format string
	Cause  error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("%s extraction failed: %v", e.Format, e.Cause)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
