package recognizer

// UnavailableError indicates the OCR engine is missing or misconfigured.
type UnavailableError struct {
	Reason string
}

func (e *UnavailableError) Error() string {
	return "text recognition unavailable: " + e.Reason
}

// NoTextError indicates recognition produced text too sparse to proceed.
type NoTextError struct{}

func (e *NoTextError) Error() string {
	return "no text recognized in document"
}
