package util

// Envelope is the shape of every error body.
type Envelope map[string]any

func Error(message string) Envelope {
	return Envelope{"error": message}
}

// Invalid reports a validation failure with its per-field detail.
func Invalid(message string, fields any) Envelope {
	return Envelope{"error": message, "fields": fields}
}
