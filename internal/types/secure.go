package types

// redactedPlaceholder replaces secret values in logs and serialized output.
const redactedPlaceholder = "***REDACTED***"

// SecretString is a string type that prevents accidental logging or
// serialization of sensitive values such as the service API key. String()
// and MarshalJSON() return a redacted placeholder; call Unmask() at the
// point where the raw value is genuinely required (e.g. comparing an
// incoming bearer token).
type SecretString string

// String returns a redacted placeholder instead of the raw value. Invoked by
// fmt and slog through the fmt.Stringer interface.
func (s SecretString) String() string {
	return redactedPlaceholder
}

// MarshalJSON returns the redacted placeholder as a JSON string so secrets
// never appear in config dumps or structured log entries.
func (s SecretString) MarshalJSON() ([]byte, error) {
	return []byte(`"` + redactedPlaceholder + `"`), nil
}

// Unmask returns the raw plaintext value of the secret.
func (s SecretString) Unmask() string {
	return string(s)
}
