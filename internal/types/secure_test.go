package types

import (
	"encoding/json"
	"fmt"
	"testing"
)

func TestSecretString_StringIsRedacted(t *testing.T) {
	s := SecretString("super-secret-key")

	if s.String() == "super-secret-key" {
		t.Error("String() must not return the raw value")
	}
	if formatted := fmt.Sprintf("%v", s); formatted != s.String() {
		t.Errorf("fmt output %q should use the redacted form", formatted)
	}
}

func TestSecretString_MarshalJSONIsRedacted(t *testing.T) {
	s := SecretString("super-secret-key")

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(data) == `"super-secret-key"` {
		t.Error("MarshalJSON must not emit the raw value")
	}
}

func TestSecretString_Unmask(t *testing.T) {
	s := SecretString("super-secret-key")

	if s.Unmask() != "super-secret-key" {
		t.Errorf("Unmask() = %q, want the raw value", s.Unmask())
	}
}
