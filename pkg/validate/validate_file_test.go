package validate_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Gunvolt24/person_sync/pkg/validate"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
		t.Fatalf("write temp: %v", err)
	}
	return p
}

func TestValidateFile_JSONByExtension(t *testing.T) {
	path := writeTemp(t, "person.json", `{"id":"1","name":"A","email":"a@x.com"}`)

	var out bytes.Buffer
	summary, err := validate.ValidateFile(context.Background(), validate.NewPersonValidator(), path, validate.FormatAuto, &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary != "1 valid / 0 invalid" {
		t.Fatalf("unexpected summary: %q", summary)
	}
	if !strings.Contains(out.String(), `"id":"1"`) {
		t.Fatalf("canonical output missing: %q", out.String())
	}
}

func TestValidateFile_JSONLByExtension(t *testing.T) {
	path := writeTemp(t, "persons.jsonl",
		"{\"id\":\"1\",\"name\":\"A\",\"email\":\"a@x.com\"}\n{\"id\":\"2\"}\n")

	var out bytes.Buffer
	summary, err := validate.ValidateFile(context.Background(), validate.NewPersonValidator(), path, validate.FormatAuto, &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary != "1 valid / 1 invalid" {
		t.Fatalf("unexpected summary: %q", summary)
	}
}

func TestValidateFile_InvalidJSON(t *testing.T) {
	path := writeTemp(t, "bad.json", `{"id":""}`)

	var out bytes.Buffer
	if _, err := validate.ValidateFile(context.Background(), validate.NewPersonValidator(), path, validate.FormatJSON, &out); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestValidateFile_UnsupportedFormat(t *testing.T) {
	path := writeTemp(t, "x.json", `{}`)
	var out bytes.Buffer
	if _, err := validate.ValidateFile(context.Background(), validate.NewPersonValidator(), path, validate.InputFormat("xml"), &out); err == nil {
		t.Fatal("expected unsupported format error")
	}
}
