package validate

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const graceJSON = `{"first_name":"Grace","last_name":"Hopper","username":"grace","password":"y","avatar":"g.png","email":"grace@example.com"}`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}
	return path
}

func TestValidateFile_JSON_Auto_OK(t *testing.T) {
	path := writeTemp(t, "one.json", adaJSON)

	var out bytes.Buffer
	summary, err := ValidateFile(context.Background(), NewUserValidator(), path, FormatAuto, &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.String() != "1 valid / 0 invalid" {
		t.Fatalf("unexpected summary: %s", summary)
	}
	if strings.TrimSpace(out.String()) != adaJSON {
		t.Fatalf("unexpected canonical output: %s", out.String())
	}
}

func TestValidateFile_JSON_Invalid(t *testing.T) {
	path := writeTemp(t, "bad.json", `{"first_name":"Ada"}`)

	var out bytes.Buffer
	summary, err := ValidateFile(context.Background(), NewUserValidator(), path, FormatJSON, &out)
	if !errors.Is(err, ErrInvalidUser) {
		t.Fatalf("want ErrInvalidUser, got %v", err)
	}
	if summary.String() != "0 valid / 1 invalid" {
		t.Fatalf("unexpected summary: %s", summary)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no output, got %q", out.String())
	}
}

func TestValidateFile_JSONL_Auto_Mixed(t *testing.T) {
	content := adaJSON + "\n" +
		`{"first_name":"NoEmail","last_name":"L","username":"u","password":"p","avatar":"a"}` + "\n" +
		"\n" +
		graceJSON + "\n"
	path := writeTemp(t, "list.jsonl", content)

	var out bytes.Buffer
	summary, err := ValidateFile(context.Background(), NewUserValidator(), path, FormatAuto, &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.String() != "2 valid / 1 invalid" {
		t.Fatalf("unexpected summary: %s", summary)
	}
	if summary.Invalid[0].Line != 2 {
		t.Fatalf("invalid line: want 2, got %d", summary.Invalid[0].Line)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 output lines, got %d", len(lines))
	}
}

func TestValidateFile_NotFound(t *testing.T) {
	_, err := ValidateFile(context.Background(), NewUserValidator(), filepath.Join(t.TempDir(), "none.json"), FormatAuto, &bytes.Buffer{})
	if err == nil || !strings.Contains(err.Error(), "open file") {
		t.Fatalf("expected open file error, got %v", err)
	}
}

func TestValidateReader_UnsupportedFormat(t *testing.T) {
	_, err := ValidateReader(context.Background(), NewUserValidator(), strings.NewReader(adaJSON), InputFormat("xml"), &bytes.Buffer{})
	if err == nil || !strings.Contains(err.Error(), "unsupported format") {
		t.Fatalf("expected unsupported format error, got %v", err)
	}
}

func TestValidateJSONLStream_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ValidateJSONLStream(ctx, NewUserValidator(), strings.NewReader(adaJSON+"\n"), &bytes.Buffer{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}
