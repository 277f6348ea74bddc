package validate

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Gunvolt24/warpy_users/internal/ports"
)

// InputFormat допустимые значения.
type InputFormat string

const (
	FormatAuto  InputFormat = "auto"
	FormatJSON  InputFormat = "json"
	FormatJSONL InputFormat = "jsonl"
)

// resolveFormat — auto определяется по расширению, по умолчанию JSON.
func resolveFormat(format InputFormat, filePath string) InputFormat {
	if format != FormatAuto {
		return format
	}
	if strings.EqualFold(filepath.Ext(filePath), ".jsonl") {
		return FormatJSONL
	}
	return FormatJSON
}

// ValidateFile — валидирует файл с запросами (JSON — один запрос, JSONL — по запросу на строку).
// Для JSON невалидный запрос возвращается ошибкой; для JSONL ошибки строк собираются в Summary.
func ValidateFile(ctx context.Context, validator ports.UserValidator, filePath string, format InputFormat, ow io.Writer) (Summary, error) {
	format = resolveFormat(format, filePath)

	file, err := os.Open(filePath)
	if err != nil {
		return Summary{}, fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	return ValidateReader(ctx, validator, file, format, ow)
}

// ValidateReader — то же, что ValidateFile, но для произвольного reader'а (stdin).
// FormatAuto здесь трактуется как JSONL.
func ValidateReader(ctx context.Context, validator ports.UserValidator, ir io.Reader, format InputFormat, ow io.Writer) (Summary, error) {
	switch format {
	case FormatJSON:
		raw, err := io.ReadAll(ir)
		if err != nil {
			return Summary{}, fmt.Errorf("read input: %w", err)
		}
		req, err := ValidateUserFromJSON(ctx, validator, raw)
		if err != nil {
			return Summary{Invalid: []LineError{{Line: 1, Err: err}}}, err
		}
		if err := writeCanonical(ow, req); err != nil {
			return Summary{}, err
		}
		return Summary{Valid: 1}, nil

	case FormatJSONL, FormatAuto:
		return ValidateJSONLStream(ctx, validator, ir, ow)

	default:
		return Summary{}, fmt.Errorf("unsupported format: %s", format)
	}
}
