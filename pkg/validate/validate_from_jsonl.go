package validate

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Gunvolt24/warpy_users/internal/ports"
)

// LineError — причина отклонения конкретной строки JSONL (нумерация с 1).
type LineError struct {
	Line int
	Err  error
}

func (e LineError) Error() string { return fmt.Sprintf("line %d: %v", e.Line, e.Err) }

// Summary — статистика валидации входа.
type Summary struct {
	Valid   int
	Invalid []LineError
}

func (s Summary) String() string {
	return fmt.Sprintf("%d valid / %d invalid", s.Valid, len(s.Invalid))
}

// ValidateJSONLStream — читает JSONL, валидирует каждую строку как запрос на создание пользователя.
// Валидные запросы пишутся в writer каноническим JSON (одна строка на запрос).
// Пустые строки пропускаются; невалидные попадают в Summary.Invalid и не прерывают чтение.
func ValidateJSONLStream(ctx context.Context, validator ports.UserValidator, ir io.Reader, ow io.Writer) (Summary, error) {
	var res Summary

	scanner := bufio.NewScanner(ir)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 10*1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		if err := ctx.Err(); err != nil {
			return res, err
		}

		lineBytes := bytes.TrimSpace(scanner.Bytes())
		if len(lineBytes) == 0 {
			continue
		}

		req, err := ValidateUserFromJSON(ctx, validator, lineBytes)
		if err != nil {
			res.Invalid = append(res.Invalid, LineError{Line: line, Err: err})
			continue
		}

		if err := writeCanonical(ow, req); err != nil {
			return res, err
		}
		res.Valid++
	}
	if err := scanner.Err(); err != nil {
		return res, fmt.Errorf("scan: %w", err)
	}
	return res, nil
}

// writeCanonical — компактный JSON и перевод строки.
func writeCanonical(ow io.Writer, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	raw = append(raw, '\n')
	if _, err := ow.Write(raw); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}
