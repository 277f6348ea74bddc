package ports

import "context"

// Logger — логгер сервиса. Реализация сама добавляет поля из ctx
// (request_id, delivery_tag, trace_id, span_id), поэтому вызовы передают контекст доставки или запроса.
type Logger interface {
	Infof(ctx context.Context, format string, args ...any)
	Warnf(ctx context.Context, format string, args ...any)
	Errorf(ctx context.Context, format string, args ...any)
}
