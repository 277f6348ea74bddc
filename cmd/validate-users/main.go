package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Gunvolt24/warpy_users/pkg/validate"
)

// CLI-приложение для офлайн-проверки запросов на создание пользователей.
// Валидные запросы печатаются в stdout каноническим JSON, ошибки и сводка — в stderr.
func main() {
	inputPath := flag.String("in", "", "path to input (.json or .jsonl). If empty, reads from stdin.")
	formatStr := flag.String("format", "auto", "input format: auto|json|jsonl")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	userValidator := validate.NewUserValidator()
	format := validate.InputFormat(*formatStr)

	var (
		summary validate.Summary
		err     error
	)
	if *inputPath == "" {
		// stdin: auto трактуется как jsonl
		summary, err = validate.ValidateReader(ctx, userValidator, os.Stdin, format, os.Stdout)
	} else {
		summary, err = validate.ValidateFile(ctx, userValidator, *inputPath, format, os.Stdout)
	}

	for _, le := range summary.Invalid {
		fmt.Fprintf(os.Stderr, "invalid: %v\n", le)
	}

	switch {
	case err != nil:
		fmt.Fprintf(os.Stderr, "validation: %v (%s)\n", err, summary)
		os.Exit(1)
	case len(summary.Invalid) > 0:
		fmt.Fprintf(os.Stderr, "validation failed (%s)\n", summary)
		os.Exit(1)
	default:
		fmt.Fprintf(os.Stderr, "validation ok (%s)\n", summary)
	}
}
