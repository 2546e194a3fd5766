package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"

	"github.com/Astemirdum/library-recommendation/pkg/logger"
	"github.com/Astemirdum/library-recommendation/recommendation/app"
	"github.com/Astemirdum/library-recommendation/recommendation/config"
)

// generator prints one recommendation batch as JSON on stdout; logs go to stderr.
func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(os.Stderr, "load envs from .env:", err)
		os.Exit(1)
	}
	cfg := config.NewConfig(
		config.WithLogLevel(zapcore.InfoLevel),
		config.WithLogSink(logger.SinkStderr),
	)

	if err := app.RunGenerator(cfg); err != nil {
		fmt.Fprintln(os.Stderr, "generator:", err)
		os.Exit(1)
	}
}
