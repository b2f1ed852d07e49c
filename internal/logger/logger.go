package logger

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Setup sends the standard logger to stderr and, when file is not empty, to a
// rotating log file as well. The returned closer is nil without a file.
func Setup(file string) io.Closer {
	log.SetFlags(log.Ldate | log.Ltime)

	if file == "" {
		log.SetOutput(os.Stderr)
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(file), 0755); err != nil {
		log.SetOutput(os.Stderr)
		log.Printf("Failed to create log directory: %v", err)
		return nil
	}

	rotating := &lumberjack.Logger{
		Filename:   file,
		MaxSize:    5, // MB
		MaxBackups: 2,
		MaxAge:     28, // days
		Compress:   true,
	}

	log.SetOutput(io.MultiWriter(os.Stderr, rotating))
	return rotating
}
