// Package slog decorates shopinsight services with structured logging.
package slog
