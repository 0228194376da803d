// Package slog provides logging decorators for shopinsight services.
package slog
