// Package log implements the structured logger used across etkit.
//
// Package: log
// Title: etkit Structured Logging
// Description: Leveled, field-based logging with JSON, text, console and logfmt output.
//              Loggers are configured once and specialised with With* calls which
//              return copies, so handlers can add context without affecting others.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{
//		Level:  log.LevelInfo,
//		Format: log.FormatLogfmt,
//		Output: os.Stderr,
//		Name:   "etkit",
//	})
//
//	logger.Info("aggregation finished", log.Int("matched", 3), log.String("rule", "even"))
//
//	timer := logger.StartTimer("sum")
//	defer timer.Stop()
//
// Errors created by core/error are logged with their code, severity and details:
//
//	logger.LogError(err)
package log
