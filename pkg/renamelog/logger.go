// SPDX-License-Identifier: Apache-2.0

// Package renamelog logs the rename orchestrator's progress as it walks a
// TOC, mirroring the teacher's migration-run logger shape.
package renamelog

import "github.com/pterm/pterm"

// Logger is responsible for logging rename-operation steps.
type Logger interface {
	LogRenameStart(origDBName, destDBName string)
	LogRenameComplete(destDBName string)
	LogEntryRewrite(description, tag string)
	LogCatalogFileRewrite(tag, filename string)

	Info(msg string, args ...any)
}

type renameLogger struct {
	logger pterm.Logger
}

type noopLogger struct{}

// NewLogger returns the pterm-backed Logger used outside tests.
func NewLogger() Logger {
	return &renameLogger{logger: pterm.DefaultLogger}
}

// NewNoopLogger returns a Logger that discards every call.
func NewNoopLogger() Logger {
	return &noopLogger{}
}

func (l *renameLogger) LogRenameStart(origDBName, destDBName string) {
	l.logger.Info("starting rename", l.logger.Args([]any{
		"orig_db_name", origDBName,
		"dest_db_name", destDBName,
	}))
}

func (l *renameLogger) LogRenameComplete(destDBName string) {
	l.logger.Info("completed rename", l.logger.Args("dest_db_name", destDBName))
}

func (l *renameLogger) LogEntryRewrite(description, tag string) {
	l.logger.Info("rewriting entry", l.logger.Args([]any{
		"description", description,
		"tag", tag,
	}))
}

func (l *renameLogger) LogCatalogFileRewrite(tag, filename string) {
	l.logger.Info("rewriting catalog file", l.logger.Args([]any{
		"tag", tag,
		"filename", filename,
	}))
}

func (l *renameLogger) Info(msg string, args ...any) {
	l.logger.Info(msg, l.logger.Args(args))
}

func (noopLogger) LogRenameStart(origDBName, destDBName string) {}
func (noopLogger) LogRenameComplete(destDBName string)          {}
func (noopLogger) LogEntryRewrite(description, tag string)      {}
func (noopLogger) LogCatalogFileRewrite(tag, filename string)   {}
func (noopLogger) Info(msg string, args ...any)                 {}
