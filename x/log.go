/*
 * Copyright 2017-2018 Dgraph Labs, Inc.
 *
 * This file is available under the Apache License, Version 2.0,
 * with the Commons Clause restriction.
 */

package x

import (
	"sync"

	"go.uber.org/zap"
)

var (
	mu     sync.RWMutex
	logger *zap.SugaredLogger
)

func init() {
	l, err := zap.NewProduction()
	if err != nil {
		l = zap.NewNop()
	}
	logger = l.Sugar()
}

// SetLogger overrides the package logger. Tests use this to install a
// zaptest logger so validation warnings land in the test log.
func SetLogger(l *zap.SugaredLogger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

func log() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Warnf logs a structured warning.
func Warnf(format string, args ...interface{}) {
	log().Warnf(format, args...)
}

// LogErrorf logs a structured error and returns it so it can also be
// propagated to the caller.
func LogErrorf(format string, args ...interface{}) error {
	err := Errorf(format, args...)
	log().Errorw(err.Error())
	return err
}
