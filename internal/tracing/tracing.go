/*
Package tracing is a thin facade over the schuko tracing framework.

All packages of this module trace through this facade, so that clients
configure tracing in one place (schuko's global core tracer). Tests
redirect trace output into the testing log with schuko's testconfig
package.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package tracing

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// Tracer returns the tracer all textops packages log to.
func Tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// P starts a log entry with an additional key/value field.
func P(key string, value interface{}) tracing.Trace {
	return Tracer().P(key, value)
}

// Debugf logs a debug-level message to the module tracer.
func Debugf(format string, args ...interface{}) {
	Tracer().Debugf(format, args...)
}

// Infof logs an info-level message to the module tracer.
func Infof(format string, args ...interface{}) {
	Tracer().Infof(format, args...)
}

// Errorf logs an error-level message to the module tracer.
func Errorf(format string, args ...interface{}) {
	Tracer().Errorf(format, args...)
}
