// Package diag is the analyzer's diagnostic sink and the sticky-flag
// configuration around it: two toggleable output streams plus a "has this
// run failed since the last prepare()" flag, layered over plain
// fmt.Fprintf formatting.
package diag

import (
	"fmt"
	"io"
	"os"
)

// Sink is what the analyzer reports diagnostics through. Error always
// clears the sticky passed flag, whether or not output is enabled; Log
// never affects it.
type Sink interface {
	Error(code, line int, msg string)
	Log(line int, msg string)
}

// Config is the default Sink: formatted text over two independently
// toggleable io.Writers, plus the sticky "passed" flag the top-level Work
// call reports.
type Config struct {
	errW, logW     io.Writer
	errOn, logOn   bool
	passed         bool
}

// New returns a Config with errors enabled, logging disabled, writing to
// stderr/stdout, and passed already true (as after a Prepare).
func New() *Config {
	return &Config{
		errW:   os.Stderr,
		logW:   os.Stdout,
		errOn:  true,
		logOn:  false,
		passed: true,
	}
}

// SetErrorWriter and SetLogWriter redirect output; mainly used by tests to
// capture diagnostics into a buffer.
func (c *Config) SetErrorWriter(w io.Writer) { c.errW = w }
func (c *Config) SetLogWriter(w io.Writer)   { c.logW = w }

// SetLog enables or disables traversal logging.
func (c *Config) SetLog(on bool) { c.logOn = on }

// SetError enables or disables error output. Disabling it does not
// suppress the passed flag: Error still clears it.
func (c *Config) SetError(on bool) { c.errOn = on }

// Prepare resets the passed flag to true, ready for a fresh Work call.
func (c *Config) Prepare() { c.passed = true }

// HasPassed reports whether no diagnostic has been emitted since the last
// Prepare.
func (c *Config) HasPassed() bool { return c.passed }

// Error reports one numbered diagnostic. The passed flag is cleared
// unconditionally; the formatted line is only written if errors are
// enabled.
func (c *Config) Error(code, line int, msg string) {
	c.passed = false
	if c.errOn {
		fmt.Fprintf(c.errW, "Error type %d at Line %d: %s.\n", code, line, msg)
	}
}

// Log emits a traversal-logging line iff logging is enabled.
func (c *Config) Log(line int, msg string) {
	if c.logOn {
		fmt.Fprintf(c.logW, "semantics log at Line %d: %s\n", line, msg)
	}
}
