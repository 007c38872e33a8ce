package log

import (
	"fmt"
	"io"
	"os"
	"strings"
)

type logLevel int

const (
	SilentLevel logLevel = iota
	MajorLevel
	MinorLevel
	DebugLevel
)

var (
	majorPrefix = ""        // Prepended to each output line
	minorPrefix = "  "      //
	debugPrefix = "   Dbg:" //

	out   io.Writer = os.Stderr
	level logLevel
)

func (t logLevel) String() string {
	switch t {
	case MajorLevel:
		return "Major"
	case MinorLevel:
		return "Minor"
	case DebugLevel:
		return "Debug"
	}

	return "Silent"
}

// SetOut changes the output of logging to the supplied io.Writer. The default is
// os.Stderr. The supplied io.Writer must never be nil.
func SetOut(w io.Writer) {
	if w == nil {
		panic("log.SetOut() called with a nil io.Writer")
	}
	out = w
}

// Out returns the current io.Writer for output which is not controlled by log levels such
// as fatal errors and usage. The return value will never be nil.
func Out() io.Writer {
	return out
}

// SetLevel sets the current logging level.
func SetLevel(l logLevel) {
	level = l
}

// Level returns current level
func Level() logLevel {
	return level
}

// IfMajor returns true if Major logging is written to the output stream. Callers use the
// If* functions when building the log arguments is expensive, such as dumping all
// generated fragments.
func IfMajor() bool {
	return level >= MajorLevel
}

func IfMinor() bool {
	return level >= MinorLevel
}

func IfDebug() bool {
	return level >= DebugLevel
}

// Majorf provides an approximate fmt.Printf equivalent interface to logging. Output is
// only generated if the level is >= Major. A newline is always added to the end of the
// output so the caller should not have that in their string.
func Majorf(format string, a ...interface{}) (n int, err error) {
	return logf(MajorLevel, majorPrefix, format, a...)
}

// Major provides a fmt.Print like interface to logging. Output is only generated if the
// level is >= Major. Major uses fmt.Sprint to generate the output line thus it inherits
// the feature whereby spaces are added between operands when neither is a string.
func Major(a ...interface{}) (n int, err error) {
	return logp(MajorLevel, majorPrefix, a...)
}

// Minorf is the Minor level equivalent of Majorf.
func Minorf(format string, a ...interface{}) (n int, err error) {
	return logf(MinorLevel, minorPrefix, format, a...)
}

// Minor is the Minor level equivalent of Major.
func Minor(a ...interface{}) (n int, err error) {
	return logp(MinorLevel, minorPrefix, a...)
}

// Debugf is the Debug level equivalent of Majorf.
func Debugf(format string, a ...interface{}) (n int, err error) {
	return logf(DebugLevel, debugPrefix, format, a...)
}

// Debug is the Debug level equivalent of Major.
func Debug(a ...interface{}) (n int, err error) {
	return logp(DebugLevel, debugPrefix, a...)
}

func logf(l logLevel, prefix, format string, a ...interface{}) (int, error) {
	if level < l {
		return 0, nil
	}

	return prefixAndPrintLines(fmt.Sprintf(format, a...), prefix)
}

func logp(l logLevel, prefix string, a ...interface{}) (int, error) {
	if level < l {
		return 0, nil
	}

	return prefixAndPrintLines(fmt.Sprint(a...), prefix)
}

// prefixAndPrintLines is the common handler which takes potentially multiple lines and
// sends them to the out stream prefixed with the supplied prefix.
func prefixAndPrintLines(lines, prefix string) (int, error) {
	if !strings.Contains(lines, "\n") { // Expect this to be the common case
		return fmt.Fprint(out, prefix, lines, "\n")
	}

	ar := strings.Split(lines, "\n")

	for len(ar) > 0 && len(ar[len(ar)-1]) == 0 { // Chomp trailing empty lines
		ar = ar[:len(ar)-1]
	}

	s := strings.Join(ar, "\n"+prefix) // Line1 \nprefix Line2 \nprefix Line3

	return fmt.Fprint(out, prefix, s, "\n")
}
