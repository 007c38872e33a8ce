/*
Package log provides global diagnostic output control for dnsconvert. Logging comes in
four levels: Silent, Major, Minor and Debug which each level more detailed than the
previous. Levels are inclusive, so, e.g., if MinorLevel is set that implies MajorLevel
logging.

dnsconvert writes its zone fragments to files, never to the log, so the log is purely
diagnostic and defaults to os.Stderr. Major carries the run summary, Minor carries a dump
of the generated fragments and Debug traces each accepted input line.

The Print and Printf interface are similar to the fmt versions with a few subtle
differences due to the need to prefix lines. If the resulting string contains multiple
lines they are all printed with the prefix for the logging level and excess trailing
newlines are trimmed.

Fatal errors and usage output are not subject to levels. They are written directly to
log.Out() so that tests can capture them with SetOut.
*/
package log
