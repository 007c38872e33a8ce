/*
Package osutil isolates the platform specific parts of dnsconvert: the set of signals
which are trapped while output files are committed and access to file ownership so that
replaced output files keep their owner.
*/
package osutil
