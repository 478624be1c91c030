// Package debug provides optional file-based debug logging.
//
// When the FLEX_DEBUG environment variable is set to a file path, debug
// records from the binding are appended to that file. Otherwise the logger
// discards everything.
package debug
