// Package logging provides leveled logging for the gallery service.
//
// The log level is read once from the LOG_LEVEL environment variable
// (debug, info, warn, error); DEBUG=true forces debug level. Defaults
// to info.
package logging
