// Package startup handles service configuration from environment
// variables, build information, and boot-time logging.
package startup
