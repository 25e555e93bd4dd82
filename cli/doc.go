// Package cli implements the reqgate command line front end.
//
// A single invocation dispatches one request through the gateway. Options may be
// read from a YAML file on any afs URL and overridden with flags; a token passed on
// the command line is stored in the configured credential stores before dispatch,
// so persistent stores keep it for subsequent invocations.
package cli
