// Package cli implements the church command line: a cobra command tree that
// loads layered configuration, builds a resolver over the embedded store and
// runs generators or templates against it.
package cli
