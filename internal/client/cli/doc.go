// Package cli implements the interactive terminal client: a small REPL
// over the auth, post, and community services. Command handlers print
// their own output and errors; the loop only routes input.
package cli
