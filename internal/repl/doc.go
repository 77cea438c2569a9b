// Package repl provides a prompt-synchronized channel to an interactive
// child process.
//
// The child is spawned on a pseudo-terminal (the mariadb client only prints
// its prompt when attached to a terminal) and exposed as a synchronous
// request/response primitive: send a line, block until the configured prompt
// pattern reappears in the output stream, return everything emitted in
// between. This is the low-level expect primitive the statement driver builds
// on.
package repl
