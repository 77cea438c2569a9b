// Package driver implements the statement-submission protocol on top of the
// prompt-synchronized channel.
//
// Statements are never transmitted inline. The driver writes each statement
// to a scratch file and submits a "source <path>" command instead, which
// sidesteps two limits of the client's terminal interface: the maximum
// canonical line length, and the continuation prompt the client emits when a
// raw newline arrives mid-line. The scratch file is deleted before Run
// returns, on every path.
package driver
