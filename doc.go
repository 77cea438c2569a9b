// Package mariadbclient drives the interactive mariadb command-line client
// as a child process, exposing it as a synchronous request/response API for
// host applications such as a notebook execution kernel.
//
// The client process is spawned on a pseudo-terminal and synchronized on its
// prompt: submit a statement, block until the prompt reappears, get back
// everything emitted in between. Statements are handed off through a scratch
// file and a "source" command rather than inline, which sidesteps the
// terminal's line-length limit and the client's continuation-prompt behavior
// on embedded newlines.
//
// # Basic Usage
//
//	ctx := context.Background()
//
//	client := mariadbclient.New()
//	err := client.Start(ctx,
//	    mariadbclient.WithLogger(slog.Default()),
//	    mariadbclient.WithArgs("-u", "root", "--password=secret"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Stop()
//
//	result, err := client.Run(ctx, "SELECT 1;", 10*time.Second)
//	if err != nil {
//	    log.Fatal(err) // transport failure: the session is dead
//	}
//	if result.Err {
//	    fmt.Println("statement failed:", result.Text)
//	} else {
//	    fmt.Println(result.Text)
//	}
//
// # Outcome classification
//
// A statement the server rejects is routine host input, not an exceptional
// condition: the ERROR-prefixed reply comes back verbatim in Result.Text with
// Result.Err set, and is also queryable afterwards through IsError and
// ErrorMessage. Only process startup failures (LoginError, ServerDownError,
// NotFoundError) and mid-statement transport failures (TransportError) are
// returned as Go errors.
//
// # Concurrency
//
// A Client owns one child process and runs one statement at a time; Run
// blocks the calling goroutine. Hosts that need concurrent sessions own
// multiple independent Clients, each with its own process and scratch files.
package mariadbclient
