package mariadbclient

import (
	"github.com/mariadb-notebook/mariadb-client-go/internal/driver"
)

// Result is the classified outcome of one executed statement.
//
// Err marks a client-reported error: the server rejected the statement and
// the client printed an ERROR-prefixed reply, returned verbatim in Text.
// Statements that succeed silently carry the fixed acknowledgement text
// "Query OK".
type Result = driver.Result
