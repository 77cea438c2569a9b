package cli

import (
	"strings"

	"github.com/mariadb-notebook/mariadb-client-go/internal/config"
)

// fixedArgs are always passed to the client: -s silences the noise the
// interactive client prints around results, -H selects HTML table output for
// the host to render.
var fixedArgs = []string{"-s", "-H"}

// BuildArgs constructs the client command arguments: the fixed flags followed
// by the caller-supplied connection arguments, verbatim.
func BuildArgs(options *config.Options) []string {
	args := make([]string, 0, len(fixedArgs)+len(options.Args))
	args = append(args, fixedArgs...)
	args = append(args, options.Args...)

	return args
}

// SplitArgs splits an opaque connection-argument string into an argv slice.
// The original interface hands the arguments over as a single string appended
// to a shell command line; exec wants them pre-split.
func SplitArgs(s string) []string {
	return strings.Fields(s)
}
