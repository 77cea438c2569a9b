// Command mariadb-run executes one SQL statement through the interactive
// mariadb client and prints the captured output.
//
// The statement is taken from the command line, or from stdin when no
// argument is given. Connection settings come from flags, falling back to
// ~/.mariadb-client/config.yaml.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	mariadbclient "github.com/mariadb-notebook/mariadb-client-go"
)

var (
	clientBin string
	connArgs  string
	timeout   time.Duration
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:           "mariadb-run [statement]",
	Short:         "Run one SQL statement through the interactive mariadb client",
	Long:          `mariadb-run drives the mariadb command-line client as a child process, submits one statement, and prints everything the client emitted before its next prompt.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		statement, err := readStatement(args)
		if err != nil {
			return err
		}

		log := mariadbclient.NopLogger()
		if verbose {
			log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		}

		opts := []mariadbclient.Option{mariadbclient.WithLogger(log)}

		if clientBin == "" && connArgs == "" {
			cfg, err := mariadbclient.LoadConfig()
			if err != nil {
				return err
			}

			opts = append(opts, mariadbclient.WithConfig(cfg))
		} else {
			opts = append(opts,
				mariadbclient.WithClientBin(clientBin),
				mariadbclient.WithArgs(strings.Fields(connArgs)...),
			)
		}

		ctx := context.Background()

		client := mariadbclient.New()
		if err := client.Start(ctx, opts...); err != nil {
			return err
		}
		defer client.Stop()

		result, err := client.Run(ctx, statement, timeout)
		if err != nil {
			return err
		}

		fmt.Println(result.Text)

		if result.Err {
			_ = client.Stop()
			os.Exit(1)
		}

		return nil
	},
}

// readStatement takes the statement from the single positional argument, or
// from stdin when none is given.
func readStatement(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read statement from stdin: %w", err)
	}

	return string(data), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVar(&clientBin, "client-bin", "", "Explicit path to the mariadb client binary")
	rootCmd.Flags().StringVar(&connArgs, "args", "", "Connection arguments passed to the client verbatim")
	rootCmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "Per-statement timeout (negative waits forever)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log driver operations to stderr")
}
