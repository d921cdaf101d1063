package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/gridshot/gridshot/pkg/grid"
	"github.com/gridshot/gridshot/pkg/service"
)

// serveCommand creates the serve command that speaks the line protocol.
func (c *CLI) serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve grid commands over stdin/stdout",
		Long: `Serve grid commands over stdin/stdout.

Reads newline-delimited JSON requests of the form {"id", "cmd", "args"} from
standard input and writes one JSON response per request to standard output.
Logs go to standard error so the response stream stays clean. Intended for
host processes that embed gridshot; see the ping and createImageGrid
commands.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			logger.Info("serving on stdin")

			dispatcher := service.New(grid.NewBuilder(logger), logger)
			return dispatcher.Run(cmd.Context(), os.Stdin, os.Stdout)
		},
	}
}
