package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/oaslint/internal/mcpserver"
)

// SetupMCPFlags creates the FlagSet for the mcp command. It takes no flags;
// the server is configured through OASLINT_* environment variables.
func SetupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	fs.Usage = func() {
		Writef(fs.Output(), "Usage: oaslint mcp\n\n")
		Writef(fs.Output(), "Run an MCP server over stdio exposing the validate, cache_stats and cache_reset tools.\n\n")
		Writef(fs.Output(), "Environment:\n")
		Writef(fs.Output(), "  OASLINT_CACHE_ENABLED               enable caching (default true)\n")
		Writef(fs.Output(), "  OASLINT_CACHE_MAX_SIZE              entries per cache (default 100)\n")
		Writef(fs.Output(), "  OASLINT_VALIDATE_STRICT             strict mode by default (default false)\n")
		Writef(fs.Output(), "  OASLINT_ALLOW_FUTURE_VERSIONS       accept versions newer than 3.1 (default false)\n")
		Writef(fs.Output(), "  OASLINT_REQUIRE_RATE_LIMIT_HEADERS  require rate limit headers (default false)\n")
	}
	return fs
}

// HandleMCP executes the mcp command and blocks until the client disconnects
// or the process is interrupted.
func HandleMCP(args []string) error {
	fs := SetupMCPFlags()
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("mcp command takes no arguments")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := mcpserver.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}
