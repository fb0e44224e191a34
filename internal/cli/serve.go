package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vvka-141/fidsort/internal/files/dirlist"
	"github.com/vvka-141/fidsort/internal/files/relocator"
	"github.com/vvka-141/fidsort/internal/files/scanner"
	"github.com/vvka-141/fidsort/internal/server"
	"github.com/vvka-141/fidsort/internal/workbook"
)

// scanCacheSize bounds how many parsed workbooks serve keeps between previews.
const scanCacheSize = 1024

// shutdownTimeout is how long in-flight requests get after an interrupt.
const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API used by the browser UI",
	Long: `Serve exposes scanning, sorting and folder listing over HTTP:

  POST /api/preview    {"folderPath", "deepScan"}  -> {"files"}
  POST /api/sort       {"folderPath", "files"}     -> {"results"}
  POST /api/list-dirs  {"path"}                    -> {"currentPath", "dirs", "parentPath"}
  GET  /healthz

The server speaks HTTP/1.1 and cleartext HTTP/2. Every response carries an
X-Request-ID header that also appears in the log.

Precedence for the listen address: --addr > $FIDSORT_ADDR > serve.addr in
fidsort.yaml > :3001.

Examples:
  fidsort serve
  fidsort serve --addr 127.0.0.1:8080 --cors-origin http://localhost:5173`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

type serveFlagValues struct {
	addr       string
	corsOrigin string
}

var serveFlags serveFlagValues

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveFlags.addr, "addr", "",
		"Listen address.\n"+
			"Default: $FIDSORT_ADDR, serve.addr from fidsort.yaml, or :3001")
	serveCmd.Flags().StringVar(&serveFlags.corsOrigin, "cors-origin", "",
		"Value of Access-Control-Allow-Origin.\n"+
			"Default: serve.cors_origin from fidsort.yaml, or *")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadProjectConfig()
	if err != nil {
		return err
	}

	addr := cfg.Serve.Addr
	if serveFlags.addr != "" {
		addr = serveFlags.addr
	}
	corsOrigin := cfg.Serve.CORSOrigin
	if serveFlags.corsOrigin != "" {
		corsOrigin = serveFlags.corsOrigin
	}

	logger := newLogger(cmd)

	s := scanner.NewScanner(workbook.NewReader(), logger)
	if err := s.EnableCache(scanCacheSize); err != nil {
		return fmt.Errorf("failed to create scan cache: %w", err)
	}
	api := server.NewAPI(s, relocator.NewRelocator(logger), dirlist.NewLister(), logger)
	srv := server.New(addr, api.Handler(corsOrigin), logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	fmt.Fprintln(cmd.ErrOrStderr(), "\n[INTERRUPT] Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}
