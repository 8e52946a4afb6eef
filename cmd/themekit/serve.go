package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vango-dev/themekit/internal/preview"
)

func serveCmd() *cobra.Command {
	var (
		addr    string
		dir     string
		title   string
		toasts  []string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a preview page",
		Long: `Serve a page with the theme toggle and one toast per --toast flag.

The static directory must contain main.wasm and wasm_exec.js:

  GOOS=js GOARCH=wasm go build -o static/main.wasm ./cmd/themeinit
  cp "$(go env GOROOT)/lib/wasm/wasm_exec.js" static/

Examples:
  themekit serve
  themekit serve --addr :8080 --toast "Saved:success" --toast "Disk almost full:warning"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			messages, err := preview.ParseMessages(toasts)
			if err != nil {
				return err
			}

			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

			if err := checkStaticDir(dir); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			success("Preview at http://%s", addr)
			info("static: %s", dir)

			return preview.NewServer(preview.Options{
				Addr:      addr,
				StaticDir: dir,
				Title:     title,
				Messages:  messages,
				Logger:    logger,
			}).Run(ctx)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "localhost:3000", "Address to listen on")
	cmd.Flags().StringVarP(&dir, "dir", "d", "static", "Directory holding main.wasm and wasm_exec.js")
	cmd.Flags().StringVar(&title, "title", "", "Page title")
	cmd.Flags().StringArrayVarP(&toasts, "toast", "t", nil, `Toast to show, as "text" or "text:level" (success|danger|warning|info)`)
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log every request")

	return cmd
}

// checkStaticDir fails if dir is missing. Missing wasm files only warn,
// since the page still renders without them.
func checkStaticDir(dir string) error {
	st, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("static directory: %w", err)
	}
	if !st.IsDir() {
		return fmt.Errorf("static directory: %s is not a directory", dir)
	}
	for _, name := range []string{"main.wasm", "wasm_exec.js"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			warn("%s not found in %s", name, dir)
		}
	}
	return nil
}
