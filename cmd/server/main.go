// bytecrawl-server hosts the game over SSH. Every connection plays its own
// independent game. Build:
//
//	go build -o bytecrawl-server ./cmd/server
//
// Usage:
//
//	./bytecrawl-server [--port 2222] [--key server_host_key]
//
// Connect with:
//
//	ssh -t -p 2222 localhost
package main

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bytecrawl/internal/game"
	internalssh "bytecrawl/internal/ssh"

	gossh "github.com/gliderlabs/ssh"
	"github.com/google/uuid"
	"github.com/gookit/color"
	xssh "golang.org/x/crypto/ssh"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

var (
	colorBanner = color.Style{color.FgMagenta, color.OpBold}
	colorHint   = color.Style{color.FgGray}
	colorError  = color.Style{color.FgRed, color.OpBold}
)

func main() {
	port := flag.Int("port", 2222, "SSH server port")
	keyFile := flag.String("key", "server_host_key", "Path to the PEM-encoded host key (auto-generated if absent)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if err := run(*port, *keyFile, logger); err != nil {
		fmt.Fprintln(os.Stderr, colorError.Sprintf("error: %v", err))
		os.Exit(1)
	}
}

// run serves until SIGINT or SIGTERM.
func run(port int, keyFile string, logger *slog.Logger) error {
	signer, err := loadOrCreateHostKey(keyFile, logger)
	if err != nil {
		return err
	}

	srv := &gossh.Server{
		Addr: fmt.Sprintf(":%d", port),
		Handler: func(s gossh.Session) {
			handleSession(s, logger)
		},
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		HostSigners: []gossh.Signer{signer},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, gossh.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	colorBanner.Printf("bytecrawl SSH server listening on :%d\n", port)
	colorHint.Printf("Connect with:  ssh -t -p %d -o StrictHostKeyChecking=no localhost\n", port)
	return eg.Wait()
}

// handleSession is the gliderlabs SSH handler for one connection. It
// blocks for the duration of the game so the session stays open.
func handleSession(s gossh.Session, logger *slog.Logger) {
	log := logger.With("session", uuid.NewString(), "user", s.User(), "remote", s.RemoteAddr().String())

	screen, err := internalssh.NewScreen(s)
	if errors.Is(err, internalssh.ErrNoPty) {
		fmt.Fprintln(s, "This game requires a PTY. Connect with: ssh -t -p 2222 <host>")
		return
	}
	if err != nil {
		log.Warn("screen setup failed", "err", err)
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		return
	}

	log.Info("session started")
	game.NewWithScreen(screen, time.Now().UnixNano(), log).Run()
	log.Info("session ended")
}

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string, logger *slog.Logger) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			logger.Info("loaded host key", "path", path)
			return signer, nil
		}
	}

	logger.Info("generating host key", "path", path)
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	// Persisting is best effort; the key still serves this run.
	if block, err := xssh.MarshalPrivateKey(key, "bytecrawl server"); err == nil {
		if err := os.WriteFile(path, pem.EncodeToMemory(block), 0o600); err != nil {
			logger.Warn("host key not saved", "path", path, "err", err)
		}
	}
	return signer, nil
}
