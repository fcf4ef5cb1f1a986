// grid-roguelike-server serves the game over SSH. Every connection plays its
// own independent world; sessions never share state. Build:
//
//	go build -o grid-roguelike-server ./cmd/server
//
// Usage:
//
//	./grid-roguelike-server [-config roguelike.toml] [-port 2222] [-key server_host_key]
//
// Connect with:
//
//	ssh -t -p 2222 localhost
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"flag"
	"fmt"
	"os"
	"sync/atomic"
	"time"
	"unicode"
	"unicode/utf8"

	gossh "github.com/gliderlabs/ssh"
	"go.uber.org/zap"
	xssh "golang.org/x/crypto/ssh"

	"grid-roguelike/internal/config"
	"grid-roguelike/internal/game"
	"grid-roguelike/internal/level"
	"grid-roguelike/internal/logging"
	internalssh "grid-roguelike/internal/ssh"
)

// maxNameBytes caps the user name carried into logs.
const maxNameBytes = 16

// allowedTerms lists terminal types passed through to terminfo. Anything else
// falls back to internalssh.DefaultTerm.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"vt220":                 true,
	"ansi":                  true,
	"rxvt-unicode":          true,
	"rxvt-unicode-256color": true,
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := flag.String("config", config.DefaultPath, "path to the TOML config file")
	port := flag.Int("port", 0, "SSH server port (overrides config)")
	keyFile := flag.String("key", "", "PEM host key path, generated if absent (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *keyFile != "" {
		cfg.Server.HostKey = *keyFile
	}

	log, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	levels, err := loadLevels(cfg.LevelFile)
	if err != nil {
		return err
	}
	signer, err := loadOrCreateHostKey(cfg.Server.HostKey, log)
	if err != nil {
		return err
	}

	h := &handler{cfg: cfg, levels: levels, log: log}
	srv := &gossh.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: h.handleSession,
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// No authentication; add gossh.PublicKeyAuth or gossh.PasswordAuth
		// options for anything beyond a private server.
		HostSigners: []gossh.Signer{signer},
	}

	log.Info("ssh server listening",
		zap.Int("port", cfg.Server.Port),
		zap.Strings("levels", levels.Names()),
	)
	return srv.ListenAndServe()
}

func loadLevels(path string) (*level.Set, error) {
	if path == "" {
		return level.Default()
	}
	return level.Load(path)
}

// handler runs one game per SSH session.
type handler struct {
	cfg     *config.Config
	levels  *level.Set
	log     *zap.Logger
	counter atomic.Uint64
}

// handleSession is the gliderlabs SSH handler for one connection. It blocks
// for the duration of the game so the SSH session stays open.
func (h *handler) handleSession(s gossh.Session) {
	sessionID := h.counter.Add(1)
	log := h.log.With(
		zap.Uint64("session", sessionID),
		zap.String("user", sanitizeName(s.User())),
		zap.String("remote", s.RemoteAddr().String()),
	)

	tty, err := internalssh.NewSessionTty(s)
	if err != nil {
		fmt.Fprintln(s, "This game requires a PTY. Connect with: ssh -t -p <port> <host>")
		log.Info("session rejected", zap.Error(err))
		return
	}
	term := tty.Term()
	if !allowedTerms[term] {
		log.Debug("unsupported TERM, using default", zap.String("term", term))
		term = internalssh.DefaultTerm
	}
	screen, err := internalssh.NewScreen(tty, term)
	if err != nil {
		fmt.Fprintf(s, "%v\n", err)
		log.Warn("screen setup failed", zap.Error(err))
		return
	}

	seed := h.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g, err := game.New(screen, game.Options{
		Levels: h.levels,
		Level:  h.cfg.Level,
		Seed:   seed,
		Log:    log,
	})
	if err != nil {
		screen.Fini()
		fmt.Fprintf(s, "Game setup failed: %v\n", err)
		log.Error("game setup failed", zap.Error(err))
		return
	}

	log.Info("session started", zap.String("term", term), zap.Int64("seed", seed))
	g.Run()
	log.Info("session ended", zap.Int("turns", g.World().TurnCounter()))
}

// sanitizeName strips control characters from an SSH user name and truncates
// it to maxNameBytes without splitting a rune.
func sanitizeName(name string) string {
	out := make([]byte, 0, maxNameBytes)
	for _, r := range name {
		if r == utf8.RuneError || unicode.IsControl(r) {
			continue
		}
		if len(out)+utf8.RuneLen(r) > maxNameBytes {
			break
		}
		out = utf8.AppendRune(out, r)
	}
	return string(out)
}

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string, log *zap.Logger) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			log.Info("loaded host key", zap.String("path", path))
			return signer, nil
		}
	}

	log.Info("generating ed25519 host key", zap.String("path", path))
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	// Persist for next run.
	if pemBlock, err := xssh.MarshalPrivateKey(key, "grid-roguelike server"); err == nil {
		if err := os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0o600); err != nil {
			log.Warn("persist host key", zap.Error(err))
		}
	}
	return signer, nil
}
