// dungeon-server starts an SSH server that renders a freshly generated
// dungeon to every connected client. Build:
//
//	go build -o dungeon-server ./cmd/server
//
// Usage:
//
//	./dungeon-server [--port 2222] [--key server_host_key]
//
// Connect:
//
//	ssh -p 2222 localhost
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"flag"
	"fmt"
	"log"
	mrand "math/rand"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	xssh "golang.org/x/crypto/ssh"

	"github.com/halftheopposite/dungeon/internal/generate"
	"github.com/halftheopposite/dungeon/internal/render"
	internalssh "github.com/halftheopposite/dungeon/internal/ssh"
)

var sessionCount atomic.Int64

func main() {
	port := flag.Int("port", 2222, "SSH server port")
	keyFile := flag.String("key", "server_host_key", "Path to the PEM-encoded host key (auto-generated if absent)")
	flag.Parse()

	signer := loadOrCreateHostKey(*keyFile)

	srv := &gossh.Server{
		Addr:    fmt.Sprintf(":%d", *port),
		Handler: handleSession,
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// Accept any authentication — every visitor just gets a dungeon.
		HostSigners: []gossh.Signer{signer},
	}

	log.Printf("dungeon SSH server listening on :%d", *port)
	log.Printf("Connect with:  ssh -p %d -o StrictHostKeyChecking=no localhost", *port)
	log.Fatal(srv.ListenAndServe())
}

// handleSession serves one connection: it builds a tcell screen over the
// SSH channel and runs the dungeon viewer until the client quits.
func handleSession(s gossh.Session) {
	pty, winCh, hasPTY := s.Pty()
	if !hasPTY {
		fmt.Fprintln(s, "A PTY is required. Connect with: ssh -t -p 2222 <host>")
		return
	}

	// Determine the terminal type from the session environment.
	term := "xterm-256color"
	for _, env := range s.Environ() {
		if strings.HasPrefix(env, "TERM=") {
			term = env[5:]
			break
		}
	}

	// TERM must be set in the process environment before the screen is
	// created, so screen creation is serialized across sessions.
	tty := internalssh.NewSessionTty(s, pty, winCh)
	termMu.Lock()
	_ = os.Setenv("TERM", term)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		return
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(s, "Screen init failed: %v\n", err)
		return
	}
	defer screen.Fini()

	// A per-session seed: each visitor starts on their own dungeon.
	seed := time.Now().UnixNano() ^ sessionCount.Add(1)<<32

	log.Printf("session from %s (seed %d)", s.RemoteAddr(), seed)
	viewer, err := render.NewViewer(screen, sessionGenerate, seed)
	if err != nil {
		log.Printf("session from %s failed: %v", s.RemoteAddr(), err)
		return
	}
	if err := viewer.Run(); err != nil {
		log.Printf("session from %s ended with error: %v", s.RemoteAddr(), err)
		return
	}
	log.Printf("session from %s closed", s.RemoteAddr())
}

// sessionGenerate builds the dungeon every SSH viewer shows.
func sessionGenerate(seed int64) (*generate.Dungeon, error) {
	return generate.Generate(generate.Config{
		MapWidth:             64,
		MapHeight:            48,
		MapGutterWidth:       1,
		Iterations:           4,
		ContainerGutterWidth: 1,
		ContainerWidthRatio:  0.45,
		ContainerHeightRatio: 0.45,
		RoomGutterWidth:      1,
		RoomMaxMonsters:      4,
		RoomMinSize:          4,
		RoomHoleChance:       0.3,
		CorridorWidth:        2,
		CorridorTrapChance:   0.3,
		Rand:                 mrand.New(mrand.NewSource(seed)),
	})
}

// termMu protects os.Setenv("TERM") around screen creation.
var termMu sync.Mutex

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string) gossh.Signer {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			log.Printf("Loaded host key from %s", path)
			return signer
		}
	}

	log.Printf("Generating new ed25519 host key → %s", path)
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		log.Fatalf("generate host key: %v", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		log.Fatalf("create signer: %v", err)
	}
	// Persist for next run (non-fatal if it fails).
	if pemBlock, err := xssh.MarshalPrivateKey(key, "dungeon server"); err == nil {
		_ = os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0600)
	}
	return signer
}
