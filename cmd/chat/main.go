// Command chat is a terminal client for the Hero Streets assistant. It embeds
// the session manager, so conversation history persists between runs through
// whichever store backend is configured (file by default).
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"

	"hero-streets/backend/internal/config"
	"hero-streets/backend/internal/database"
	"hero-streets/backend/internal/locale"
	"hero-streets/backend/internal/model"
	"hero-streets/backend/internal/session"
	"hero-streets/backend/internal/storage"
)

// terminalNotifier prints transient errors to stderr, the closest terminal
// analogue to the site's toast notifications.
type terminalNotifier struct{}

func (terminalNotifier) Notify(message string) {
	fmt.Fprintf(os.Stderr, "! %s\n", message)
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	serverURL := flag.String("server", cfg.ChatServerURL, "backend base URL")
	storeKind := flag.String("store", cfg.ChatStore, "history store: file, memory, sqlite or redis")
	localeCode := flag.String("locale", cfg.ChatLocale, "chat language: ru or be")
	flag.Parse()

	store, cleanup, err := buildStore(*storeKind, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Store error: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	loc := locale.Parse(*localeCode)
	mgr := session.NewManager(session.NewRelayClient(*serverURL), store, terminalNotifier{}, loc)

	ctx := context.Background()
	mgr.Init(ctx)

	fmt.Println("Hero Streets chat. Commands: /clear, /quit")
	printTranscript(mgr.Messages())

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())

		switch line {
		case "/quit", "/exit":
			return
		case "/clear":
			fmt.Printf("%s [y/N] ", loc.ClearConfirm())
			if scanner.Scan() && strings.EqualFold(strings.TrimSpace(scanner.Text()), "y") {
				mgr.Clear(ctx)
				printTranscript(mgr.Messages())
			}
			continue
		}

		before := len(mgr.Messages())
		if !mgr.Submit(ctx, line) {
			continue
		}
		messages := mgr.Messages()
		// Print only what the round-trip added beyond the user's own input.
		for _, msg := range messages[before:] {
			if msg.Role == model.RoleAssistant {
				fmt.Printf("assistant: %s\n", msg.Content)
			}
		}
	}
}

func buildStore(kind string, cfg *config.Config) (storage.Store, func(), error) {
	noop := func() {}
	switch kind {
	case "memory":
		return storage.NewMemoryStore(), noop, nil
	case "file":
		return storage.NewFileStore(cfg.ChatHistoryPath), noop, nil
	case "sqlite":
		db, err := database.InitDB(cfg.DatabasePath)
		if err != nil {
			return nil, noop, err
		}
		return storage.NewSQLiteStore(db), func() { _ = db.Close() }, nil
	case "redis":
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		return storage.NewRedisStore(rdb), func() { _ = rdb.Close() }, nil
	default:
		return nil, noop, fmt.Errorf("unknown store kind %q", kind)
	}
}

func printTranscript(messages []model.ChatMessage) {
	for _, msg := range messages {
		fmt.Printf("%s: %s\n", msg.Role, msg.Content)
	}
}
