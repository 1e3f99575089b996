// Package session owns the client side of the chat assistant: the ordered
// conversation transcript, its persistence, and the request/response cycle
// against the relay endpoint.
package session

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"

	"hero-streets/backend/internal/locale"
	"hero-streets/backend/internal/model"
	"hero-streets/backend/internal/storage"
)

// StorageKey is the fixed key the transcript is persisted under.
const StorageKey = "ai-chat-history"

// Relay is the manager's port to the relay service. The HTTP implementation
// lives in this package; tests substitute a fake.
type Relay interface {
	Send(ctx context.Context, message, systemContext string, history []model.HistoryEntry) (string, error)
}

// Notifier surfaces transient, non-persisted error notifications to the
// user. Failed relay calls go here instead of into the transcript.
type Notifier interface {
	Notify(message string)
}

// Manager owns one conversation. All exported methods are safe for
// concurrent use; the loading flag guarantees at most one relay round-trip
// is outstanding at a time.
type Manager struct {
	relay    Relay
	store    storage.Store
	notifier Notifier
	loc      locale.Locale

	mu          sync.Mutex
	messages    []model.ChatMessage
	loading     bool
	initialized bool
}

func NewManager(relay Relay, store storage.Store, notifier Notifier, loc locale.Locale) *Manager {
	return &Manager{
		relay:    relay,
		store:    store,
		notifier: notifier,
		loc:      loc,
	}
}

// Init loads the persisted transcript, or seeds the conversation with the
// localized welcome message when there is none. Storage and deserialization
// failures both fall back to the welcome seed: a broken store must never
// prevent the chat from working for the rest of the session.
func (m *Manager) Init(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return
	}

	raw, ok, err := m.store.Get(ctx, StorageKey)
	if err != nil {
		slog.Warn("Failed to load chat history, starting fresh", "error", err)
		ok = false
	}

	var history []model.ChatMessage
	if ok {
		if err := json.Unmarshal([]byte(raw), &history); err != nil {
			slog.Warn("Corrupt chat history, starting fresh", "error", err)
			history = nil
		}
	}

	if len(history) == 0 {
		m.messages = []model.ChatMessage{model.NewChatMessage(model.RoleAssistant, m.loc.Welcome())}
	} else {
		m.messages = history
	}
	m.initialized = true
	m.persistLocked(ctx)
}

// Submit sends one user message through the relay and appends the reply.
// It returns false when the submission was ignored: empty or whitespace-only
// input, a relay call already in flight, or an uninitialized manager.
//
// The user message is appended optimistically before the relay call. On
// failure the transcript is left exactly as it was after that append; the
// error is raised through the notifier instead.
func (m *Manager) Submit(ctx context.Context, input string) bool {
	input = strings.TrimSpace(input)

	m.mu.Lock()
	if input == "" || m.loading || !m.initialized {
		m.mu.Unlock()
		return false
	}

	// History is captured before the optimistic append, so the new message
	// travels only in the request's message field.
	history := m.wireHistoryLocked()

	m.messages = append(m.messages, model.NewChatMessage(model.RoleUser, input))
	m.loading = true
	m.persistLocked(ctx)
	m.mu.Unlock()

	reply, err := m.relay.Send(ctx, input, m.loc.SystemContext(), history)

	m.mu.Lock()
	m.loading = false
	if err == nil {
		m.messages = append(m.messages, model.NewChatMessage(model.RoleAssistant, reply))
		m.persistLocked(ctx)
	}
	m.mu.Unlock()

	if err != nil {
		message := err.Error()
		if message == "" {
			message = m.loc.SendError()
		}
		m.notifier.Notify(message)
	}
	return true
}

// Clear wipes the persisted transcript and re-seeds the welcome message.
// The caller is expected to have confirmed the action with the user.
func (m *Manager) Clear(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.store.Remove(ctx, StorageKey); err != nil {
		slog.Warn("Failed to clear persisted chat history", "error", err)
	}
	m.messages = []model.ChatMessage{model.NewChatMessage(model.RoleAssistant, m.loc.Welcome())}
	m.persistLocked(ctx)
}

// Messages returns a snapshot of the transcript in append order.
func (m *Manager) Messages() []model.ChatMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.ChatMessage, len(m.messages))
	copy(out, m.messages)
	return out
}

// Loading reports whether a relay call is in flight.
func (m *Manager) Loading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loading
}

// Initialized reports whether Init has completed.
func (m *Manager) Initialized() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.initialized
}

// wireHistoryLocked converts the transcript to its wire form: the synthetic
// welcome message is excluded (matched by exact content equality, it is a
// local affordance rather than a real assistant turn) and IDs/timestamps
// are stripped. Must be called with the lock held.
func (m *Manager) wireHistoryLocked() []model.HistoryEntry {
	welcome := m.loc.Welcome()
	history := make([]model.HistoryEntry, 0, len(m.messages))
	for _, msg := range m.messages {
		if msg.Role == model.RoleAssistant && msg.Content == welcome {
			continue
		}
		history = append(history, model.HistoryEntry{Role: msg.Role, Content: msg.Content})
	}
	return history
}

// persistLocked snapshots the full transcript under StorageKey. Persistence
// failures are logged and swallowed: the in-memory conversation keeps
// working even when nothing can be saved. Must be called with the lock held.
func (m *Manager) persistLocked(ctx context.Context) {
	if len(m.messages) == 0 {
		return
	}
	raw, err := json.Marshal(m.messages)
	if err != nil {
		slog.Warn("Failed to marshal chat history", "error", err)
		return
	}
	if err := m.store.Set(ctx, StorageKey, string(raw)); err != nil {
		slog.Warn("Failed to persist chat history", "error", err)
	}
}
