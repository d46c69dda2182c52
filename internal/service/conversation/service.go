package conversation

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/miguelromero/miguelbot/backend/internal/classify"
	"github.com/miguelromero/miguelbot/backend/internal/model/chat"
	"github.com/miguelromero/miguelbot/backend/internal/model/surface"
)

var (
	ErrSurfaceRequired = errors.New("surface id is required")
	ErrSurfaceNotFound = errors.New("surface not found")
	ErrSessionNotFound = errors.New("session not found")
)

// Event types pushed to subscribers.
const (
	EventMessage   = "message"
	EventComposing = "composing"
)

// Event is delivered whenever the transcript or the composing flag changes.
type Event struct {
	Type      string        `json:"type"`
	Message   *chat.Message `json:"message,omitempty"`
	Composing bool          `json:"composing"`
}

// Options override the per-surface delays. Zero values keep the surface
// configuration; tests shrink the delays to milliseconds.
type Options struct {
	ReplyDelay time.Duration
	GreetDelay time.Duration
}

// Service owns all conversation state: transcripts, composing flags, the
// submission queue and the timers that produce synthetic replies. Surfaces
// only read through it and call Submit/Attach/Detach/Reset; no other
// mutation path exists.
type Service struct {
	mu       sync.Mutex
	surfaces surface.Store
	rules    []classify.Rule
	opts     Options
	states   map[string]*state
}

// state tracks one session. pending is the single outstanding reply timer;
// utterances submitted while it runs wait in queue, so replies land in
// submission order and at most one timer exists at any moment.
type state struct {
	session    chat.Session
	surface    surface.Surface
	messages   []chat.Message
	queue      []string
	pending    *time.Timer
	replySeq   uint64
	greetTimer *time.Timer
	greetSeq   uint64
	greeted    bool
	composing  bool
	nextSub    int
	subs       map[int]chan Event
}

// NewService bootstraps the in-memory conversation service.
func NewService(surfaces surface.Store, rules []classify.Rule, opts Options) *Service {
	return &Service{
		surfaces: surfaces,
		rules:    rules,
		opts:     opts,
		states:   make(map[string]*state),
	}
}

// CreateSession provisions an anonymous session bound to a surface. Surfaces
// with an immediate greet policy start with the greeting already appended.
func (s *Service) CreateSession(_ context.Context, surfaceID string) (chat.Session, error) {
	if surfaceID == "" {
		return chat.Session{}, ErrSurfaceRequired
	}
	surf, ok := s.surfaces.FindByID(surfaceID)
	if !ok {
		return chat.Session{}, ErrSurfaceNotFound
	}

	session := chat.Session{
		ID:        uuid.NewString(),
		SurfaceID: surfaceID,
		CreatedAt: time.Now().UTC(),
	}

	st := &state{
		session:  session,
		surface:  surf,
		messages: make([]chat.Message, 0, 16),
		subs:     make(map[int]chan Event),
	}

	s.mu.Lock()
	s.states[session.ID] = st
	if surf.GreetPolicy == surface.GreetImmediate {
		s.appendLocked(st, chat.SenderBot, surf.Greeting)
		st.greeted = true
	}
	s.mu.Unlock()

	return session, nil
}

// GetSession retrieves a session by identifier.
func (s *Service) GetSession(_ context.Context, sessionID string) (chat.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.states[sessionID]
	if !ok {
		return chat.Session{}, ErrSessionNotFound
	}
	return st.session, nil
}

// Submit enqueues a user utterance. Empty or whitespace-only input is a
// silent no-op. The user message is appended synchronously; the matching
// bot reply is scheduled after the surface's reply delay, queued behind any
// reply already pending.
func (s *Service) Submit(_ context.Context, sessionID, text string) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.states[sessionID]
	if !ok {
		return ErrSessionNotFound
	}

	s.appendLocked(st, chat.SenderUser, trimmed)
	st.queue = append(st.queue, trimmed)
	if st.pending == nil {
		s.armReplyLocked(st)
	}
	return nil
}

// Transcript returns a copy of the stored messages for the session.
func (s *Service) Transcript(_ context.Context, sessionID string) ([]chat.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.states[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}

	copied := make([]chat.Message, len(st.messages))
	copy(copied, st.messages)
	return copied, nil
}

// Composing reports whether a synthetic reply is pending for the session.
func (s *Service) Composing(_ context.Context, sessionID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.states[sessionID]
	if !ok {
		return false, ErrSessionNotFound
	}
	return st.composing, nil
}

// Attach signals that a push surface started reading the session. For
// delayed-greeting surfaces this arms the one-shot greeting timer, gated by
// the per-session greeted flag.
func (s *Service) Attach(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.states[sessionID]
	if !ok {
		return ErrSessionNotFound
	}
	if st.surface.GreetPolicy != surface.GreetDelayed || st.greeted || st.greetTimer != nil {
		return nil
	}

	st.greetSeq++
	seq := st.greetSeq
	st.greetTimer = time.AfterFunc(s.greetDelay(st.surface), func() {
		s.resolveGreeting(sessionID, seq)
	})
	return nil
}

// Detach signals that the surface was closed. Pending reply and greeting
// timers are cancelled and queued utterances dropped so nothing is appended
// after teardown; the transcript itself survives for the next attach.
func (s *Service) Detach(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.states[sessionID]
	if !ok {
		return ErrSessionNotFound
	}
	s.cancelTimersLocked(st)
	return nil
}

// Reset clears the transcript and returns the session to idle. The greeted
// flag is kept: the session did not end, so the auto-greeting stays spent.
func (s *Service) Reset(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.states[sessionID]
	if !ok {
		return ErrSessionNotFound
	}
	s.cancelTimersLocked(st)
	st.messages = st.messages[:0]
	return nil
}

// Subscribe registers a push feed of transcript and composing changes. The
// returned cancel function must be called when the reader goes away.
func (s *Service) Subscribe(_ context.Context, sessionID string) (<-chan Event, func(), error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.states[sessionID]
	if !ok {
		return nil, nil, ErrSessionNotFound
	}

	id := st.nextSub
	st.nextSub++
	ch := make(chan Event, 32)
	st.subs[id] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if existing, ok := st.subs[id]; ok {
			delete(st.subs, id)
			close(existing)
		}
	}
	return ch, cancel, nil
}

func (s *Service) appendLocked(st *state, sender, content string) {
	msg := chat.Message{
		ID:        uuid.NewString(),
		SessionID: st.session.ID,
		Sender:    sender,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	st.messages = append(st.messages, msg)
	s.broadcastLocked(st, Event{Type: EventMessage, Message: &msg, Composing: st.composing})
}

func (s *Service) setComposingLocked(st *state, composing bool) {
	if st.composing == composing {
		return
	}
	st.composing = composing
	s.broadcastLocked(st, Event{Type: EventComposing, Composing: composing})
}

func (s *Service) broadcastLocked(st *state, ev Event) {
	for _, ch := range st.subs {
		select {
		case ch <- ev:
		default:
			// Slow reader; dropping beats blocking the store.
		}
	}
}

// armReplyLocked pops the next queued utterance and starts its reply timer.
// With an empty queue it parks the session back in idle.
func (s *Service) armReplyLocked(st *state) {
	if len(st.queue) == 0 {
		st.pending = nil
		s.setComposingLocked(st, false)
		return
	}

	utterance := st.queue[0]
	st.queue = st.queue[1:]
	s.setComposingLocked(st, true)

	st.replySeq++
	seq := st.replySeq
	sessionID := st.session.ID
	st.pending = time.AfterFunc(s.replyDelay(st.surface), func() {
		s.resolveReply(sessionID, seq, utterance)
	})
}

func (s *Service) resolveReply(sessionID string, seq uint64, utterance string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.states[sessionID]
	if !ok || st.replySeq != seq {
		// Cancelled or torn down while the timer was in flight.
		return
	}

	id := classify.Classify(s.rules, utterance)
	s.appendLocked(st, chat.SenderBot, st.surface.Reply(id))
	s.armReplyLocked(st)
}

func (s *Service) resolveGreeting(sessionID string, seq uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.states[sessionID]
	if !ok || st.greetSeq != seq || st.greeted {
		return
	}

	st.greetTimer = nil
	st.greeted = true
	if len(st.messages) == 0 {
		s.appendLocked(st, chat.SenderBot, st.surface.Greeting)
	}
}

func (s *Service) cancelTimersLocked(st *state) {
	if st.pending != nil {
		st.pending.Stop()
		st.pending = nil
	}
	st.replySeq++
	if st.greetTimer != nil {
		st.greetTimer.Stop()
		st.greetTimer = nil
	}
	st.greetSeq++
	st.queue = st.queue[:0]
	s.setComposingLocked(st, false)
}

func (s *Service) replyDelay(surf surface.Surface) time.Duration {
	if s.opts.ReplyDelay > 0 {
		return s.opts.ReplyDelay
	}
	if surf.ReplyDelay > 0 {
		return surf.ReplyDelay
	}
	return 1500 * time.Millisecond
}

func (s *Service) greetDelay(surf surface.Surface) time.Duration {
	if s.opts.GreetDelay > 0 {
		return s.opts.GreetDelay
	}
	if surf.GreetDelay > 0 {
		return surf.GreetDelay
	}
	return 3 * time.Second
}
