package conversation_test

import (
	"context"
	"testing"
	"time"

	"github.com/miguelromero/miguelbot/backend/internal/classify"
	"github.com/miguelromero/miguelbot/backend/internal/model/chat"
	"github.com/miguelromero/miguelbot/backend/internal/model/surface"
	conversation "github.com/miguelromero/miguelbot/backend/internal/service/conversation"
)

const (
	testReplyDelay = 50 * time.Millisecond
	testGreetDelay = 50 * time.Millisecond
	settle         = 500 * time.Millisecond
)

func newTestService() (*conversation.Service, surface.Store) {
	store := surface.NewMemoryStore(surface.Seed())
	svc := conversation.NewService(store, classify.Rules(), conversation.Options{
		ReplyDelay: testReplyDelay,
		GreetDelay: testGreetDelay,
	})
	return svc, store
}

func TestCreateSessionUnknownSurface(t *testing.T) {
	svc, _ := newTestService()
	if _, err := svc.CreateSession(context.Background(), "nope"); err == nil {
		t.Fatal("expected error for unknown surface")
	}
}

func TestPageSessionSeedsGreeting(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	session, err := svc.CreateSession(ctx, "page")
	if err != nil {
		t.Fatalf("CreateSession err: %v", err)
	}

	messages, err := svc.Transcript(ctx, session.ID)
	if err != nil {
		t.Fatalf("Transcript err: %v", err)
	}
	if len(messages) != 1 {
		t.Fatalf("expected seeded greeting, got %d messages", len(messages))
	}

	page, _ := store.FindByID("page")
	if messages[0].Sender != chat.SenderBot || messages[0].Content != page.Greeting {
		t.Fatalf("unexpected seeded message: %+v", messages[0])
	}
}

func TestSubmitEmptyIsNoOp(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	session, _ := svc.CreateSession(ctx, "widget")

	for _, input := range []string{"", "   "} {
		if err := svc.Submit(ctx, session.ID, input); err != nil {
			t.Fatalf("Submit(%q) err: %v", input, err)
		}
	}

	messages, _ := svc.Transcript(ctx, session.ID)
	if len(messages) != 0 {
		t.Fatalf("expected empty transcript, got %d messages", len(messages))
	}
	composing, _ := svc.Composing(ctx, session.ID)
	if composing {
		t.Fatal("expected composing to stay false")
	}
}

func TestSubmitAppendsUserThenDelayedBotReply(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	session, _ := svc.CreateSession(ctx, "page")

	if err := svc.Submit(ctx, session.ID, "tell me about your projects"); err != nil {
		t.Fatalf("Submit err: %v", err)
	}

	// User message lands synchronously; composing is on while the reply
	// timer runs.
	messages, _ := svc.Transcript(ctx, session.ID)
	if len(messages) != 2 {
		t.Fatalf("expected greeting + user message, got %d", len(messages))
	}
	if messages[1].Sender != chat.SenderUser || messages[1].Content != "tell me about your projects" {
		t.Fatalf("unexpected user message: %+v", messages[1])
	}
	if composing, _ := svc.Composing(ctx, session.ID); !composing {
		t.Fatal("expected composing=true right after submit")
	}

	time.Sleep(settle)

	messages, _ = svc.Transcript(ctx, session.ID)
	if len(messages) != 3 {
		t.Fatalf("expected bot reply, got %d messages", len(messages))
	}
	page, _ := store.FindByID("page")
	want := page.Reply(classify.Projects)
	if messages[2].Sender != chat.SenderBot || messages[2].Content != want {
		t.Fatalf("unexpected bot reply: %+v", messages[2])
	}
	if composing, _ := svc.Composing(ctx, session.ID); composing {
		t.Fatal("expected composing=false after reply")
	}
}

func TestSubmitHiGetsGreetingReply(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	session, _ := svc.CreateSession(ctx, "widget")
	if err := svc.Submit(ctx, session.ID, "hi"); err != nil {
		t.Fatalf("Submit err: %v", err)
	}

	time.Sleep(settle)

	messages, _ := svc.Transcript(ctx, session.ID)
	if len(messages) != 2 {
		t.Fatalf("expected user + bot, got %d", len(messages))
	}
	widget, _ := store.FindByID("widget")
	if messages[1].Content != widget.Reply(classify.Greeting) {
		t.Fatalf("unexpected reply: %q", messages[1].Content)
	}
}

func TestQueuedSubmissionsSerialize(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	session, _ := svc.CreateSession(ctx, "widget")
	if err := svc.Submit(ctx, session.ID, "first"); err != nil {
		t.Fatalf("Submit err: %v", err)
	}
	if err := svc.Submit(ctx, session.ID, "second"); err != nil {
		t.Fatalf("Submit err: %v", err)
	}

	// Both user messages are visible immediately, in order.
	messages, _ := svc.Transcript(ctx, session.ID)
	if len(messages) != 2 || messages[0].Content != "first" || messages[1].Content != "second" {
		t.Fatalf("unexpected transcript before replies: %+v", messages)
	}

	time.Sleep(settle)

	messages, _ = svc.Transcript(ctx, session.ID)
	if len(messages) != 4 {
		t.Fatalf("expected two bot replies, got %d messages", len(messages))
	}
	for i, wantSender := range []string{chat.SenderUser, chat.SenderUser, chat.SenderBot, chat.SenderBot} {
		if messages[i].Sender != wantSender {
			t.Fatalf("message %d: expected sender %s, got %s", i, wantSender, messages[i].Sender)
		}
	}
	if composing, _ := svc.Composing(ctx, session.ID); composing {
		t.Fatal("expected composing=false after queue drained")
	}
}

func TestDetachCancelsPendingReply(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	session, _ := svc.CreateSession(ctx, "widget")
	if err := svc.Submit(ctx, session.ID, "hello there"); err != nil {
		t.Fatalf("Submit err: %v", err)
	}
	if err := svc.Detach(ctx, session.ID); err != nil {
		t.Fatalf("Detach err: %v", err)
	}

	time.Sleep(settle)

	// The user message stays, but no bot reply may land after teardown.
	messages, _ := svc.Transcript(ctx, session.ID)
	if len(messages) != 1 || messages[0].Sender != chat.SenderUser {
		t.Fatalf("expected only the user message, got %+v", messages)
	}
	if composing, _ := svc.Composing(ctx, session.ID); composing {
		t.Fatal("expected composing=false after detach")
	}

	// Reattaching resumes normal operation.
	if err := svc.Submit(ctx, session.ID, "hello again"); err != nil {
		t.Fatalf("Submit after detach err: %v", err)
	}
	time.Sleep(settle)
	messages, _ = svc.Transcript(ctx, session.ID)
	if len(messages) != 3 {
		t.Fatalf("expected user+user+bot after resuming, got %d", len(messages))
	}
}

func TestResetClearsTranscript(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	session, _ := svc.CreateSession(ctx, "page")
	_ = svc.Submit(ctx, session.ID, "hi")
	time.Sleep(settle)

	if err := svc.Reset(ctx, session.ID); err != nil {
		t.Fatalf("Reset err: %v", err)
	}

	messages, _ := svc.Transcript(ctx, session.ID)
	if len(messages) != 0 {
		t.Fatalf("expected empty transcript after reset, got %d", len(messages))
	}
	if composing, _ := svc.Composing(ctx, session.ID); composing {
		t.Fatal("expected composing=false after reset")
	}
}

func TestDelayedGreetingFiresOncePerSession(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	session, _ := svc.CreateSession(ctx, "widget")
	if err := svc.Attach(ctx, session.ID); err != nil {
		t.Fatalf("Attach err: %v", err)
	}

	time.Sleep(settle)

	widget, _ := store.FindByID("widget")
	messages, _ := svc.Transcript(ctx, session.ID)
	if len(messages) != 1 || messages[0].Content != widget.Greeting {
		t.Fatalf("expected delayed greeting, got %+v", messages)
	}

	// A second attach must not greet again.
	if err := svc.Attach(ctx, session.ID); err != nil {
		t.Fatalf("Attach err: %v", err)
	}
	time.Sleep(settle)
	messages, _ = svc.Transcript(ctx, session.ID)
	if len(messages) != 1 {
		t.Fatalf("greeting fired twice: %d messages", len(messages))
	}

	// The gate survives a reset: the session did not end.
	_ = svc.Reset(ctx, session.ID)
	if err := svc.Attach(ctx, session.ID); err != nil {
		t.Fatalf("Attach err: %v", err)
	}
	time.Sleep(settle)
	messages, _ = svc.Transcript(ctx, session.ID)
	if len(messages) != 0 {
		t.Fatalf("expected no greeting after reset, got %d messages", len(messages))
	}
}

func TestDetachBeforeGreetingCancelsIt(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	session, _ := svc.CreateSession(ctx, "widget")
	_ = svc.Attach(ctx, session.ID)
	_ = svc.Detach(ctx, session.ID)

	time.Sleep(settle)

	messages, _ := svc.Transcript(ctx, session.ID)
	if len(messages) != 0 {
		t.Fatalf("expected cancelled greeting, got %+v", messages)
	}
}

func TestSubscribeReceivesEvents(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	session, _ := svc.CreateSession(ctx, "widget")
	events, cancel, err := svc.Subscribe(ctx, session.ID)
	if err != nil {
		t.Fatalf("Subscribe err: %v", err)
	}
	defer cancel()

	if err := svc.Submit(ctx, session.ID, "hello"); err != nil {
		t.Fatalf("Submit err: %v", err)
	}

	// Expect: user message, composing on, bot message, composing off.
	wantTypes := []string{
		conversation.EventMessage,
		conversation.EventComposing,
		conversation.EventMessage,
		conversation.EventComposing,
	}
	for i, want := range wantTypes {
		select {
		case ev := <-events:
			if ev.Type != want {
				t.Fatalf("event %d: expected %s, got %s", i, want, ev.Type)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for event %d", i)
		}
	}
}

func TestGetSessionNotFound(t *testing.T) {
	svc, _ := newTestService()
	if _, err := svc.GetSession(context.Background(), "missing"); err == nil {
		t.Fatal("expected error for missing session")
	}
}
