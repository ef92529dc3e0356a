package assistant

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/novalabs/go-nova/pkg/actions"
	"github.com/novalabs/go-nova/pkg/intent"
	"github.com/novalabs/go-nova/pkg/knowledge"
	"github.com/novalabs/go-nova/pkg/lang"
	"github.com/novalabs/go-nova/pkg/session"
	"github.com/novalabs/go-nova/pkg/stt"
	"github.com/novalabs/go-nova/pkg/tts"
)

// englishDetector keeps the session pinned to English during loop tests.
type englishDetector struct{}

func (englishDetector) Detect(string) string { return "english" }

type memNotes struct{ lines []string }

func (n *memNotes) Append(text string) error {
	n.lines = append(n.lines, text)
	return nil
}

type memSite struct{}

func (memSite) Build(string) error { return nil }
func (memSite) Dir() string        { return "output/website" }

// harness wires a full assistant around a scripted recognizer.
type harness struct {
	assistant  *Assistant
	recognizer *stt.Mock
	speaker    *tts.Mock
	session    *session.State
}

func newHarness(t *testing.T, recognizer *stt.Mock) *harness {
	t.Helper()

	catalog := lang.NewCatalog(map[string]lang.Codes{
		"english": {STT: "en-IN", GTTS: "en"},
		"hindi":   {STT: "hi-IN", GTTS: "hi"},
	})
	speaker := tts.NewMock()

	sess, err := session.New(catalog, "english", []string{"nova"}, recognizer, speaker)
	if err != nil {
		t.Fatalf("session.New: %v", err)
	}

	router := intent.NewRouter(intent.Deps{
		Session:   sess,
		Detector:  englishDetector{},
		Knowledge: &knowledge.Mock{},
		Browser:   &actions.MockBrowser{},
		Media:     &actions.MockMedia{},
		Messenger: &actions.MockMessenger{},
		Notes:     &memNotes{},
		Site:      memSite{},
	})

	cfg := DefaultConfig()
	cfg.IdlePause = 0
	cfg.FaultPause = 0

	return &harness{
		assistant:  New(sess, recognizer, speaker, router, cfg),
		recognizer: recognizer,
		speaker:    speaker,
		session:    sess,
	}
}

func utter(s string) *string { return &s }

func runWithDeadline(t *testing.T, h *harness) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := h.assistant.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if ctx.Err() != nil {
		t.Fatal("loop only ended because the deadline fired")
	}
}

func TestRunFullConversation(t *testing.T) {
	// Silence, then a wake + time query turn, then a wake + shutdown turn.
	h := newHarness(t, stt.NewMock(
		nil,
		utter("nova"),
		utter("what time is it"),
		utter("nova"),
		utter("shutdown please"),
	))

	runWithDeadline(t, h)

	spoken := h.speaker.Spoken()
	if len(spoken) != 6 {
		t.Fatalf("spoken = %q", spoken)
	}
	if spoken[0] != lang.Phrase(lang.PhraseGreeting, "english") {
		t.Errorf("greeting = %q", spoken[0])
	}
	if spoken[1] != lang.Phrase(lang.PhraseYes, "english") {
		t.Errorf("acknowledgment = %q", spoken[1])
	}
	if !strings.HasPrefix(spoken[2], "The time is ") {
		t.Errorf("time response = %q", spoken[2])
	}
	if spoken[3] != lang.Phrase(lang.PhraseYes, "english") {
		t.Errorf("acknowledgment = %q", spoken[3])
	}
	if spoken[4] != lang.Phrase(lang.PhraseShutdown, "english") {
		t.Errorf("shutdown response = %q", spoken[4])
	}
	if spoken[5] != Farewell {
		t.Errorf("farewell = %q", spoken[5])
	}

	if h.session.Running() {
		t.Error("session should be stopped")
	}
	if !h.recognizer.Closed() || !h.speaker.Closed() {
		t.Error("resources should be released")
	}
}

func TestRunWakeThenSilence(t *testing.T) {
	// Silence after the acknowledgment drops back to Idle without comment.
	h := newHarness(t, stt.NewMock(
		utter("nova"),
		nil,
		utter("hey nova"),
		utter("goodbye"),
	))

	runWithDeadline(t, h)

	spoken := h.speaker.Spoken()
	if len(spoken) != 5 {
		t.Fatalf("spoken = %q", spoken)
	}
	// greeting, Yes?, (silence), Yes?, shutdown, farewell
	if spoken[2] != lang.Phrase(lang.PhraseYes, "english") {
		t.Errorf("spoken[2] = %q", spoken[2])
	}
}

func TestRunIgnoresNonWakeSpeech(t *testing.T) {
	h := newHarness(t, stt.NewMock(
		utter("just chatting in the room"),
		utter("nova"),
		utter("exit"),
	))

	runWithDeadline(t, h)

	spoken := h.speaker.Spoken()
	// greeting, Yes?, shutdown, farewell: the chatter produced nothing.
	if len(spoken) != 4 {
		t.Fatalf("spoken = %q", spoken)
	}
}

func TestRunRecoversFromPanic(t *testing.T) {
	script := []func() (string, error){
		func() (string, error) { panic("device unplugged") },
		func() (string, error) { return "nova", nil },
		func() (string, error) { return "stop listening", nil },
	}
	var i int
	recognizer := &stt.Mock{
		ListenFunc: func(ctx context.Context, opts stt.ListenOptions) (string, error) {
			if i >= len(script) {
				return "", stt.ErrNoSpeech
			}
			step := script[i]
			i++
			return step()
		},
	}
	h := newHarness(t, recognizer)

	runWithDeadline(t, h)

	spoken := h.speaker.Spoken()
	// greeting, Yes?, shutdown, farewell: the panicked turn left no trace.
	if len(spoken) != 4 {
		t.Fatalf("spoken = %q", spoken)
	}
	if spoken[3] != Farewell {
		t.Errorf("farewell = %q", spoken[3])
	}
}

func TestRunStopsOnCancellation(t *testing.T) {
	h := newHarness(t, stt.NewMock()) // endless silence

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- h.assistant.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}
	if !h.recognizer.Closed() || !h.speaker.Closed() {
		t.Error("resources should be released on cancellation")
	}
}

func TestListenWindowsDiffer(t *testing.T) {
	h := newHarness(t, stt.NewMock(
		utter("nova"),
		utter("quit"),
	))

	runWithDeadline(t, h)

	listens := h.recognizer.Listens()
	if len(listens) < 2 {
		t.Fatalf("listens = %v", listens)
	}
	if listens[0] != h.assistant.cfg.Wake {
		t.Errorf("wake window = %+v", listens[0])
	}
	if listens[1] != h.assistant.cfg.Command {
		t.Errorf("command window = %+v", listens[1])
	}
}
