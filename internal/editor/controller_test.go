package editor

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/kobzarvs/tedit/internal/config"
	"github.com/kobzarvs/tedit/internal/terminal"
)

// scriptedKeys replays evs; a nil entry stands for a read timeout. Once the
// script is exhausted it returns err, or io.EOF.
type scriptedKeys struct {
	evs []*tcell.EventKey
	err error
}

func (s *scriptedKeys) ReadKey() (*tcell.EventKey, error) {
	if len(s.evs) == 0 {
		if s.err != nil {
			return nil, s.err
		}
		return nil, io.EOF
	}
	ev := s.evs[0]
	s.evs = s.evs[1:]
	return ev, nil
}

type failingWriter struct{ err error }

func (w failingWriter) Write(p []byte) (int, error) { return 0, w.err }

func TestRunQuitClearsScreen(t *testing.T) {
	e := newTestEditor()
	keys := &scriptedKeys{evs: []*tcell.EventKey{runeKey('h'), nil, runeKey('i'), key(tcell.KeyCtrlQ)}}
	var out bytes.Buffer

	if err := e.Run(keys, &out); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !bytes.HasSuffix(out.Bytes(), []byte(terminal.ClearScreen+terminal.CursorHome)) {
		t.Fatalf("output does not end with clear+home: %q", out.Bytes())
	}
	if n := bytes.Count(out.Bytes(), []byte(terminal.HideCursor)); n != 4 {
		t.Fatalf("frames = %d, want 4", n)
	}
	assertLines(t, e, "hi")
}

func TestRunReturnsReadError(t *testing.T) {
	boom := errors.New("boom")
	e := newTestEditor("x")
	err := e.Run(&scriptedKeys{err: &terminal.IOError{Op: "read", Err: boom}}, io.Discard)

	var ioErr *terminal.IOError
	if !errors.As(err, &ioErr) || !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped IOError", err)
	}
}

func TestRunReturnsRenderError(t *testing.T) {
	boom := errors.New("broken pipe")
	e := newTestEditor("x")
	err := e.Run(&scriptedKeys{}, failingWriter{err: boom})

	var ioErr *terminal.IOError
	if !errors.As(err, &ioErr) || !errors.Is(err, boom) {
		t.Fatalf("err = %v, want IOError wrapping %v", err, boom)
	}
}

func TestRenderBannerOnEmptyDocument(t *testing.T) {
	e := New(config.Default(), 24, 80)
	var out bytes.Buffer
	if err := e.Render(&out); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(out.String(), "tedit editor -- version "+Version) {
		t.Fatalf("banner missing: %q", out.String())
	}
	if !strings.Contains(out.String(), helpLine) {
		t.Fatalf("help line missing: %q", out.String())
	}
	if !strings.HasSuffix(out.String(), terminal.MoveCursor(1, 1)+terminal.ShowCursor) {
		t.Fatalf("cursor not at origin: %q", out.String())
	}
}

func TestRenderWithoutBanner(t *testing.T) {
	cfg := config.Default()
	cfg.Editor.ShowBanner = false
	e := New(cfg, 24, 80)
	var out bytes.Buffer
	if err := e.Render(&out); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Contains(out.String(), "version") {
		t.Fatalf("banner drawn: %q", out.String())
	}
}

func TestRenderPromptLine(t *testing.T) {
	e := newTestEditor("text")
	e.screenRows, e.screenCols = 5, 40
	e.HandleKey(key(tcell.KeyCtrlS))
	typeText(e, "ab")

	var out bytes.Buffer
	if err := e.Render(&out); err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := "Save as: ab" + terminal.ClearLine + terminal.MoveCursor(5, 12)
	if !strings.Contains(out.String(), want) {
		t.Fatalf("prompt line missing: %q", out.String())
	}
}

func TestRenderCursorFollowsTabs(t *testing.T) {
	e := newTestEditor("\tx")
	e.cx = 1
	var out bytes.Buffer
	if err := e.Render(&out); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(out.String(), "        x"+terminal.ClearLine) {
		t.Fatalf("tab not expanded: %q", out.String())
	}
	if !strings.HasSuffix(out.String(), terminal.MoveCursor(1, 9)+terminal.ShowCursor) {
		t.Fatalf("cursor not after tab: %q", out.String())
	}
}

func TestPromptKeepsBottomTextRowVisible(t *testing.T) {
	e := newTestEditor("one", "two", "three")
	e.screenRows, e.screenCols = 3, 40
	e.cy = 2
	e.HandleKey(key(tcell.KeyCtrlS))

	var out bytes.Buffer
	if err := e.Render(&out); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if e.rowOff != 1 {
		t.Fatalf("rowOff = %d, want 1", e.rowOff)
	}
	frame := out.String()
	if !strings.Contains(frame, "three"+terminal.ClearLine) {
		t.Fatalf("cursor row not drawn: %q", frame)
	}
	if !strings.Contains(frame, savePrompt+terminal.ClearLine) {
		t.Fatalf("prompt missing: %q", frame)
	}
}

func TestStatusMessageKeepsCursorRowVisible(t *testing.T) {
	e := newTestEditor("one", "two", "three")
	e.screenRows, e.screenCols = 3, 40
	e.cy, e.cx = 2, 5
	e.setStatus("Save aborted")

	var out bytes.Buffer
	if err := e.Render(&out); err != nil {
		t.Fatalf("Render: %v", err)
	}
	frame := out.String()
	if !strings.Contains(frame, "three"+terminal.ClearLine) {
		t.Fatalf("cursor row not drawn: %q", frame)
	}
	if !strings.HasSuffix(frame, terminal.MoveCursor(2, 6)+terminal.ShowCursor) {
		t.Fatalf("cursor not on text row: %q", frame)
	}

	e.HandleKey(key(tcell.KeyLeft))
	out.Reset()
	if err := e.Render(&out); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Contains(out.String(), "Save aborted") {
		t.Fatalf("status not cleared: %q", out.String())
	}
}

func TestStatusMessageYieldsSingleRow(t *testing.T) {
	e := newTestEditor("only")
	e.screenRows, e.screenCols = 1, 20
	e.setStatus("4 bytes written to disk")

	var out bytes.Buffer
	if err := e.Render(&out); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(out.String(), "only"+terminal.ClearLine) {
		t.Fatalf("text row hidden: %q", out.String())
	}
}
