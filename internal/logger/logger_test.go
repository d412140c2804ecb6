package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogWritesFileAndMemory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "game.txt")
	l := NewAt(path)
	l.Log("hello")
	l.Logf("collected %s (%d)", "cube", 2)

	lines := l.Lines()
	if len(lines) != 2 {
		t.Fatalf("lines = %v", lines)
	}
	if !strings.HasPrefix(lines[0], "[") || !strings.HasSuffix(lines[1], "] collected cube (2)") {
		t.Errorf("unexpected format: %q", lines)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(string(data), "\n"); got != 2 {
		t.Errorf("file has %d lines:\n%s", got, data)
	}
}

func TestMemoryIsBounded(t *testing.T) {
	l := NewAt("")
	for i := 0; i < maxLines+25; i++ {
		l.Logf("line %d", i)
	}
	lines := l.Lines()
	if len(lines) != maxLines {
		t.Fatalf("kept %d lines", len(lines))
	}
	if !strings.HasSuffix(lines[0], "line 25") {
		t.Errorf("oldest kept = %q", lines[0])
	}

	tail := l.Tail(3)
	want := fmt.Sprintf("line %d", maxLines+24)
	if len(tail) != 3 || !strings.HasSuffix(tail[2], want) {
		t.Errorf("tail = %v", tail)
	}
	if got := l.Tail(-1); len(got) != 0 {
		t.Errorf("Tail(-1) = %v", got)
	}
}
