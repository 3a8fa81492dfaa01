// File: executor_test.go
// Title: Executor Tests
// Description: Tests for operation planning and script rendering. Only
//              the pure planning surface is tested; spawning real
//              processes is out of scope here.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial test implementation

package executor

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/msto63/vcl/vcl/ast"
	"github.com/msto63/vcl/vcl/translator"
)

func TestPlanPlay(t *testing.T) {
	e := New(DefaultOptions())

	invs := e.Plan([]translator.Operation{translator.Play{Source: "a.mp4"}})

	want := []Invocation{{Program: "vlc", Args: []string{"a.mp4"}}}
	if diff := cmp.Diff(want, invs); diff != "" {
		t.Errorf("invocations mismatch (-want +got):\n%s", diff)
	}
}

func TestPlanPlayRange(t *testing.T) {
	e := New(DefaultOptions())

	invs := e.Plan([]translator.Operation{
		translator.PlayRange{
			Source: "a.mp4",
			Start:  ast.TimePosition{Minutes: 0, Seconds: 10},
			End:    ast.TimePosition{Minutes: 1, Seconds: 30},
		},
	})

	want := []Invocation{{
		Program: "vlc",
		Args:    []string{"a.mp4", "--start-time=10", "--stop-time=90"},
	}}
	if diff := cmp.Diff(want, invs); diff != "" {
		t.Errorf("invocations mismatch (-want +got):\n%s", diff)
	}
}

func TestPlanExtractFrame(t *testing.T) {
	e := New(DefaultOptions())

	invs := e.Plan([]translator.Operation{
		translator.ExtractFrame{Source: "v.mp4", FrameNumber: 10, Destination: "f.bmp"},
	})

	want := []Invocation{{
		Program: "ffmpeg",
		Args: []string{
			"-i", "v.mp4",
			"-vf", `select=eq(n\,10)`,
			"-vframes", "1",
			"f.bmp",
		},
	}}
	if diff := cmp.Diff(want, invs); diff != "" {
		t.Errorf("invocations mismatch (-want +got):\n%s", diff)
	}
}

func TestPlanExtractAudio(t *testing.T) {
	e := New(DefaultOptions())

	invs := e.Plan([]translator.Operation{
		translator.ExtractAudio{
			Source:      "v.mp4",
			Start:       ast.TimePosition{Minutes: 0, Seconds: 10},
			End:         ast.TimePosition{Minutes: 75, Seconds: 5},
			Destination: "a.mp3",
		},
	})

	want := []Invocation{{
		Program: "ffmpeg",
		Args: []string{
			"-i", "v.mp4",
			"-ss", "00:00:10",
			"-to", "01:15:05",
			"-vn",
			"-acodec", "mp3",
			"a.mp3",
		},
	}}
	if diff := cmp.Diff(want, invs); diff != "" {
		t.Errorf("invocations mismatch (-want +got):\n%s", diff)
	}
}

func TestPlanConcat(t *testing.T) {
	e := New(DefaultOptions())

	invs := e.Plan([]translator.Operation{
		translator.Concat{SourceA: "a.mp4", SourceB: "b.mp4", Destination: "c.mp4"},
	})

	if len(invs) != 1 {
		t.Fatalf("expected 1 invocation, got %d", len(invs))
	}
	inv := invs[0]
	if inv.Program != "ffmpeg" {
		t.Errorf("program = %q, want ffmpeg", inv.Program)
	}
	joined := strings.Join(inv.Args, " ")
	if !strings.Contains(joined, "concat=n=2") {
		t.Errorf("args %q should use the concat filter", joined)
	}
	if inv.Args[len(inv.Args)-1] != "c.mp4" {
		t.Errorf("last arg = %q, want the destination", inv.Args[len(inv.Args)-1])
	}
}

func TestCustomBinaryPaths(t *testing.T) {
	e := New(Options{FFmpegPath: "/opt/ffmpeg/bin/ffmpeg", PlayerPath: "mpv"})

	invs := e.Plan([]translator.Operation{
		translator.Play{Source: "a.mp4"},
		translator.ExtractFrame{Source: "v.mp4", FrameNumber: 1, Destination: "f.bmp"},
	})

	if invs[0].Program != "mpv" {
		t.Errorf("player program = %q, want mpv", invs[0].Program)
	}
	if invs[1].Program != "/opt/ffmpeg/bin/ffmpeg" {
		t.Errorf("ffmpeg program = %q", invs[1].Program)
	}
}

func TestInvocationString(t *testing.T) {
	inv := Invocation{Program: "vlc", Args: []string{"my video.mp4", "--start-time=10"}}

	got := inv.String()
	want := `vlc "my video.mp4" --start-time=10`
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestScript(t *testing.T) {
	e := New(DefaultOptions())

	script := e.Script([]translator.Operation{
		translator.Play{Source: "a.mp4"},
		translator.Play{Source: "b.mp4"},
	})

	if !strings.HasPrefix(script, "#!/bin/sh\nset -e\n") {
		t.Errorf("script missing header:\n%s", script)
	}
	lines := strings.Split(strings.TrimSpace(script), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d:\n%s", len(lines), script)
	}
	if lines[2] != "vlc a.mp4" || lines[3] != "vlc b.mp4" {
		t.Errorf("unexpected script body:\n%s", script)
	}
}
