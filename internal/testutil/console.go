//go:build !windows

// Package testutil drives interactive prompts through a virtual terminal.
package testutil

import (
	"testing"
	"time"

	"github.com/AlecAivazis/survey/v2/terminal"
	expect "github.com/Netflix/go-expect"
	pseudotty "github.com/creack/pty"
	"github.com/hinshun/vt10x"
	"github.com/stretchr/testify/require"
)

// Console is the user side of a virtual terminal session
type Console interface {
	ExpectString(string)
	ExpectEOF()
	SendLine(string)
	Send(string)
}

// Key sequences understood by survey prompts
const (
	KeyDown  = "\x1b[B"
	KeyUp    = "\x1b[A"
	KeyEnter = "\r"
)

type console struct {
	c *expect.Console
	t *testing.T
}

func (w *console) ExpectString(s string) {
	w.t.Helper()
	if _, err := w.c.ExpectString(s); err != nil {
		w.t.Errorf("ExpectString(%q): %v", s, err)
	}
}

func (w *console) ExpectEOF() {
	w.t.Helper()
	if _, err := w.c.ExpectEOF(); err != nil {
		w.t.Logf("ExpectEOF: %v", err)
	}
}

func (w *console) SendLine(s string) {
	w.t.Helper()
	_, err := w.c.SendLine(s)
	require.NoError(w.t, err, "SendLine(%q)", s)
}

func (w *console) Send(s string) {
	w.t.Helper()
	_, err := w.c.Send(s)
	require.NoError(w.t, err, "Send(%q)", s)
}

// RunPromptTest plays user against a pseudo-terminal rendered by vt10x and
// hands the terminal's stdio to prompt. prompt's error fails the test.
func RunPromptTest(t *testing.T, user func(Console), prompt func(terminal.Stdio) error) {
	t.Helper()

	ptm, pts, err := pseudotty.Open()
	require.NoError(t, err, "open pseudo-terminal")

	term := vt10x.New(vt10x.WithWriter(pts))

	c, err := expect.NewConsole(
		expect.WithStdin(ptm),
		expect.WithStdout(term),
		expect.WithCloser(ptm, pts),
		expect.WithDefaultTimeout(5*time.Second),
	)
	require.NoError(t, err, "create console")
	defer c.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		user(&console{c: c, t: t})
	}()

	stdio := terminal.Stdio{In: c.Tty(), Out: c.Tty(), Err: c.Tty()}
	err = prompt(stdio)

	// Closing the tty delivers EOF to the user side
	c.Tty().Close()

	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("timed out waiting for console input to finish")
	}

	require.NoError(t, err)
}
