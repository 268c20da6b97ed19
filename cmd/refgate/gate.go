package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/codimo/refgate/internal/gate"
	"github.com/codimo/refgate/internal/gitcmd"
	"github.com/spf13/cobra"
)

// errPushRejected signals a non-zero exit after the rejection report has
// already been printed
var errPushRejected = errors.New("push rejected")

func runGate(cmd *cobra.Command, args []string) error {
	return executeGate(os.Stdin, os.Stderr, os.Getenv, &gitcmd.Config{}, &gitcmd.Differ{})
}

// executeGate runs the whole push evaluation: hook-context check, policy
// load, then the fold over the stdin records
func executeGate(in io.Reader, errw io.Writer, getenv func(string) string, cfg gate.ConfigStore, differ gate.RevisionDiffer) error {
	// Outside a hook invocation GIT_DIR is unset; treat that as a no-op
	// rather than an error
	if getenv("GIT_DIR") == "" {
		fmt.Fprintln(errw, "Don't run this command from the command line.")
		fmt.Fprintln(errw, "It is meant to be installed as a pre-receive hook, where git")
		fmt.Fprintln(errw, "invokes it with the proposed ref updates on stdin.")
		return nil
	}

	policy, err := gate.LoadPolicy(cfg)
	if err != nil {
		fmt.Fprintln(errw, `core.quotepath is set to "off" in the repository configuration.`)
		fmt.Fprintln(errw, "The non-ASCII file name check cannot work without path quoting.")
		fmt.Fprintln(errw, "Remove the setting, or set hooks.allownonascii to bypass the check.")
		return err
	}

	g := gate.New(policy, differ, errw, debugLogger(getenv, errw))
	if g.Run(in) == gate.Rejected {
		return errPushRejected
	}

	return nil
}

// debugLogger returns a logger that prints internal evaluation state when
// REFGATE_DEBUG is set, and discards everything otherwise
func debugLogger(getenv func(string) string, w io.Writer) *slog.Logger {
	if getenv("REFGATE_DEBUG") == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
