package cmd

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/ssh"
)

// Run executes command on the remote host and returns its separated output
// streams and exit status. When elevate is set the command line is wrapped
// for sudo and the endpoint password is fed to the elevation prompt exactly
// once on stdin. The transport is established on demand. A non-zero remote
// exit is a result, not an error; the error return is reserved for failures
// to connect or dispatch.
func (s *remoteSession) Run(command string, elevate bool) (commandResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.connectLocked(); err != nil {
		return commandResult{ExitStatus: -1}, err
	}

	line := command
	var stdin string
	if elevate {
		line, stdin = elevateCommand(command, s.info.Password)
	}

	s.logger.Debug().Msg(command)
	res, err := s.runOne(line, stdin)
	s.logger.Debug().Int("exit", res.ExitStatus).Str("stdout", res.Stdout).Msg("command finished")
	if res.Stderr != "" {
		// Advisory only: admin tools write informational text to stderr
		// on success. Callers judge the outcome by the exit status.
		s.logger.Error().Str("stderr", res.Stderr).Msgf("stderr from %q", command)
	}
	return res, err
}

// runOne opens one exec channel, waits for the remote process, and bounds
// the wait by the per-command timeout when one is configured. On timeout
// the exec channel is abandoned; the session stays usable.
func (s *remoteSession) runOne(line, stdin string) (commandResult, error) {
	type outcome struct {
		res commandResult
		err error
	}

	run := func() outcome {
		sess, err := s.client.NewSession()
		if err != nil {
			return outcome{commandResult{ExitStatus: -1}, fmt.Errorf("session: %w", err)}
		}
		defer func(thisSession session) {
			_ = thisSession.Close()
		}(sess)
		out, errOut, err := sess.Output(line, stdin)
		res := commandResult{Stdout: string(out), Stderr: string(errOut)}
		if err == nil {
			return outcome{res, nil}
		}
		// A remote non-zero exit surfaces as ssh.ExitError; fold it into
		// the result instead of treating it as a transport failure.
		var ee *ssh.ExitError
		if errors.As(err, &ee) {
			res.ExitStatus = ee.ExitStatus()
			return outcome{res, nil}
		}
		res.ExitStatus = -1
		return outcome{res, err}
	}

	if s.timeout <= 0 {
		o := run()
		return o.res, o.err
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	ch := make(chan outcome, 1)
	go func() { ch <- run() }()

	select {
	case o := <-ch:
		return o.res, o.err
	case <-ctx.Done():
		// Best-effort: indicate timeout. Caller may reconnect if desired.
		return commandResult{ExitStatus: -1}, context.DeadlineExceeded
	}
}
