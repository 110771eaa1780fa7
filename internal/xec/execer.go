package xec

import "os/exec"

//go:generate mockgen -destination=xectest/mock_execer.go -package=xectest -write_package_comment=false . Execer

// Execer controls actual execution of commands.
// It provides a way to intercept command execution for testing.
type Execer interface {
	Start(*exec.Cmd) error
	Wait(*exec.Cmd) error
}

type realExecer struct{}

// DefaultExecer is the default implementation of Execer.
// It uses the real os/exec package to execute commands.
var DefaultExecer Execer = realExecer{}

func (realExecer) Start(cmd *exec.Cmd) error { return cmd.Start() }
func (realExecer) Wait(cmd *exec.Cmd) error  { return cmd.Wait() }
