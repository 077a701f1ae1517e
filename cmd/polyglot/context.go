package main

import (
	"io"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"polyglot/internal/platform/config"
	"polyglot/internal/platform/logger"
	detectmod "polyglot/internal/services/detect/module"
)

// loadRuntime runs the shared startup phase, tests swap it for a fake
var loadRuntime = func(root config.Conf) (*detectmod.Runtime, error) {
	return detectmod.Load(detectmod.FromConfig(root))
}

type commandContext struct {
	envFlag  *[]string
	logLevel *string

	runtimeOnce sync.Once
	runtime     *detectmod.Runtime
	runtimeErr  error
}

func newCommandContext(envFlag *[]string, logLevel *string) *commandContext {
	return &commandContext{
		envFlag:  envFlag,
		logLevel: logLevel,
	}
}

// setup loads env files and points logging at stderr so stdout stays clean
func (c *commandContext) setup(cmd *cobra.Command) error {
	var paths []string
	if c.envFlag != nil {
		paths = *c.envFlag
	}
	if _, err := config.LoadDotenv(paths...); err != nil {
		return err
	}

	opts := logger.FromEnv()
	if c.logLevel != nil && strings.TrimSpace(*c.logLevel) != "" {
		opts.Level = *c.logLevel
	}
	opts.Writer = cmd.ErrOrStderr()
	logger.Init(opts)
	return nil
}

// ensureRuntime loads tokenizers and the classifier once per invocation
func (c *commandContext) ensureRuntime() (*detectmod.Runtime, error) {
	c.runtimeOnce.Do(func() {
		c.runtime, c.runtimeErr = loadRuntime(config.New())
	})
	return c.runtime, c.runtimeErr
}

func (c *commandContext) close() error {
	if c.runtime == nil {
		return nil
	}
	return c.runtime.Close()
}

// readInput joins positional args, or reads all of stdin when there are none
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(b), "\r\n"), nil
}
