package stacktesting

import (
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
)

type TestContext struct {
	Log logger.Logger
	T   *testing.T
}

type TestConfig struct {
	TestLabelPrefix string
	// LogLevel is passed to logger.New, defaults to "NOOP" so that test runs
	// are quiet unless explicitly asked otherwise.
	LogLevel string
}

func NewTestContext(t *testing.T, cfg TestConfig) TestContext {
	c := TestContext{
		T: t,
	}
	level := cfg.LogLevel
	if level == "" {
		level = "NOOP"
	}
	logger.New(level)
	label := cfg.TestLabelPrefix
	if label == "" {
		label = t.Name()
	}
	c.Log = logger.Sugar.WithServiceName(label)
	return c
}
