package fashiontools

import (
	"os"
	"testing"
)

func TestLoggingSwitch(t *testing.T) {
	tw := &testWriter{}
	SetLogWriters(tw)
	defer func() {
		EnableLogging(false)
		SetLogLevel("info")
		SetLogWriters(os.Stdout)
	}()

	logger.Info("while off")
	if len(tw.messages) != 0 {
		t.Errorf("expected nothing logged while logging is off, got %v", tw.messages)
	}

	EnableLogging(true)
	logger.Debug("debug below info")
	logger.Info("info while on")
	if tw.contains("debug below info") || !tw.contains("info while on") {
		t.Errorf("unexpected logs at info level: %v", tw.messages)
	}

	if err := SetLogLevel("debug"); err != nil {
		t.Fatal(err)
	}
	logger.Debug("debug now visible")
	if !tw.contains("debug now visible") {
		t.Errorf("expected debug log after lowering the level, got %v", tw.messages)
	}

	if err := SetLogLevel("chatty"); err == nil {
		t.Error("expected error for an unknown level")
	}

	EnableLogging(false)
	logger.Error("error while off")
	if tw.contains("error while off") {
		t.Error("expected logs to stop after disabling")
	}
}
