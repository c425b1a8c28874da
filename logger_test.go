package rutego

import "testing"

// Light smoke tests ensuring exported logger APIs do not panic and remain
// callable. If richer logging behavior (format, sinks, filtering) is added
// later, expand assertions here.
func TestSimpleLoggerLevels(t *testing.T) {
	logger := NewSimpleLogger()

	logger.Debug("debug message", "key", "value")
	logger.Info("info message")
	logger.Warn("warn message", "dangling-key")
	logger.Error("error message", "status", 500)
}

func TestSimpleLoggerReusability(t *testing.T) {
	logger := NewSimpleLogger()
	for i := 0; i < 5; i++ {
		logger.Info("loop message", "i", i)
	}
}

func TestDefaultDebugConfig(t *testing.T) {
	config := DefaultDebugConfig()

	if config.Enabled {
		t.Error("Debug must be disabled by default")
	}
	if !config.LogRequests || !config.LogResponses || !config.LogHooks {
		t.Error("All log categories must default to enabled")
	}
	if config.RequestIDGen == nil {
		t.Fatal("Expected default request ID generator")
	}
	if id := config.RequestIDGen(); len(id) != 16 {
		t.Errorf("Expected 16 hex chars, got %q", id)
	}
}

func TestDefaultRequestIDGeneratorUnique(t *testing.T) {
	a := DefaultRequestIDGenerator()
	b := DefaultRequestIDGenerator()
	if a == b {
		t.Errorf("Expected unique request IDs, got %q twice", a)
	}
}
