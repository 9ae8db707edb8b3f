package logger

import (
	"bytes"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := new(bytes.Buffer)
	SetOutput(buf)
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	})
	return buf
}

func TestSetVerbose(t *testing.T) {
	capture(t)

	SetVerbose(false)
	assert.False(t, IsVerbose())
	assert.True(t, Enabled(LevelWarn))
	assert.False(t, Enabled(LevelInfo))

	SetVerbose(true)
	assert.True(t, IsVerbose())
	assert.True(t, Enabled(LevelDebug))
}

func TestLevels(t *testing.T) {
	tests := []struct {
		name    string
		verbose bool
		log     func(string, ...any)
		want    string
	}{
		{"debug when verbose", true, Debug, "[DEBUG] rejected by no-gambling\n"},
		{"debug when quiet", false, Debug, ""},
		{"info when verbose", true, Info, "[INFO] rejected by no-gambling\n"},
		{"info when quiet", false, Info, ""},
		{"warn when verbose", true, Warn, "[WARN] rejected by no-gambling\n"},
		{"warn when quiet", false, Warn, "[WARN] rejected by no-gambling\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := capture(t)
			SetVerbose(tt.verbose)

			tt.log("rejected by %s", "no-gambling")
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestSetLevel(t *testing.T) {
	buf := capture(t)
	SetLevel(LevelInfo)

	Debug("hidden")
	Info("shown")
	assert.Equal(t, "[INFO] shown\n", buf.String())
}

func TestLevel_String(t *testing.T) {
	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "WARN", LevelWarn.String())
	assert.Equal(t, "LEVEL(7)", Level(7).String())
}

func TestMessageWithPercent(t *testing.T) {
	buf := capture(t)
	Warn("literal %s", "100%")
	assert.Equal(t, "[WARN] literal 100%\n", buf.String())
}

func TestConcurrentAccess(t *testing.T) {
	capture(t)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			SetVerbose(true)
			Debug("message %d", i)
		}()
		go func() {
			defer wg.Done()
			_ = IsVerbose()
			Warn("message %d", i)
		}()
	}
	wg.Wait()
}
