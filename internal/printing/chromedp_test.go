package printing

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChromedpRendererDefaults(t *testing.T) {
	r := NewChromedpRenderer(Config{Logger: zerolog.Nop()})
	defer r.Close()

	assert.Equal(t, defaultTimeout, r.config.Timeout)
	assert.NotNil(t, r.allocCtx)
}

func TestNewChromedpRendererRemote(t *testing.T) {
	r := NewChromedpRenderer(Config{RemoteURL: "ws://127.0.0.1:9222", Timeout: time.Second})
	defer r.Close()

	assert.Equal(t, time.Second, r.config.Timeout)
	assert.NotNil(t, r.allocCancel)
}

func TestPrintParams(t *testing.T) {
	p := printParams()

	assert.True(t, p.PrintBackground)
	assert.InDelta(t, 8.27, p.PaperWidth, 0.01)
	assert.InDelta(t, 11.69, p.PaperHeight, 0.01)
	assert.InDelta(t, 0.3937, p.MarginTop, 0.001)
	assert.InDelta(t, 0.3937, p.MarginLeft, 0.001)
}

func TestCompleteHTML(t *testing.T) {
	full := "<!DOCTYPE html><html><body>x</body></html>"
	assert.Equal(t, full, completeHTML(full))
	assert.Equal(t, "<HTML><body>y</body></HTML>", completeHTML("<HTML><body>y</body></HTML>"))

	wrapped := completeHTML("<p>fragment</p>")
	assert.Contains(t, wrapped, "<!DOCTYPE html>")
	assert.Contains(t, wrapped, "<body><p>fragment</p></body>")
}

func TestRenderRejectsEmptyBody(t *testing.T) {
	r := NewChromedpRenderer(Config{})
	defer r.Close()

	err := r.Render(context.Background(), "   ", t.TempDir()+"/out.pdf")
	require.Error(t, err)
}

func TestCloseIsIdempotent(t *testing.T) {
	r := NewChromedpRenderer(Config{})
	require.NoError(t, r.Close())
	require.NoError(t, r.Close())
}
