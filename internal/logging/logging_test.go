package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTextLevels(t *testing.T) {
	ctx := context.Background()

	var quiet bytes.Buffer
	l := NewText(&quiet, false)
	l.Debug(ctx, "hidden")
	l.Info(ctx, "shown", "k", "v")
	assert.NotContains(t, quiet.String(), "hidden")
	assert.Contains(t, quiet.String(), "shown")
	assert.Contains(t, quiet.String(), "k=v")

	var verbose bytes.Buffer
	l = NewText(&verbose, true)
	l.Debug(ctx, "visible")
	assert.Contains(t, verbose.String(), "visible")
}

func TestWithCarriesAttributes(t *testing.T) {
	var buf bytes.Buffer
	l := NewText(&buf, false).With("step", "probe")
	l.Warn(context.Background(), "fallback")
	assert.Contains(t, buf.String(), "step=probe")
	assert.Contains(t, buf.String(), "level=WARN")
}

func TestOrDiscard(t *testing.T) {
	assert.NotNil(t, OrDiscard(nil))

	l := Discard()
	assert.Same(t, l, OrDiscard(l))
	l.Error(context.Background(), "dropped")
}
