package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Praveen47Billion/pdfbox/testcommon"
)

func TestFirstCapableEmptyRegistry(t *testing.T) {
	_, err := NewDecoderRegistry().FirstCapable()
	assert.ErrorIs(t, err, ErrMissingDecoderCapability)
}

func TestFirstCapablePicksFirstInOrder(t *testing.T) {
	a := &testcommon.FakeRasterDecoder{Capable: true}
	b := &testcommon.FakeRasterDecoder{Capable: true}

	registry := NewDecoderRegistry(a, b)
	got, err := registry.FirstCapable()
	require.NoError(t, err)
	assert.Same(t, a, got)
}

func TestFirstCapableSkipsNonCapable(t *testing.T) {
	a := &testcommon.FakeRasterDecoder{Capable: false}
	b := &testcommon.FakeRasterDecoder{Capable: true}

	registry := NewDecoderRegistry(a)
	registry.Register(b)

	got, err := registry.FirstCapable()
	require.NoError(t, err)
	assert.Same(t, b, got)
}
