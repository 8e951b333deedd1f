package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByteBuffer_Write(t *testing.T) {
	bb := NewByteBuffer(8)

	n, err := bb.Write([]byte("R163"))
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	n, err = bb.WriteString("Robert")
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	assert.Equal(t, []byte("R163Robert"), bb.Bytes())
	assert.Equal(t, 10, bb.Len())

	bb.Reset()
	assert.Equal(t, 0, bb.Len())
	assert.GreaterOrEqual(t, cap(bb.B), 10, "Reset should preserve capacity")
}

func TestByteBufferPool_GetPut(t *testing.T) {
	p := NewByteBufferPool(64, 128)

	bb := p.Get()
	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len())
	assert.GreaterOrEqual(t, cap(bb.B), 64)

	_, _ = bb.WriteString("data")
	p.Put(bb)

	again := p.Get()
	require.NotNil(t, again)
	assert.Equal(t, 0, again.Len(), "pooled buffer must come back empty")

	p.Put(nil)
}

func TestByteBufferPool_DropsOversized(t *testing.T) {
	p := NewByteBufferPool(16, 32)

	big := NewByteBuffer(1024)
	p.Put(big)

	bb := p.Get()
	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len())
}

func TestSnapshotBuffer(t *testing.T) {
	bb := GetSnapshotBuffer()
	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len())
	PutSnapshotBuffer(bb)
}
