package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	rdb, err := Open("redis://" + mr.Addr() + "/0")
	require.NoError(t, err)
	defer rdb.Close()
	assert.NoError(t, Ping(context.Background(), rdb))

	_, err = Open("not a url")
	assert.Error(t, err)
}
