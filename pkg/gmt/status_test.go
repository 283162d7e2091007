package gmt

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckStatus(t *testing.T) {
	assert.NoError(t, checkStatus(fnCallModule, 0))

	for _, status := range []int32{1, 17, -1, 255} {
		err := checkStatus(fnCallModule, status)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrNativeCall))

		var serr *StatusError
		require.True(t, errors.As(err, &serr))
		assert.Equal(t, int(status), serr.Status)
		assert.Equal(t, fnCallModule, serr.Op)
	}
}

func TestStatusErrorMessage(t *testing.T) {
	err := checkStatus(fnCallModule, 17)
	assert.Contains(t, err.Error(), "17")
	assert.Contains(t, err.Error(), "GMT_Call_Module")
}

func TestCString(t *testing.T) {
	got, err := cString("module name", "psbasemap")
	require.NoError(t, err)
	assert.Equal(t, "psbasemap", got)

	_, err = cString("module name", "ps\x00basemap")
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Contains(t, err.Error(), "offset 2")
}
