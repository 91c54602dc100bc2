package qrx

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDataURL(t *testing.T) {
	t.Parallel()

	artifact, err := EncodeDataURL("0d7e2f63-8f4c-4b1a-9c2d-2f1f9be40d11")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(artifact, DataURLPrefix))

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(artifact, DataURLPrefix))
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	require.Equal(t, DefaultSize, img.Bounds().Dx())
	require.Equal(t, DefaultSize, img.Bounds().Dy())
}

func TestEncodeDataURLDistinctPayloads(t *testing.T) {
	t.Parallel()

	a, err := EncodeDataURL("payload-a")
	require.NoError(t, err)
	b, err := EncodeDataURL("payload-b")
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestEncodeDataURLEmptyPayload(t *testing.T) {
	t.Parallel()

	_, err := EncodeDataURL("")
	require.Error(t, err)
}
