package qrgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilenameStripsProtocolAndWWW(t *testing.T) {
	assert.Equal(t, "example-com-some-path.png", Filename("https://www.example.com/some/path"))
	assert.Equal(t, "example-com.png", Filename("http://example.com"))
	assert.Equal(t, "example-com.png", Filename("www.example.com"))
}

func TestFilenamePlainText(t *testing.T) {
	assert.Equal(t, "hello-world.png", Filename("Hello World"))
}

func TestFilenameLengthCap(t *testing.T) {
	long := "https://example.com/" + strings.Repeat("segment/", 20)
	name := Filename(long)

	assert.True(t, strings.HasSuffix(name, ".png"))
	assert.LessOrEqual(t, len(name), 54)
	assert.False(t, strings.Contains(strings.TrimSuffix(name, ".png"), "--"))
}

func TestFilenameFallback(t *testing.T) {
	assert.Equal(t, "qr-code.png", Filename("???"))
}
