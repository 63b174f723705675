package banner

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thirukguru/cloudwaf-origin-detector/model"
)

func TestTitleLinesIncludeVersion(t *testing.T) {
	lines := titleLines(model.VersionInfo{Version: "1.2.3"})
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "cloudwaf-origin-detector 1.2.3")
	assert.Equal(t, len([]rune(lines[0])), len([]rune(lines[1])))
}

func TestWriteCenteredLines(t *testing.T) {
	var buf bytes.Buffer
	writeCenteredLines(&buf, []string{"abcd"}, 10)
	assert.Equal(t, "   abcd\n", buf.String())

	buf.Reset()
	writeCenteredLines(&buf, []string{"abcd"}, 2)
	assert.Equal(t, "abcd\n", buf.String())
}

func TestBannerTitleColorFromEnv(t *testing.T) {
	t.Setenv(bannerTitleColorEnv, "ibmblue")
	color, ok := bannerTitleColorFromEnv()
	require.True(t, ok)
	assert.Equal(t, bannerIBMBlue, color)

	t.Setenv(bannerTitleColorEnv, "NoSuchColor")
	_, ok = bannerTitleColorFromEnv()
	assert.False(t, ok)

	t.Setenv(bannerTitleColorEnv, "")
	_, ok = bannerTitleColorFromEnv()
	assert.False(t, ok)
}

func TestColorTablesAgree(t *testing.T) {
	assert.Equal(t, len(bannerTitleColors), len(bannerTitleColorNames))
	for _, c := range bannerTitleColors {
		assert.True(t, strings.HasPrefix(c, "\x1b[38;2;"))
	}
}
