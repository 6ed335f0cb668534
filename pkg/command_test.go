package pkg

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/madverse/madverse/pkg/story"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureStdout redirects os.Stdout around fn. Colored output goes through
// the color package's own writer and stays out of the capture, so JSON mode
// can be asserted byte for byte.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	defer func() { os.Stdout = old }()

	fn()

	require.NoError(t, w.Close())
	os.Stdout = old
	b, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(b)
}

func useTempStatsDB(t *testing.T) {
	t.Helper()
	viper.Set("MADVERSE_STATS_DB", filepath.Join(t.TempDir(), "stats.db"))
	t.Cleanup(func() { viper.Set("MADVERSE_STATS_DB", "") })
}

func TestStoryCommandsDeclareJSONFlag(t *testing.T) {
	assert.NotNil(t, newTellCommand().Flags().Lookup("json"))
	assert.NotNil(t, newAICommand().Flags().Lookup("json"))
}

func TestTellJSONOutput(t *testing.T) {
	useTempStatsDB(t)

	cmd := newTellCommand()
	require.NoError(t, cmd.Flags().Set("json", "true"))
	require.NoError(t, cmd.Flags().Set("seed", "7"))

	out := captureStdout(t, func() {
		require.NoError(t, cmd.RunE(cmd, []string{"horror"}))
	})

	var segs story.Segments
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(out)), &segs))
	require.NotEmpty(t, segs)
	assert.Equal(t, story.SegmentOpening, segs[0].Type)
	assert.Equal(t, story.SegmentAuthorComment, segs[len(segs)-1].Type)
}

func TestAIJSONOutputWithoutProvider(t *testing.T) {
	useTempStatsDB(t)
	viper.Set("MADVERSE_PROVIDER", "")

	cmd := newAICommand()
	require.NoError(t, cmd.Flags().Set("json", "true"))

	out := captureStdout(t, func() {
		require.NoError(t, cmd.RunE(cmd, nil))
	})

	var segs story.Segments
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(out)), &segs))
	require.Len(t, segs, 4)
	assert.Equal(t, story.SegmentClosing, segs[2].Type)
}

func TestParseWords(t *testing.T) {
	words := parseWords([]string{"noun=teapot", " verb = wept ", "malformed"})

	assert.Equal(t, story.WordMap{"noun": "teapot", "verb": "wept"}, words)
}
