package bundle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExtensionsNormalizes(t *testing.T) {
	set := ParseExtensions(".CS,Txt,go")

	assert.False(t, set.All())
	assert.True(t, set.Contains("cs"))
	assert.True(t, set.Contains(".TXT"))
	assert.True(t, set.Contains("go"))
	assert.False(t, set.Contains("md"))
}

func TestParseExtensionsAllSentinel(t *testing.T) {
	for _, input := range []string{"all", "ALL", " All "} {
		set := ParseExtensions(input)
		assert.True(t, set.All(), "input %q", input)
		assert.True(t, set.Contains("anything"))
	}
}

func TestParseExtensionsSkipsEmptyEntries(t *testing.T) {
	set := ParseExtensions("cs,,txt,")

	assert.Equal(t, "cs,txt", set.String())
}

func TestExtensionSetString(t *testing.T) {
	assert.Equal(t, AllLanguages, ParseExtensions("all").String())
	assert.Equal(t, "cs,txt", ParseExtensions("txt,cs").String())
}

func TestNormalizeExt(t *testing.T) {
	assert.Equal(t, "cs", NormalizeExt(".CS"))
	assert.Equal(t, "txt", NormalizeExt("txt"))
	assert.Equal(t, "", NormalizeExt("."))
	assert.Equal(t, "", NormalizeExt(" "))
}

func TestParseSortMode(t *testing.T) {
	mode, err := ParseSortMode("name")
	require.NoError(t, err)
	assert.Equal(t, SortByName, mode)

	mode, err = ParseSortMode("TYPE")
	require.NoError(t, err)
	assert.Equal(t, SortByType, mode)

	mode, err = ParseSortMode("")
	require.NoError(t, err)
	assert.Equal(t, SortByName, mode)

	_, err = ParseSortMode("size")
	assert.Error(t, err)
}
