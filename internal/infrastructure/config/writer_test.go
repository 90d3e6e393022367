package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDefaultConfig_RoundTrips(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := testDir + "/config.toml"

	require.NoError(t, WriteDefaultConfig(fs, path, false))

	mgr, err := NewManager(WithFs(fs), WithDir(testDir))
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	assert.True(t, mgr.HasConfigFile())
	assert.Equal(t, DefaultConfig(), mgr.Get())
}

func TestWriteDefaultConfig_DoesNotOverwrite(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := testDir + "/config.toml"
	require.NoError(t, afero.WriteFile(fs, path, []byte("[panel]\nheight = 10\n"), filePerm))

	err := WriteDefaultConfig(fs, path, false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfigExists))

	require.NoError(t, WriteDefaultConfig(fs, path, true))
	content, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "height = 32")
}

func TestEncodeConfig_SectionsSorted(t *testing.T) {
	data, err := EncodeConfig(DefaultConfig())
	require.NoError(t, err)

	var sections []string
	for _, line := range strings.Split(string(data), "\n") {
		if match := sectionRegex.FindStringSubmatch(line); match != nil {
			sections = append(sections, match[2])
		}
	}

	require.NotEmpty(t, sections)
	for i := 1; i < len(sections); i++ {
		assert.LessOrEqual(t, sections[i-1], sections[i])
	}
}

func TestSortTOMLSections(t *testing.T) {
	input := `[panel]
height = 32

[animation]
step = 20.0

[modules.volume]
enabled = true

[modules.brightness]
enabled = true
`

	result := sortTOMLSections(input)

	var sections []string
	for _, line := range strings.Split(result, "\n") {
		if strings.HasPrefix(line, "[") {
			sections = append(sections, line)
		}
	}

	assert.Equal(t, []string{
		"[animation]",
		"[modules.brightness]",
		"[modules.volume]",
		"[panel]",
	}, sections)
}

func TestEncodeConfig_Nil(t *testing.T) {
	_, err := EncodeConfig(nil)
	assert.Error(t, err)
}
