package cli

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/shade/internal/infrastructure/config"
)

func TestNewAppWithoutConfigFile(t *testing.T) {
	app, err := NewApp(WithFs(afero.NewMemMapFs()), WithConfigDir("/cfg"))
	require.NoError(t, err)

	assert.NoError(t, app.ConfigErr)
	assert.Equal(t, config.DefaultConfig().Panel.Height, app.Config.Panel.Height)
	assert.Equal(t, "/cfg/config.toml", app.Manager.GetConfigFile())
	assert.NotNil(t, app.Theme)
	assert.NotNil(t, app.Ctx())
}

func TestNewAppReadsConfigFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/cfg/config.toml", []byte("[panel]\nheight = 48\n"), 0o644))

	app, err := NewApp(WithFs(fs), WithConfigDir("/cfg"))
	require.NoError(t, err)

	require.NoError(t, app.ConfigErr)
	assert.Equal(t, 48, app.Config.Panel.Height)
}

func TestNewAppKeepsInvalidConfigError(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/cfg/config.toml", []byte("[panel]\nheight = -4\n"), 0o644))

	app, err := NewApp(WithFs(fs), WithConfigDir("/cfg"))
	require.NoError(t, err)

	require.Error(t, app.ConfigErr)
	assert.Equal(t, config.DefaultConfig().Panel.Height, app.Config.Panel.Height)
}
