package config

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"native-messagebox/internal/msgbox"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	fs := afero.NewMemMapFs()
	cfg, err := Load(fs, "/cfg/config.json")
	require.NoError(t, err)

	assert.Equal(t, "Hello", cfg.Text)
	assert.Equal(t, "Title", cfg.Title)
	assert.Equal(t, "/cfg/config.json", cfg.ConfigPath())

	req, err := cfg.Request()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x80246), msgbox.Fold(req.Options...))
}

func TestLoadEmptyFileUsesDefaults(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/cfg/config.json", []byte("  \n"), 0o600))

	cfg, err := Load(fs, "/cfg/config.json")
	require.NoError(t, err)
	assert.Equal(t, Default().Flags, cfg.Flags)
}

func TestLoadOverridesDefaults(t *testing.T) {
	fs := afero.NewMemMapFs()
	data := `{"Title": "Backup", "Flags": ["YES_NO", "icon_question"], "Strict": true, "LogLevel": "debug"}`
	require.NoError(t, afero.WriteFile(fs, "/cfg/config.json", []byte(data), 0o600))

	cfg, err := Load(fs, "/cfg/config.json")
	require.NoError(t, err)
	assert.Equal(t, "Hello", cfg.Text)
	assert.Equal(t, "Backup", cfg.Title)
	assert.True(t, cfg.Strict)

	opts, err := cfg.Options()
	require.NoError(t, err)
	assert.Equal(t, []msgbox.Flag{msgbox.YesNo, msgbox.IconQuestion}, opts)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name  string
		data  string
		field string
	}{
		{name: "unknown flag", data: `{"Flags": ["YES_NO", "SPARKLES"]}`, field: "Flags[1]"},
		{name: "empty flag", data: `{"Flags": [""]}`, field: "Flags[0]"},
		{name: "log level", data: `{"LogLevel": "verbose"}`, field: "LogLevel"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fs, "/c.json", []byte(tt.data), 0o600))

			_, err := Load(fs, "/c.json")
			var verr ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestLoadMalformedJSON(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/c.json", []byte("{"), 0o600))

	_, err := Load(fs, "/c.json")
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestSaveRoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()
	cfg, err := Load(fs, "/nested/dir/config.json")
	require.NoError(t, err)
	cfg.Text = "Disk almost full"
	cfg.Flags = []string{"OK_CANCEL", "ICON_EXCLAMATION"}
	require.NoError(t, cfg.Save(fs))

	loaded, err := Load(fs, "/nested/dir/config.json")
	require.NoError(t, err)
	assert.Equal(t, cfg.Text, loaded.Text)
	assert.Equal(t, cfg.Flags, loaded.Flags)
}

func TestSaveRejectsInvalid(t *testing.T) {
	cfg := Default()
	cfg.Flags = []string{"BOGUS"}
	assert.Error(t, cfg.Save(afero.NewMemMapFs()))
}

func TestExpandPath(t *testing.T) {
	t.Setenv("MSGBOX_TEST_DIR", "/tmp/msgbox")
	assert.Equal(t, filepath.Clean("/tmp/msgbox/out.log"), ExpandPath("$MSGBOX_TEST_DIR/out.log"))
	assert.Equal(t, "", ExpandPath("   "))
	assert.True(t, filepath.IsAbs(ExpandPath("relative.log")))
}
