package xlogconf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaginessa/VideoLibrarian/pkg/config/xlogconf"
	"github.com/vaginessa/VideoLibrarian/pkg/observability/xlogfile"
)

func TestDefaultSettings(t *testing.T) {
	s := xlogconf.DefaultSettings()
	assert.Empty(t, s.Path)
	assert.Equal(t, xlogfile.DefaultMaxSizeMB, s.MaxSizeMB)
	assert.True(t, s.RedactErrors)
	assert.Equal(t, "0600", s.FileMode)
	assert.NoError(t, s.Validate())
}

func TestSettingsValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*xlogconf.Settings)
		wantErr bool
	}{
		{
			name:   "默认设置合法",
			mutate: func(*xlogconf.Settings) {},
		},
		{
			name:   "空权限字符串合法",
			mutate: func(s *xlogconf.Settings) { s.FileMode = "" },
		},
		{
			name:    "非八进制权限字符串",
			mutate:  func(s *xlogconf.Settings) { s.FileMode = "rw-r--r--" },
			wantErr: true,
		},
		{
			name:    "八进制越界",
			mutate:  func(s *xlogconf.Settings) { s.FileMode = "0699" },
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := xlogconf.DefaultSettings()
			tt.mutate(&s)
			err := s.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, xlogconf.ErrInvalidSettings)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSettingsOptionsBuildWriter(t *testing.T) {
	dir := t.TempDir()
	s := xlogconf.DefaultSettings()
	s.Path = dir + "/app.log"
	s.MaxSizeMB = 5
	s.RedactErrors = false
	s.FileMode = "0640"
	require.NoError(t, s.Validate())

	w, err := xlogfile.New(s.Options()...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	require.NoError(t, w.Write(xlogfile.SeverityInfo, "configured"))
	assert.FileExists(t, s.Path)
}
