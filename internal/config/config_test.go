package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "")
	t.Setenv("RECENT_COMMITS", "")
	t.Setenv("FREQUENCY_DAYS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Empty(t, cfg.GitHubToken)
	assert.Equal(t, 10, cfg.RecentCommits)
	assert.Equal(t, 30, cfg.FrequencyDays)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "ghp_testtoken")
	t.Setenv("RECENT_COMMITS", "25")
	t.Setenv("FREQUENCY_DAYS", "7")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "ghp_testtoken", cfg.GitHubToken)
	assert.Equal(t, 25, cfg.RecentCommits)
	assert.Equal(t, 7, cfg.FrequencyDays)
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name: "valid",
			cfg:  Config{RecentCommits: 10, FrequencyDays: 30},
		},
		{
			name:    "recent commits below one",
			cfg:     Config{RecentCommits: 0, FrequencyDays: 30},
			wantErr: "RECENT_COMMITS",
		},
		{
			name:    "frequency days below one",
			cfg:     Config{RecentCommits: 10, FrequencyDays: -1},
			wantErr: "FREQUENCY_DAYS",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
