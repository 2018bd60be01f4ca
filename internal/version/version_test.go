package version

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func saveBuildInfo(t *testing.T) {
	t.Helper()
	origVersion, origCommit, origDate := Version, GitCommit, BuildDate
	t.Cleanup(func() {
		SetBuildInfo(origVersion, origCommit, origDate)
	})
}

func TestGetVersion(t *testing.T) {
	assert.Equal(t, Version, GetVersion())
}

func TestValidateVersion(t *testing.T) {
	saveBuildInfo(t)

	SetBuildInfo("1.2.3", "unknown", "unknown")
	assert.NoError(t, ValidateVersion())

	SetBuildInfo("not-a-version", "unknown", "unknown")
	err := ValidateVersion()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid semantic version")
}

func TestGetInfo(t *testing.T) {
	saveBuildInfo(t)
	SetBuildInfo("0.1.0", "abcdef1234567890", "2025-01-01")

	info, err := GetInfo()
	require.NoError(t, err)
	assert.Equal(t, "0.1.0", info.Version)
	assert.Equal(t, "abcdef1234567890", info.GitCommit)
	assert.Equal(t, "2025-01-01", info.BuildDate)
	assert.NotEmpty(t, info.GoVersion)
	assert.True(t, strings.Contains(info.Platform, "/"))
	require.NotNil(t, info.SemVer)
	assert.Equal(t, uint64(0), info.SemVer.Major())
}

func TestGetFormattedVersion(t *testing.T) {
	saveBuildInfo(t)

	tests := []struct {
		name     string
		version  string
		commit   string
		date     string
		expected string
	}{
		{
			name:     "development build",
			version:  "0.1.0",
			commit:   "unknown",
			date:     "unknown",
			expected: "coursebot v0.1.0",
		},
		{
			name:     "release build truncates commit",
			version:  "1.0.0",
			commit:   "abcdef1234567890",
			date:     "2025-06-01",
			expected: "coursebot v1.0.0, commit abcdef1, built 2025-06-01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetBuildInfo(tt.version, tt.commit, tt.date)
			assert.Equal(t, tt.expected, GetFormattedVersion())
		})
	}
}

func TestIsDevelopment(t *testing.T) {
	saveBuildInfo(t)

	SetBuildInfo("0.1.0", "unknown", "unknown")
	assert.True(t, IsDevelopment())

	SetBuildInfo("0.1.0", "abc1234", "2025-01-01")
	assert.False(t, IsDevelopment())
}
