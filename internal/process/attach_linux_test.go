//go:build linux

package process

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchPidFindsOwnCommandLine(t *testing.T) {
	self := filepath.Base(os.Args[0])

	name, ok := matchPid(os.Getpid(), []string{"SonicColorsUltimate.exe", self})
	require.True(t, ok)
	assert.Equal(t, self, name)
}

func TestMatchPidNoMatch(t *testing.T) {
	_, ok := matchPid(os.Getpid(), []string{"SonicColorsUltimate.exe"})
	assert.False(t, ok)
}

func TestMatchPidGoneProcess(t *testing.T) {
	_, ok := matchPid(-1, []string{filepath.Base(os.Args[0])})
	assert.False(t, ok)
}
