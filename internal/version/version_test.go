package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfo(t *testing.T) {
	info := Info()
	assert.Equal(t, Application, info.Name)
	assert.Equal(t, Description, info.Description)
	assert.NotEmpty(t, info.GoVersion)
}

func TestInfo_LinkTimeOverrides(t *testing.T) {
	old := version
	t.Cleanup(func() { version = old })

	version = "v1.2.3"
	assert.Equal(t, "v1.2.3", Info().GitVersion)
	assert.Contains(t, Info().String(), "v1.2.3")
}
