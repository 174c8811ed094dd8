package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCategory(t *testing.T) {
	assert.Equal(t, "sound", NormalizeCategory("  Sound "))
	assert.Equal(t, "av & lighting", NormalizeCategory("AV & Lighting"))
	assert.Equal(t, "", NormalizeCategory("   "))
}

func TestContainsFold(t *testing.T) {
	assert.True(t, ContainsFold("StageCraft Fabricators", "stagecraft"))
	assert.True(t, ContainsFold("StageCraft Fabricators", "  Fabricators "))
	assert.False(t, ContainsFold("StageCraft Fabricators", "soundworks"))
	assert.False(t, ContainsFold("StageCraft Fabricators", ""))
}
