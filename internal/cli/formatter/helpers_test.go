package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corvidae/daywise/internal/domain"
)

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		input int
		want  string
	}{
		{0, "0m"},
		{-5, "0m"},
		{45, "45m"},
		{60, "1h"},
		{120, "2h"},
		{150, "2h 30m"},
		{61, "1h 1m"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMinutes(tt.input))
		})
	}
}

func TestTruncID(t *testing.T) {
	id := "a1b2c3d4-e5f6-7890-abcd-ef1234567890"
	got := TruncID(id)
	assert.Contains(t, got, "a1b2c3d4")
	assert.NotContains(t, got, "e5f6")

	got = TruncID("short")
	assert.Contains(t, got, "short")
}

func TestChunkLabel(t *testing.T) {
	assert.Equal(t, "", ChunkLabel(0, 1))
	assert.Equal(t, "", ChunkLabel(0, 0))
	assert.Equal(t, "1/3", ChunkLabel(0, 3))
	assert.Equal(t, "2/3", ChunkLabel(1, 3))
}

func TestRenderBox(t *testing.T) {
	result := RenderBox("TEST", "content here")
	assert.Contains(t, result, "TEST")
	assert.Contains(t, result, "content here")
	assert.Contains(t, result, "╭")
	assert.Contains(t, result, "╰")
}

func TestRenderBoxWithoutTitle(t *testing.T) {
	result := RenderBox("", "just content")
	assert.Contains(t, result, "just content")
	assert.Contains(t, result, "╭")
}

func TestTierColor_CoversEveryTier(t *testing.T) {
	tiers := []domain.PriorityTier{domain.TierCritical, domain.TierCore, domain.TierBacklog}
	for _, tier := range tiers {
		style := TierColor(tier)
		assert.NotNil(t, style.GetForeground())
	}
}

func TestWarningColor_GroupsBySeverity(t *testing.T) {
	assert.Equal(t, StyleRed, WarningColor(domain.WarningOverloaded))
	assert.Equal(t, StyleRed, WarningColor(domain.WarningAntiCrammingViolated))
	assert.Equal(t, StyleYellow, WarningColor(domain.WarningFamilyTimeCompromised))
	assert.Equal(t, StyleYellow, WarningColor(domain.WarningDeadlineAtRisk))
}

func TestHeader_RendersUnderline(t *testing.T) {
	got := Header("warnings")
	assert.Contains(t, got, "WARNINGS")
	assert.Contains(t, got, "─")
}
