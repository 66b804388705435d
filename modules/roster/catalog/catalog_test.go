package catalog

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/iota-uz/roster/modules/roster/domain/entities/skill"
)

func TestEnsureTag_StableColor(t *testing.T) {
	c := New(nil)
	first := c.EnsureTag("VIP")
	second := c.EnsureTag("VIP")
	require.Equal(t, first, second)
	require.Equal(t, ColorFor("VIP"), first)
}

func TestEnsureTag_KeepsManuallyChosenColor(t *testing.T) {
	c := New(nil)
	require.NoError(t, c.CreateTag("Новичок", "#112233"))
	require.Equal(t, "#112233", c.EnsureTag("Новичок"))
}

func TestCreateTag_RejectsDuplicate(t *testing.T) {
	c := New(nil)
	require.NoError(t, c.CreateTag("VIP", "#112233"))
	require.ErrorIs(t, c.CreateTag("VIP", "#445566"), ErrDuplicateTag)
	// Identity is exact text, not case-folded.
	require.NoError(t, c.CreateTag("vip", "#445566"))
}

func TestDeleteTag(t *testing.T) {
	c := New(nil)
	c.EnsureTag("VIP")
	require.True(t, c.DeleteTag("VIP"))
	require.False(t, c.DeleteTag("VIP"))
	require.False(t, c.Has("VIP"))
}

func TestLoad_MalformedColorFallsBack(t *testing.T) {
	logBuffer := bytes.Buffer{}
	log := logrus.New()
	log.SetOutput(&logBuffer)

	c := New(log)
	c.Load(map[string]string{
		"VIP":     "#2563eb",
		"Новичок": "not-a-color",
		"":        "#16a34a",
	})

	require.Equal(t, 2, c.Len())
	require.Equal(t, "#2563eb", c.EnsureTag("VIP"))
	require.Equal(t, ColorFor("Новичок"), c.EnsureTag("Новичок"))
	require.Contains(t, logBuffer.String(), "malformed color")
}

func TestSnapshot_IsACopy(t *testing.T) {
	c := New(nil)
	c.EnsureTag("VIP")
	snap := c.Snapshot()
	snap["VIP"] = "#000000"
	require.Equal(t, ColorFor("VIP"), c.EnsureTag("VIP"))
}

func TestResolveSkill_CaseInsensitiveHitKeepsIdentity(t *testing.T) {
	existing := skill.Hydrate(uuid.New(), "crm", skill.CategoryProduct, 5, true)
	pool := []skill.Assignment{existing}

	got := ResolveSkill("CRM", pool, skill.CategoryTechnical)
	require.Equal(t, existing.ID(), got.ID())
	require.Equal(t, 5, got.Level())
	require.True(t, got.Verified())
	require.Equal(t, skill.CategoryProduct, got.Category())
}

func TestResolveSkill_MissSynthesizesDefault(t *testing.T) {
	got := ResolveSkill("Excel", nil, skill.CategoryTechnical)
	require.Equal(t, "Excel", got.Name())
	require.Equal(t, skill.DefaultLevel, got.Level())
	require.False(t, got.Verified())
	require.Equal(t, skill.CategoryTechnical, got.Category())
}

func TestColorFor_Deterministic(t *testing.T) {
	require.Equal(t, ColorFor("План"), ColorFor("План"))
	require.Contains(t, palette, ColorFor("План"))
}
