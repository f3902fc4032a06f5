package prefs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func loadIsolated(t *testing.T) *Prefs {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	return Load()
}

func TestPrefs_Defaults(t *testing.T) {
	p := loadIsolated(t)
	require.Equal(t, "", p.String("missing"))
	require.True(t, p.Bool("missing", true))
	require.False(t, p.Bool("missing", false))
	require.Nil(t, p.Strings("missing"))
}

func TestPrefs_InMemoryValues(t *testing.T) {
	p := loadIsolated(t)

	p.SetString("lastDirectory", "/tmp/images")
	require.Equal(t, "/tmp/images", p.String("lastDirectory"))

	p.SetBool("seamless", true)
	require.True(t, p.Bool("seamless", false))

	p.SetStrings("variants", []string{"a.png", "b.png"})
	require.Equal(t, []string{"a.png", "b.png"}, p.Strings("variants"))
}

func TestPrefs_SaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	p := Load()
	p.SetString("lastOriginal", "orig.png")
	p.SetBool("seamless", true)
	p.SetStrings("variants", []string{"a.png", "b.png"})
	require.NoError(t, p.Save())

	q := Load()
	require.Equal(t, "orig.png", q.String("lastOriginal"))
	require.True(t, q.Bool("seamless", false))
	require.Equal(t, []string{"a.png", "b.png"}, q.Strings("variants"))
}

func TestPrefs_WrongTypeFallsBack(t *testing.T) {
	p := loadIsolated(t)
	p.SetString("key", "text")
	require.False(t, p.Bool("key", false))
	require.Nil(t, p.Strings("key"))
}
