package viewer

import (
	"image"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSubject_Tileable(t *testing.T) {
	require.False(t, (&Subject{}).Tileable())
	require.True(t, (&Subject{Seamless: true}).Tileable())
	require.True(t, (&Subject{PatternType: PatternSeamless}).Tileable())
	require.True(t, (&Subject{PatternType: PatternTwoway}).Tileable())
}

func TestSubject_PrimaryURL(t *testing.T) {
	sub := &Subject{GeneratedURL: "gen.png"}
	require.Equal(t, "gen.png", sub.PrimaryURL())

	sub.GeneratedURLs = []string{"a.png", "b.png"}
	require.Equal(t, "a.png", sub.PrimaryURL())
}

func TestSubject_TilePlanSeamless(t *testing.T) {
	sub := &Subject{
		GeneratedURL: "gen.png",
		PatternType:  PatternSeamless,
	}
	plan := sub.TilePlan()
	for i, url := range plan {
		require.Equal(t, "gen.png", url, "cell %d", i)
	}
}

func TestSubject_TilePlanTwowayTwoURLs(t *testing.T) {
	sub := &Subject{
		GeneratedURLs: []string{"a.png", "b.png"},
		PatternType:   PatternTwoway,
	}
	plan := sub.TilePlan()

	// Only the middle row is populated; the missing third slot repeats the
	// first URL.
	want := [9]string{
		"", "", "",
		"a.png", "b.png", "a.png",
		"", "", "",
	}
	require.Equal(t, want, plan)
}

func TestSubject_TilePlanTwowayThreeURLs(t *testing.T) {
	sub := &Subject{
		GeneratedURLs: []string{"a.png", "b.png", "c.png"},
		PatternType:   PatternTwoway,
	}
	plan := sub.TilePlan()
	require.Equal(t, "a.png", plan[3])
	require.Equal(t, "b.png", plan[4])
	require.Equal(t, "c.png", plan[5])
	for _, i := range []int{0, 1, 2, 6, 7, 8} {
		require.Empty(t, plan[i])
	}
}

func TestSubject_TilePlanTwowaySingleURL(t *testing.T) {
	sub := &Subject{
		GeneratedURL: "gen.png",
		PatternType:  PatternTwoway,
	}
	plan := sub.TilePlan()
	require.Equal(t, "gen.png", plan[3])
	require.Equal(t, "gen.png", plan[4])
	require.Equal(t, "gen.png", plan[5])
	require.Empty(t, plan[0])
}

func TestSubject_ImageFor(t *testing.T) {
	primary := image.NewRGBA(image.Rect(0, 0, 2, 2))
	variant := image.NewRGBA(image.Rect(0, 0, 4, 4))
	sub := &Subject{
		GeneratedURL: "gen.png",
		Generated:    primary,
		Variants:     map[string]image.Image{"b.png": variant},
	}

	require.Equal(t, image.Image(variant), sub.ImageFor("b.png"))
	require.Equal(t, image.Image(primary), sub.ImageFor("gen.png"))
	require.Equal(t, image.Image(primary), sub.ImageFor("missing.png"))
}
