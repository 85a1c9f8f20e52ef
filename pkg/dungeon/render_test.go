package dungeon

import (
	"strings"
	"testing"

	"github.com/Faultbox/dungeongen/pkg/geom"
)

func TestRender(t *testing.T) {
	l := levelFromRows(
		"    ",
		" .> ",
		" .. ",
		"    ",
	)
	l.calculateWalls()
	l.playerStart = geom.Pt(1, 1)
	l.tiles[l.index(2, 2)].IsSpawnPoint = true

	want := strings.Join([]string{
		"    ",
		" @> ",
		" .e ",
		" ## ",
	}, "\n") + "\n"

	if got := l.Render(); got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestRender_GeneratedMarkers(t *testing.T) {
	l := GenerateFromSeedString("render", 96, 48)
	out := l.Render()

	if strings.Count(out, "@") != 1 || strings.Count(out, ">") != 1 {
		t.Error("expected exactly one start and one exit marker")
	}
	if got := strings.Count(out, "e"); got != l.SpawnPointCount() {
		t.Errorf("rendered %d spawns, want %d", got, l.SpawnPointCount())
	}
	if lines := strings.Count(out, "\n"); lines != 48 {
		t.Errorf("rendered %d rows, want 48", lines)
	}
}
