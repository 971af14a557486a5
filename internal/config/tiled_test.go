package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="50" height="20" tilewidth="16" tileheight="30" infinite="0" nextlayerid="2" nextobjectid="4">
 <objectgroup id="1" name="obstacles">
  <object id="1" type="upper" x="468" y="0" width="64" height="150"/>
  <object id="2" class="upper" x="168" y="0" width="64" height="200"/>
  <object id="3" class="lower" x="168" y="350" width="64" height="218"/>
 </objectgroup>
</map>
`

func writeTMX(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "course.tmx")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadCourseTMX(t *testing.T) {
	pairs, err := LoadCourseTMX(writeTMX(t, testTMX))
	if err != nil {
		t.Fatalf("LoadCourseTMX() error = %v", err)
	}

	if len(pairs) != 2 {
		t.Fatalf("expected 2 pairs, got %d: %+v", len(pairs), pairs)
	}

	first := pairs[0]
	if first.X != 168 || first.GapTop != 200 || first.GapBottom != 350 || first.Width != 64 {
		t.Errorf("first pair = %+v", first)
	}

	// Upper-only pair has no lower barrier
	second := pairs[1]
	if second.X != 468 || second.GapTop != 150 || !math.IsInf(second.GapBottom, 1) {
		t.Errorf("second pair = %+v", second)
	}
}

func TestLoadCourseTMXWithoutObstacleGroup(t *testing.T) {
	body := `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="10" tilewidth="16" tileheight="16" infinite="0">
 <objectgroup id="1" name="decor"/>
</map>
`
	_, err := LoadCourseTMX(writeTMX(t, body))
	if !errors.Is(err, ErrNoObstacleGroup) {
		t.Errorf("expected ErrNoObstacleGroup, got %v", err)
	}
}

func TestLoadCourseTMXIgnoresOtherGroups(t *testing.T) {
	body := `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="50" height="20" tilewidth="16" tileheight="30" infinite="0">
 <objectgroup id="1" name="ground">
  <object id="1" class="lower" x="0" y="568" width="800" height="32"/>
 </objectgroup>
 <objectgroup id="2" name="obstacles">
  <object id="2" class="upper" x="168" y="0" width="64" height="200"/>
 </objectgroup>
</map>
`
	pairs, err := LoadCourseTMX(writeTMX(t, body))
	if err != nil {
		t.Fatalf("LoadCourseTMX() error = %v", err)
	}
	if len(pairs) != 1 || pairs[0].X != 168 {
		t.Errorf("expected only the obstacle pair at x=168, got %+v", pairs)
	}
}
