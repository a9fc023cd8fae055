package levels

import (
	"testing"
	"testing/fstest"
)

const meadowTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="15" height="20" tilewidth="32" tileheight="32" infinite="0" nextlayerid="2" nextobjectid="2">
 <properties>
  <property name="platformCount" type="int" value="5"/>
  <property name="bandHeight" type="float" value="150"/>
  <property name="platformMinX" type="int" value="80"/>
  <property name="platformMaxX" type="int" value="400"/>
 </properties>
 <objectgroup id="1" name="PlayerSpawn">
  <object id="1" name="bunny" x="240" y="320"/>
 </objectgroup>
</map>
`

func defaultLayout() Layout {
	return Layout{
		Spawn:         SpawnPoint{X: 1, Y: 2},
		PlatformCount: 5,
		BandHeight:    10,
		PlatformMinX:  0,
		PlatformMaxX:  50,
	}
}

func TestLoadLayout(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/meadow.tmx": &fstest.MapFile{Data: []byte(meadowTMX)},
	}

	layout, err := LoadLayout(fsys, "levels/meadow.tmx", defaultLayout())
	if err != nil {
		t.Fatalf("LoadLayout: %v", err)
	}

	if layout.Spawn != (SpawnPoint{X: 240, Y: 320}) {
		t.Errorf("spawn = %+v, want (240, 320)", layout.Spawn)
	}
	if layout.BandHeight != 150 {
		t.Errorf("BandHeight = %v, want 150", layout.BandHeight)
	}
	if layout.PlatformMinX != 80 || layout.PlatformMaxX != 400 {
		t.Errorf("platform range = [%d, %d], want [80, 400]", layout.PlatformMinX, layout.PlatformMaxX)
	}
}

func TestLoadLayoutKeepsDefaults(t *testing.T) {
	const bare = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="15" height="20" tilewidth="32" tileheight="32" infinite="0">
</map>
`
	fsys := fstest.MapFS{
		"bare.tmx": &fstest.MapFile{Data: []byte(bare)},
	}

	layout, err := LoadLayout(fsys, "bare.tmx", defaultLayout())
	if err != nil {
		t.Fatalf("LoadLayout: %v", err)
	}
	want := defaultLayout()
	if *layout != want {
		t.Errorf("layout = %+v, want %+v", *layout, want)
	}
}

func TestLoadLayoutMissingFile(t *testing.T) {
	if _, err := LoadLayout(fstest.MapFS{}, "nope.tmx", defaultLayout()); err == nil {
		t.Error("expected an error for a missing map")
	}
}

func TestLoadLayoutRejectsPlatformCount(t *testing.T) {
	const sixPlatforms = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="15" height="20" tilewidth="32" tileheight="32" infinite="0">
 <properties>
  <property name="platformCount" type="int" value="6"/>
 </properties>
</map>
`
	fsys := fstest.MapFS{
		"six.tmx": &fstest.MapFile{Data: []byte(sixPlatforms)},
	}

	if _, err := LoadLayout(fsys, "six.tmx", defaultLayout()); err == nil {
		t.Error("expected an error for a map that changes the platform count")
	}
}
