// Package level catalogues the stages of Sonic Colors: Ultimate.
//
// Every stage is identified in game memory by a 6-byte ASCII code such as
// "stg110". The catalog maps each code to exactly one ID and back. Codes
// that are not in the catalog map to None.
package level

import (
	"fmt"
	"strings"
)

// ID identifies a stage. The zero value is None.
type ID uint8

const (
	None ID = iota
	TropicalResortAct1
	TropicalResortAct2
	TropicalResortAct3
	TropicalResortAct4
	TropicalResortAct5
	TropicalResortAct6
	TropicalResortBoss
	SweetMountainAct1
	SweetMountainAct2
	SweetMountainAct3
	SweetMountainAct4
	SweetMountainAct5
	SweetMountainAct6
	SweetMountainBoss
	StarlightCarnivalAct1
	StarlightCarnivalAct2
	StarlightCarnivalAct3
	StarlightCarnivalAct4
	StarlightCarnivalAct5
	StarlightCarnivalAct6
	StarlightCarnivalBoss
	PlanetWispAct1
	PlanetWispAct2
	PlanetWispAct3
	PlanetWispAct4
	PlanetWispAct5
	PlanetWispAct6
	PlanetWispBoss
	AquariumParkAct1
	AquariumParkAct2
	AquariumParkAct3
	AquariumParkAct4
	AquariumParkAct5
	AquariumParkAct6
	AquariumParkBoss
	AsteroidCoasterAct1
	AsteroidCoasterAct2
	AsteroidCoasterAct3
	AsteroidCoasterAct4
	AsteroidCoasterAct5
	AsteroidCoasterAct6
	AsteroidCoasterBoss
	TerminalVelocityAct1
	TerminalVelocityBoss
	TerminalVelocityAct2
	SonicSimulatorAct1_1
	SonicSimulatorAct1_2
	SonicSimulatorAct1_3
	SonicSimulatorAct2_1
	SonicSimulatorAct2_2
	SonicSimulatorAct2_3
	SonicSimulatorAct3_1
	SonicSimulatorAct3_2
	SonicSimulatorAct3_3
	SonicSimulatorAct4_1
	SonicSimulatorAct4_2
	SonicSimulatorAct4_3
	SonicSimulatorAct5_1
	SonicSimulatorAct5_2
	SonicSimulatorAct5_3
	SonicSimulatorAct6_1
	SonicSimulatorAct6_2
	SonicSimulatorAct6_3
	SonicSimulatorAct7_1
	SonicSimulatorAct7_2
	SonicSimulatorAct7_3

	count
)

// Stages that carry special meaning for the run categories.
const (
	// Final is the last stage of an Any% run; its split fires on the goal ring.
	Final = TerminalVelocityAct2
	// EggShuttleFirst is stage 1 of the Egg Shuttle track.
	EggShuttleFirst = TropicalResortAct1
	// SimulatorFirst is the first Sonic Simulator stage.
	SimulatorFirst = SonicSimulatorAct1_1
)

// CodeLen is the length of a stage code in game memory.
const CodeLen = 6

// Code is the raw stage code as it appears in game memory.
type Code [CodeLen]byte

type entry struct {
	code string
	name string
	key  string
}

// catalog is indexed by ID. Stage codes inside a world are not in act order.
var catalog = [count]entry{
	None: {"", "None", "NONE"},

	TropicalResortAct1: {"stg110", "Tropical Resort - Act 1", "TROPICAL_RESORT_1"},
	TropicalResortAct2: {"stg130", "Tropical Resort - Act 2", "TROPICAL_RESORT_2"},
	TropicalResortAct3: {"stg120", "Tropical Resort - Act 3", "TROPICAL_RESORT_3"},
	TropicalResortAct4: {"stg140", "Tropical Resort - Act 4", "TROPICAL_RESORT_4"},
	TropicalResortAct5: {"stg150", "Tropical Resort - Act 5", "TROPICAL_RESORT_5"},
	TropicalResortAct6: {"stg160", "Tropical Resort - Act 6", "TROPICAL_RESORT_6"},
	TropicalResortBoss: {"stg190", "Tropical Resort - Boss", "TROPICAL_RESORT_BOSS"},

	SweetMountainAct1: {"stg210", "Sweet Mountain - Act 1", "SWEET_MOUNTAIN_1"},
	SweetMountainAct2: {"stg230", "Sweet Mountain - Act 2", "SWEET_MOUNTAIN_2"},
	SweetMountainAct3: {"stg220", "Sweet Mountain - Act 3", "SWEET_MOUNTAIN_3"},
	SweetMountainAct4: {"stg260", "Sweet Mountain - Act 4", "SWEET_MOUNTAIN_4"},
	SweetMountainAct5: {"stg240", "Sweet Mountain - Act 5", "SWEET_MOUNTAIN_5"},
	SweetMountainAct6: {"stg250", "Sweet Mountain - Act 6", "SWEET_MOUNTAIN_6"},
	SweetMountainBoss: {"stg290", "Sweet Mountain - Boss", "SWEET_MOUNTAIN_BOSS"},

	StarlightCarnivalAct1: {"stg310", "Starlight Carnival - Act 1", "STARLIGHT_CARNIVAL_1"},
	StarlightCarnivalAct2: {"stg330", "Starlight Carnival - Act 2", "STARLIGHT_CARNIVAL_2"},
	StarlightCarnivalAct3: {"stg340", "Starlight Carnival - Act 3", "STARLIGHT_CARNIVAL_3"},
	StarlightCarnivalAct4: {"stg350", "Starlight Carnival - Act 4", "STARLIGHT_CARNIVAL_4"},
	StarlightCarnivalAct5: {"stg320", "Starlight Carnival - Act 5", "STARLIGHT_CARNIVAL_5"},
	StarlightCarnivalAct6: {"stg360", "Starlight Carnival - Act 6", "STARLIGHT_CARNIVAL_6"},
	StarlightCarnivalBoss: {"stg390", "Starlight Carnival - Boss", "STARLIGHT_CARNIVAL_BOSS"},

	PlanetWispAct1: {"stg410", "Planet Wisp - Act 1", "PLANET_WISP_1"},
	PlanetWispAct2: {"stg440", "Planet Wisp - Act 2", "PLANET_WISP_2"},
	PlanetWispAct3: {"stg450", "Planet Wisp - Act 3", "PLANET_WISP_3"},
	PlanetWispAct4: {"stg430", "Planet Wisp - Act 4", "PLANET_WISP_4"},
	PlanetWispAct5: {"stg460", "Planet Wisp - Act 5", "PLANET_WISP_5"},
	PlanetWispAct6: {"stg420", "Planet Wisp - Act 6", "PLANET_WISP_6"},
	PlanetWispBoss: {"stg490", "Planet Wisp - Boss", "PLANET_WISP_BOSS"},

	AquariumParkAct1: {"stg510", "Aquarium Park - Act 1", "AQUARIUM_PARK_1"},
	AquariumParkAct2: {"stg540", "Aquarium Park - Act 2", "AQUARIUM_PARK_2"},
	AquariumParkAct3: {"stg550", "Aquarium Park - Act 3", "AQUARIUM_PARK_3"},
	AquariumParkAct4: {"stg530", "Aquarium Park - Act 4", "AQUARIUM_PARK_4"},
	AquariumParkAct5: {"stg560", "Aquarium Park - Act 5", "AQUARIUM_PARK_5"},
	AquariumParkAct6: {"stg520", "Aquarium Park - Act 6", "AQUARIUM_PARK_6"},
	AquariumParkBoss: {"stg590", "Aquarium Park - Boss", "AQUARIUM_PARK_BOSS"},

	AsteroidCoasterAct1: {"stg610", "Asteroid Coaster - Act 1", "ASTEROID_COASTER_1"},
	AsteroidCoasterAct2: {"stg630", "Asteroid Coaster - Act 2", "ASTEROID_COASTER_2"},
	AsteroidCoasterAct3: {"stg640", "Asteroid Coaster - Act 3", "ASTEROID_COASTER_3"},
	AsteroidCoasterAct4: {"stg650", "Asteroid Coaster - Act 4", "ASTEROID_COASTER_4"},
	AsteroidCoasterAct5: {"stg660", "Asteroid Coaster - Act 5", "ASTEROID_COASTER_5"},
	AsteroidCoasterAct6: {"stg620", "Asteroid Coaster - Act 6", "ASTEROID_COASTER_6"},
	AsteroidCoasterBoss: {"stg690", "Asteroid Coaster - Boss", "ASTEROID_COASTER_BOSS"},

	TerminalVelocityAct1: {"stg710", "Terminal Velocity - Act 1", "TERMINAL_VELOCITY_1"},
	TerminalVelocityBoss: {"stg790", "Terminal Velocity - Boss", "TERMINAL_VELOCITY_BOSS"},
	TerminalVelocityAct2: {"stg720", "Terminal Velocity - Act 2", "TERMINAL_VELOCITY_2"},

	SonicSimulatorAct1_1: {"stgD10", "Sonic Simulator 1-1", "SONIC_SIMULATOR_1_1"},
	SonicSimulatorAct1_2: {"stgB20", "Sonic Simulator 1-2", "SONIC_SIMULATOR_1_2"},
	SonicSimulatorAct1_3: {"stgE50", "Sonic Simulator 1-3", "SONIC_SIMULATOR_1_3"},
	SonicSimulatorAct2_1: {"stgD20", "Sonic Simulator 2-1", "SONIC_SIMULATOR_2_1"},
	SonicSimulatorAct2_2: {"stgB30", "Sonic Simulator 2-2", "SONIC_SIMULATOR_2_2"},
	SonicSimulatorAct2_3: {"stgF30", "Sonic Simulator 2-3", "SONIC_SIMULATOR_2_3"},
	SonicSimulatorAct3_1: {"stgG10", "Sonic Simulator 3-1", "SONIC_SIMULATOR_3_1"},
	SonicSimulatorAct3_2: {"stgG30", "Sonic Simulator 3-2", "SONIC_SIMULATOR_3_2"},
	SonicSimulatorAct3_3: {"stgA10", "Sonic Simulator 3-3", "SONIC_SIMULATOR_3_3"},
	SonicSimulatorAct4_1: {"stgD30", "Sonic Simulator 4-1", "SONIC_SIMULATOR_4_1"},
	SonicSimulatorAct4_2: {"stgG20", "Sonic Simulator 4-2", "SONIC_SIMULATOR_4_2"},
	SonicSimulatorAct4_3: {"stgC50", "Sonic Simulator 4-3", "SONIC_SIMULATOR_4_3"},
	SonicSimulatorAct5_1: {"stgE30", "Sonic Simulator 5-1", "SONIC_SIMULATOR_5_1"},
	SonicSimulatorAct5_2: {"stgB10", "Sonic Simulator 5-2", "SONIC_SIMULATOR_5_2"},
	SonicSimulatorAct5_3: {"stgE40", "Sonic Simulator 5-3", "SONIC_SIMULATOR_5_3"},
	SonicSimulatorAct6_1: {"stgG40", "Sonic Simulator 6-1", "SONIC_SIMULATOR_6_1"},
	SonicSimulatorAct6_2: {"stgC40", "Sonic Simulator 6-2", "SONIC_SIMULATOR_6_2"},
	SonicSimulatorAct6_3: {"stgF40", "Sonic Simulator 6-3", "SONIC_SIMULATOR_6_3"},
	SonicSimulatorAct7_1: {"stgA30", "Sonic Simulator 7-1", "SONIC_SIMULATOR_7_1"},
	SonicSimulatorAct7_2: {"stgE20", "Sonic Simulator 7-2", "SONIC_SIMULATOR_7_2"},
	SonicSimulatorAct7_3: {"stgC10", "Sonic Simulator 7-3", "SONIC_SIMULATOR_7_3"},
}

// byCode and byKey are reverse lookup tables built from catalog.
var (
	byCode map[Code]ID
	byKey  map[string]ID
)

func init() {
	byCode = make(map[Code]ID, count)
	byKey = make(map[string]ID, count)
	for id := TropicalResortAct1; id < count; id++ {
		e := catalog[id]
		var c Code
		copy(c[:], e.code)
		if prev, dup := byCode[c]; dup {
			panic(fmt.Sprintf("level: stage code %q used by both %d and %d", e.code, prev, id))
		}
		byCode[c] = id
		byKey[e.key] = id
	}
}

// FromCode maps a raw stage code to its ID. Unknown codes yield None.
func FromCode(c Code) ID {
	return byCode[c]
}

// All returns every catalogued stage in declaration order, excluding None.
func All() []ID {
	ids := make([]ID, 0, count-1)
	for id := TropicalResortAct1; id < count; id++ {
		ids = append(ids, id)
	}
	return ids
}

// Valid reports whether id is a catalogued stage.
func (id ID) Valid() bool {
	return id > None && id < count
}

// Code returns the stage code for id. The second result is false for None
// and for out-of-range values.
func (id ID) Code() (Code, bool) {
	var c Code
	if !id.Valid() {
		return c, false
	}
	copy(c[:], catalog[id].code)
	return c, true
}

// String returns the display name, e.g. "Planet Wisp - Act 3".
func (id ID) String() string {
	if id >= count {
		return fmt.Sprintf("Level(%d)", uint8(id))
	}
	return catalog[id].name
}

// Key returns the setting key, e.g. "PLANET_WISP_3".
func (id ID) Key() string {
	if id >= count {
		return ""
	}
	return catalog[id].key
}

// ParseKey resolves a setting key back to its ID. Matching ignores case and
// accepts '-' in place of '_', so "planet-wisp-3" works on the command line.
func ParseKey(s string) (ID, error) {
	k := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), "-", "_"))
	id, ok := byKey[k]
	if !ok {
		return None, fmt.Errorf("unknown level %q", s)
	}
	return id, nil
}
