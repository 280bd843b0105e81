// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade.
package config

// SnakeConfig contains all tunables of a snake variant.
type SnakeConfig struct {
	Playfield    Playfield       `yaml:"playfield"`
	Snake        SnakeRules      `yaml:"snake"`
	Speed        SpeedRules      `yaml:"speed"`
	Scoring      Scoring         `yaml:"scoring"`
	Collectibles Collectibles    `yaml:"collectibles"`
	Obstacles    []ObstacleSpawn `yaml:"obstacles"`
	Rules        Rules           `yaml:"rules"`
}

// Playfield defines the board size in pixels.
type Playfield struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	CellSize int `yaml:"cell_size"`
}

// SnakeRules defines body length parameters.
type SnakeRules struct {
	InitialLength    int `yaml:"initial_length"`
	ShrinkOnObstacle int `yaml:"shrink_on_obstacle"`
}

// SpeedRules defines the tick rate and how events change it.
type SpeedRules struct {
	Initial int `yaml:"initial"` // Ticks per second at session start
	Step    int `yaml:"step"`    // Change per speed event
	Min     int `yaml:"min"`     // Floor applied when slowing down
	Max     int `yaml:"max"`     // Ceiling; 0 means unbounded
}

// Scoring defines point values and bonus bookkeeping.
type Scoring struct {
	Orange          int `yaml:"orange"`
	Red             int `yaml:"red"`
	Green           int `yaml:"green"`
	ObstaclePenalty int `yaml:"obstacle_penalty"`
	BonusEvery      int `yaml:"bonus_every"`   // Eaten count per bonus level
	SpecialBonus    int `yaml:"special_bonus"` // Eaten count credited by the special cat
}

// Collectibles defines cat spawning.
type Collectibles struct {
	Categories      []string `yaml:"categories"` // Regular categories drawn on spawn
	Initial         int      `yaml:"initial"`
	Max             int      `yaml:"max"`
	SpawnEverySpeed int      `yaml:"spawn_every_speed"` // Extra cat when speed hits a multiple; 0 disables
	Special         int      `yaml:"special"`           // Number of black-and-white cats
	Recolor         bool     `yaml:"recolor"`           // Redraw category on relocation
}

// ObstacleSpawn defines one kind of roaming obstacle.
type ObstacleSpawn struct {
	Kind      string `yaml:"kind"`       // "badger" or "honey_badger"
	Count     int    `yaml:"count"`
	MoveEvery int    `yaml:"move_every"` // Frames between moves
}

// Rules holds game-design toggles.
type Rules struct {
	RespawnAllOnEvent      bool `yaml:"respawn_all_on_event"`
	RandomDirectionOnReset bool `yaml:"random_direction_on_reset"`
}

// Category names accepted in Collectibles.Categories.
const (
	CategoryOrange = "orange"
	CategoryRed    = "red"
	CategoryGreen  = "green"
)

// Obstacle kinds accepted in ObstacleSpawn.Kind.
const (
	KindBadger      = "badger"
	KindHoneyBadger = "honey_badger"
)

// PointsFor returns the point value of a regular category.
func (s Scoring) PointsFor(category string) int {
	switch category {
	case CategoryOrange:
		return s.Orange
	case CategoryRed:
		return s.Red
	case CategoryGreen:
		return s.Green
	default:
		return 0
	}
}
