package sim

import (
	"image/color"
	"math"
)

// Base resolution that every scaled constant is tuned against.
const (
	BaseWidth  = 800
	BaseHeight = 600
)

// Timing
const (
	AvatarRate = 120 // avatar steps per second
	WorldRate  = 20  // world ticks per second
)

// Population budget defaults
const (
	InitialMaxObjects    = 2000
	ObjectBuffer         = 20
	InitialParticleCount = 20
)

// Circle constants (unscaled pixels)
const (
	MinRadius       = 20.0
	MaxRadius       = 50.0
	MaxSpawnRadius  = 75
	MinCircleSpeed  = 40.0
	MaxCircleSpeed  = 200.0
	MinSplitRadius  = 10.0
	SplitAreaKeep   = 0.8
	MinSplitCount   = 2
	MaxSplitCount   = 6
	SplitDistance   = 0.7
	SplitSpeedScale = 1.2
	CenterBias      = 0.5
	OffscreenMargin = 50.0
)

// Spawner timing, measured in world ticks
const (
	InitialSpawnDelay = 15.0
	MinSpawnDelay     = 8.0
	SpawnDelayStep    = 0.1
)

// Particle constants
const (
	ParticleCloudRadius      = 100.0
	ParticleCloudLifetime    = 30.0
	SuppressedBurst          = 2
	PersistentLifetime       = 30.0
	ParticleLifetime         = 1.0
	ParticleShrinkTime       = 0.5
	ParticleFriction         = 0.96
	PersistentChance         = 0.02
	DeathPersistentChance    = 0.05
	ParticleBaseSpeed        = 150.0
	ParticleMinSpeed         = 100.0
	ParticleMaxSpeed         = 500.0
	ParticleMinSize          = 8.0
	ParticleSizeRange        = 16.0
	MaxParticleSourceRadius  = 75.0
	DeathBurstCap            = 50
	DeathParticleMinSpeed    = 5.0
	DeathParticleMaxSpeed    = 15.0
	DeathParticleSize        = 24.0
	DeathExplosionRadius     = 200.0
	DeathExplosionStrength   = 10.0
	DeathShake               = 10.0
	ExplosionLifetime        = 0.5
	DefaultExplosionScale    = 5.0
	ExplosionStrengthDivisor = 10.0
)

// Explosion force factors
const (
	AvatarPushRadiusScale = 1.5
	AvatarPushFactor      = 15.0
	AvatarDirectFactor    = 3.0
	AvatarShakeFactor     = 0.5
)

// Avatar constants
const (
	AvatarSize       = 25.0
	AvatarAccel      = 6000.0
	AvatarFriction   = 0.95
	AvatarStopSpeed  = 0.1
	TurnExponent     = 0.4
	ShakeDecay       = 0.8
	ShakeSnap        = 0.1
	MaxShake         = 10.0
	DeathDuration    = 1.0
	DeathShakeFactor = 5.0
	PushEffectSteps  = 10
)

// Weapon constants
const (
	ProjectileSpeed       = 900.0
	ProjectileSize        = 3.0
	ProjectileHitBonus    = 5.0
	HomingRange           = 200.0
	AutoHoming            = 0.001
	SingleHoming          = 1.0
	SingleSizeMultiplier  = 5.0
	AutoMaxSizeMultiplier = 2.0
	BaseFireDelay         = 6.0
	MinFireDelay          = 2.0
	RampUpTime            = 1.0
	RapidClickThreshold   = 0.5
	VolleySpread          = 0.2
	PerpendicularDamping  = 0.4
	VelocityInheritance   = 0.3
	ScreenShakeDuration   = 3
)

// Starfield constants
const (
	StarCount      = 100
	StarMinSize    = 0.5
	StarMaxSize    = 2.0
	StarSpeed      = 50.0
	StarMinTwinkle = 1.0
	StarMaxTwinkle = 3.0
)

// Upgrade thresholds in kills: index i is the level reached at that count.
var UpgradeThresholds = []int{0, 25, 125}

// ProjectileCounts gives the volley size for each upgrade level.
var ProjectileCounts = []int{1, 3, 5}

var (
	ColorSingleShot = color.NRGBA{R: 0, G: 255, B: 255, A: 255}
	ColorAutoShot   = color.NRGBA{R: 255, G: 255, B: 0, A: 255}
	ColorAvatar     = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// WarmColors are the circle palette.
var WarmColors = []color.NRGBA{
	{R: 255, G: 50, B: 50, A: 255},
	{R: 255, G: 140, B: 0, A: 255},
	{R: 255, G: 215, B: 0, A: 255},
	{R: 255, G: 105, B: 180, A: 255},
}

// StarColors are the starfield palette.
var StarColors = []color.NRGBA{
	{R: 255, G: 255, B: 255, A: 255},
	{R: 200, G: 200, B: 255, A: 255},
	{R: 255, G: 255, B: 200, A: 255},
	{R: 200, G: 255, B: 255, A: 255},
}

const twoPi = 2 * math.Pi
