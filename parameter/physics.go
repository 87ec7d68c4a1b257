package parameter

// Pachinko world
const (
	PachinkoBallElasticity = 0.9
	PachinkoWallElasticity = 0.9

	// PachinkoElasticityStep is the per-press ball elasticity adjustment
	PachinkoElasticityStep = 0.05

	PachinkoGravityAccel   = 700.0
	PachinkoGravityDegrees = -90.0

	// PachinkoRollTurnRate rotates gravity in degrees per second
	PachinkoRollTurnRate = 45.0

	// PachinkoFixedTimeStep is the fixed physics step in seconds
	PachinkoFixedTimeStep = 0.005

	// PachinkoTimeStepScale divides or multiplies the fixed step per adjustment
	PachinkoTimeStepScale = 1.1

	// PachinkoExtraWrapHeight places the teleport portal above the screen top
	PachinkoExtraWrapHeight = 300.0

	// PachinkoScenePadding shrinks the bumper placement box by this fraction of the screen per side
	PachinkoScenePadding = 0.1
)

// Pachinko launcher and balls
const (
	PachinkoLaunchSpeedScale = 3.0
	PachinkoLauncherSpeed    = 175.0

	PachinkoBallRadiusMin = 5.0
	PachinkoBallRadiusMax = 25.0
)

// Pachinko bumpers
const (
	PachinkoDiscBumperCount     = 10
	PachinkoDiscBumperRadiusMin = 5.0
	PachinkoDiscBumperRadiusMax = 50.0

	PachinkoCapsuleBumperCount         = 10
	PachinkoCapsuleBumperHalfHeightMin = 1.0
	PachinkoCapsuleBumperHalfHeightMax = 75.0
	PachinkoCapsuleBumperRadiusMin     = 5.0
	PachinkoCapsuleBumperRadiusMax     = 50.0

	PachinkoOBBBumperCount        = 10
	PachinkoOBBBumperHalfWidthMin = 5.0
	PachinkoOBBBumperHalfWidthMax = 80.0

	PachinkoBumperElasticityMin = 0.01
	PachinkoBumperElasticityMax = 0.99
)
