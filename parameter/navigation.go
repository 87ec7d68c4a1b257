package parameter

// Navigation - Flow Field
const (
	// NavFlowMinTicksBetweenCompute is minimum update ticks between throttled flow field recomputation
	NavFlowMinTicksBetweenCompute = 3

	NavFlowGridWidth        = 50
	NavFlowGridHeight       = 25
	NavFlowCellSize         = 28.0
	NavFlowOriginX          = 100.0
	NavFlowOriginY          = 50.0
	NavFlowSolidProbability = 0.1

	NavFlowActorCount    = 200
	NavFlowActorSpeedMin = 50.0
	NavFlowActorSpeedMax = 80.0

	// Start and end marker radii as a fraction of the cell size
	NavFlowStartRadiusScale = 0.45
	NavFlowEndRadiusScale   = 0.35
)

// Navigation - Exposure
const (
	NavExposureGridWidth        = 50
	NavExposureGridHeight       = 25
	NavExposureCellSize         = 28.0
	NavExposureOriginX          = 100.0
	NavExposureOriginY          = 50.0
	NavExposureSolidProbability = 0.1

	// NavExposureClickRadius is the pick radius for removing a sentinel
	NavExposureClickRadius = 8.0
	NavExposureSightRange  = 250.0
)

// Navigation - Voxel raycast
const (
	NavVoxelGridWidth        = 30
	NavVoxelGridHeight       = 20
	NavVoxelCellSize         = 30.0
	NavVoxelOriginX          = 100.0
	NavVoxelOriginY          = 100.0
	NavVoxelSolidProbability = 0.3
)
