package parameter

import "time"

// Scene world and viewer
const (
	// ScreenWidth and ScreenHeight are the 2D world extents every planar scene draws into
	ScreenWidth  = 1600.0
	ScreenHeight = 800.0

	// FrameInterval is the viewer update cadence
	FrameInterval = 16 * time.Millisecond

	// MaxFrameDelta clamps dt after stalls so physics does not spiral
	MaxFrameDelta = 0.1

	// Autorepeat covering hold windows; terminals report no key release
	InputInitialHold = 550 * time.Millisecond
	InputRepeatHold  = 120 * time.Millisecond
)

// 3D cameras
const (
	CameraFovY   = 60.0
	CameraAspect = 2.0
	CameraNear   = 0.1
	CameraFar    = 100.0

	CameraMoveSpeed = 5.0
	CameraTurnRate  = 60.0
	CameraMaxPitch  = 89.9
)

// Shared 2D pointer/handle drawing
const (
	HandleMoveSpeed = 200.0

	PointRadius        = 3.0
	NearestPointRadius = 6.0
	LineThickness      = 3.0

	ArrowSize         = 25.0
	ArrowThickness    = 3.0
	NormalArrowLength = 100.0
)

// Raycast vs discs, segments and boxes
const (
	RaycastDiscCount    = 12
	RaycastSegmentCount = 20
	RaycastAABBCount    = 8

	RaycastDiscRadiusMinScale = 0.01
	RaycastDiscRadiusMaxScale = 0.25

	// Segment lengths and box sizes as fractions of screen height
	RaycastSegmentLengthMin = 0.05
	RaycastSegmentLengthMax = 0.3
	RaycastBoxSizeMin       = 0.03
	RaycastBoxSizeMax       = 0.2

	RaycastStartX = 100.0
	RaycastStartY = 100.0
	RaycastEndX   = 1500.0
	RaycastEndY   = 700.0
)

// Nearest point shape sizes, as fractions of screen height unless noted
const (
	NearestDiscRadiusMin     = 0.05
	NearestDiscRadiusMax     = 0.1
	NearestTriangleRadiusMin = 0.1
	NearestTriangleRadiusMax = 0.15
	NearestCapsuleHalfMin    = 0.05
	NearestCapsuleHalfMax    = 0.1
	NearestCapsuleRadiusMin  = 0.02
	NearestCapsuleRadiusMax  = 0.06
	NearestSegmentHalfMin    = 0.05
	NearestSegmentHalfMax    = 0.15

	// Box centers and sizes are fractions of each screen dimension
	NearestBoxCenterMin = 0.1
	NearestBoxCenterMax = 0.9
	NearestBoxSizeMin   = 0.03
	NearestBoxSizeMax   = 0.1

	NearestLineAnchorMin = 0.3
	NearestLineAnchorMax = 0.7
	NearestLineHalfSpan  = 3000.0
)

// Shapes 3D
const (
	Shapes3DSceneSize       = 5.0
	Shapes3DCountPerKind    = 2
	Shapes3DSphereRadiusMin = 0.5
	Shapes3DSphereRadiusMax = 1.0
	Shapes3DBoxHalfMin      = 0.25
	Shapes3DBoxHalfMax      = 0.5
	Shapes3DCylRadiusMin    = 0.5
	Shapes3DCylRadiusMax    = 1.0
	Shapes3DCylHalfMin      = 0.5
	Shapes3DCylHalfMax      = 1.0
	Shapes3DPlaneDistMax    = 5.0

	Shapes3DRayLength      = 5.0
	Shapes3DPointRadius    = 0.05
	Shapes3DNormalLength   = 0.5
	Shapes3DArrowHead      = 0.1
	Shapes3DArrowThickness = 0.02
	Shapes3DPlaneMarker    = 0.06
	Shapes3DRotateStep     = 10.0
	Shapes3DDimAlpha       = 96
	Shapes3DSphereSlices   = 16
	Shapes3DSphereStacks   = 8
	Shapes3DCylinderSides  = 16

	Shapes3DPlayerX   = 2.0
	Shapes3DPlayerY   = 2.0
	Shapes3DPlayerZ   = 2.0
	Shapes3DPlayerYaw = -135.0
)

// Curves 2D
const (
	CurvesTitleFraction = 0.05
	CurvesPadding       = 15.0

	CurvesSplinePointsMin = 3
	CurvesSplinePointsMax = 6

	// CurvesTimeScale is the input key advance per second along the spline
	CurvesTimeScale = 0.5

	CurvesPointRadius   = 4.0
	CurvesLineWidth     = 2.5
	CurvesTangentSize   = 10.0
	CurvesTangentWidth  = 2.0
	CurvesTangentLength = 0.25
)

// Curves 3D
const (
	Curves3DBoxSizeX = 20.0
	Curves3DBoxSizeY = 5.0
	Curves3DBoxSizeZ = 10.0

	Curves3DPointsMin = 5
	Curves3DPointsMax = 10

	Curves3DPitchLimit = 85.0
	Curves3DScaleMin   = 0.5
	Curves3DScaleMax   = 2.5

	Curves3DFrequency    = 0.5
	Curves3DSubdivisions = 10
	Curves3DStripWidth   = 0.1
	Curves3DPointRadius  = 0.15
	Curves3DModelHalf    = 0.3

	Curves3DPlayerX     = -8.0
	Curves3DPlayerY     = 2.5
	Curves3DPlayerZ     = 6.0
	Curves3DPlayerPitch = 15.0
)

// Quaternion 3D
const (
	QuatKeyCount    = 10
	QuatTimeScale   = 0.4
	QuatModelStride = 1.8
	QuatAxisRadius  = 0.02
	QuatAxisLength  = 0.7
	QuatBoxHalf     = 0.07

	// Viewpoint facing the row of models from -Y
	QuatPlayerX     = 5.4
	QuatPlayerY     = -6.0
	QuatPlayerZ     = 2.0
	QuatPlayerYaw   = 90.0
	QuatPlayerPitch = 10.0
)

// Flow field and exposure markers
const (
	FlowActorRadiusScale = 0.25
	FlowArrowSizeScale   = 0.3
	FlowArrowWidthScale  = 0.1
	FlowGridLineScale    = 0.05

	ExposureSentinelRadius = 8.0
)

// Voxel raycast handles
const (
	VoxelStartX = 400.0
	VoxelStartY = 300.0
	VoxelEndX   = 1200.0
	VoxelEndY   = 500.0
)

// Pachinko input
const (
	PachinkoSlowFactor   = 0.05
	PachinkoBumperAlpha  = 128
	PachinkoZoomSpeed    = 1.0
	PachinkoZoomMin      = 0.25
	PachinkoZoomMax      = 4.0
	PachinkoLaunchStartX = 100.0
	PachinkoLaunchStartY = 700.0
	PachinkoLaunchEndX   = 200.0
	PachinkoLaunchEndY   = 750.0
)
