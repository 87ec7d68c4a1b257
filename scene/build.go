package scene

import (
	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/geomlab/config"
	"github.com/lixenwraith/geomlab/vmath"
)

// sceneRand derives a per-scene generator so each scene's sequence is independent of registration order
func sceneRand(seed uint64, name string) *vmath.Rand {
	return vmath.NewRand(seed ^ xxhash.Sum64String(name))
}

// Build constructs every scene in display order
func Build(cfg *config.Config, log *zap.Logger, seed uint64) ([]Scene, error) {
	named := func(name string) (*zap.Logger, *vmath.Rand) {
		return log.Named(name), sceneRand(seed, name)
	}

	l, r := named("FlowField2D")
	flow, err := NewFlowField2D(l, r, cfg.FlowField)
	if err != nil {
		return nil, err
	}
	l, r = named("ExposureAvoidance2D")
	exposure, err := NewExposureAvoidance2D(l, r, cfg.Exposure)
	if err != nil {
		return nil, err
	}
	l, r = named("FastVoxelRaycast2D")
	voxel, err := NewFastVoxelRaycast2D(l, r, cfg.Voxel)
	if err != nil {
		return nil, err
	}

	scenes := []Scene{NewNearestPoint2D(named("NearestPoint2D"))}
	l, r = named("Raycast2D")
	scenes = append(scenes, NewRaycast2D(l, r, cfg.Raycast))
	scenes = append(scenes, NewShapes3D(named("TestShapes3D")))
	l, r = named("Curves2D")
	scenes = append(scenes, NewCurves2D(l, r, cfg.Curves))
	scenes = append(scenes,
		NewCurves3D(named("Curves3D")),
		NewQuaternion3D(named("Quaternion3D")),
		flow,
		exposure,
		voxel,
	)
	l, r = named("Pachinko2D")
	scenes = append(scenes, NewPachinko2D(l, r, cfg.Pachinko))
	return scenes, nil
}
