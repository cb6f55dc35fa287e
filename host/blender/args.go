package blender

import "strconv"

// Marshal a render job into the CLI invocation for the worker script. Worker
// flags follow "--" so Blender's own argument parser ignores them. Pure
// function, kept separate from the exec plumbing so it can be tested without
// a Blender install.
func marshalArgs(j job, script, imagePath, metaPath string) []string {
	args := []string{
		"-b",
		"--python", script,
		"--",
		"-out", imagePath,
		"-meta", metaPath,
		"-m", j.modelPath,
		"-loc", ftoa(j.pose.Position[0]), ftoa(j.pose.Position[1]), ftoa(j.pose.Position[2]),
		"-phi", ftoa(j.pose.Phi),
		"-tta", ftoa(j.pose.Theta),
		"-le", ftoa(j.intrinsics.Lens),
		"-sw", ftoa(j.intrinsics.SensorWidth),
		"-sh", ftoa(j.intrinsics.SensorHeight),
		"-fovx", ftoa(j.intrinsics.FOVX),
		"-fovy", ftoa(j.intrinsics.FOVY),
		"-lt", j.rig.Kind.String(),
		"-en", ftoa(j.rig.Energy),
		"-col", ftoa(j.rig.Color[0]), ftoa(j.rig.Color[1]), ftoa(j.rig.Color[2]),
		"-re", j.spec.Engine,
		"-rx", strconv.Itoa(j.spec.ResolutionX),
		"-ry", strconv.Itoa(j.spec.ResolutionY),
	}

	if j.spec.UseShadow {
		args = append(args, "-s")
	}
	if j.spec.FilmTransparent {
		args = append(args, "-ft")
	}
	if j.spec.WantDepth {
		args = append(args, "-d")
	}

	return args
}

func ftoa(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}
