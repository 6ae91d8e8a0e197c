// Command rtshot renders one ray traced frame to a PNG file.
package main

import (
	"flag"
	"fmt"
	"os"

	"rayvga/internal/buildinfo"
	"rayvga/tracer"
)

func main() {
	var (
		outPath = flag.String("out", "", "Output PNG file.")
		quality = flag.Int("quality", 3, "Quality preset: 1 low, 2 medium, 3 high.")
		width   = flag.Int("w", 320, "Image width.")
		height  = flag.Int("h", 200, "Image height.")
		scale   = flag.Int("scale", 1, "Integer upscale factor (nearest neighbour).")
		caption = flag.String("caption", "", "Caption drawn in the bottom left corner; \"auto\" describes the shot.")
		x       = flag.Float64("x", 0, "Camera X.")
		y       = flag.Float64("y", 0.5, "Camera Y.")
		z       = flag.Float64("z", -3, "Camera Z.")
		yaw     = flag.Float64("yaw", 0, "Camera yaw in radians.")
		pitch   = flag.Float64("pitch", 0, "Camera pitch in radians.")
	)
	flag.Parse()

	if *outPath == "" {
		fatalf("usage: rtshot -out shot.png [-quality 1|2|3] [-w 320 -h 200] [-scale 2] [-x 0 -y 0.5 -z -3 -yaw 0 -pitch 0] [-caption text]")
	}
	q, ok := tracer.QualityPreset(*quality)
	if !ok {
		fatalf("unknown quality preset: %d", *quality)
	}

	cam := tracer.DefaultCamera()
	cam.Position = tracer.V3(float32(*x), float32(*y), float32(*z))
	cam.Turn(float32(*yaw))
	cam.Look(float32(*pitch))

	opts := shotOptions{
		Camera:  cam,
		Quality: q,
		Width:   *width,
		Height:  *height,
		Scale:   *scale,
		Caption: *caption,
	}
	if opts.Caption == "auto" {
		opts.Caption = autoCaption(opts, *quality)
	}
	st, err := writeShot(*outPath, opts)
	if err != nil {
		fatalf("rtshot: %v", err)
	}
	fmt.Printf("rtshot %s: %s %dx%d, %d rays (%d primary, %d reflection, %d shadow)\n",
		buildinfo.Short(), *outPath, opts.Width*opts.scale(), opts.Height*opts.scale(),
		st.Total(), st.PrimaryRays, st.ReflectionRays, st.ShadowRays)
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}
