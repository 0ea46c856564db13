package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	gjk "github.com/RayzRazko/GJK"
)

func main() {
	scenePath := flag.String("scene", "scene.yaml", "path to the YAML scene file")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	logger := newLogger(*debug)
	defer func() { _ = logger.Sync() }()

	if err := run(*scenePath, logger); err != nil {
		logger.Fatal("scene check failed", zap.Error(err))
	}
}

func newLogger(debug bool) *zap.Logger {
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if debug {
		level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	config := zap.Config{
		Level:            level,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}

	logger, err := config.Build()
	if err != nil {
		panic(err)
	}
	return logger
}

func run(scenePath string, logger *zap.Logger) error {
	f, err := os.Open(scenePath)
	if err != nil {
		return fmt.Errorf("open scene: %w", err)
	}
	defer f.Close()

	scene, err := LoadScene(f)
	if err != nil {
		return err
	}

	params := scene.Params()
	logger.Debug("scene loaded",
		zap.Int("polygons", len(scene.Polygons)),
		zap.Float64("tolerance", params.Tolerance),
		zap.Int("max_iterations", params.MaxIterations),
	)

	shapes := make([]*gjk.PolygonShape, len(scene.Polygons))
	for i, pc := range scene.Polygons {
		shapes[i] = pc.Build()
	}

	for i := 0; i < len(shapes); i++ {
		for j := i + 1; j < len(shapes); j++ {
			output := gjk.MakeDistanceOutput()
			gjk.DistanceConvexPolygons(&output, shapes[i], shapes[j], params)

			logger.Info("pair",
				zap.String("a", scene.Polygons[i].Name),
				zap.String("b", scene.Polygons[j].Name),
				zap.String("state", output.State.String()),
				zap.Float64("distance", output.Distance),
				zap.Int("iterations", output.Iterations),
			)
		}
	}

	return nil
}
