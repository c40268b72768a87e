// sculpttool builds GPU-ready triangle meshes from declarative scene files.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Faultbox/meshsculpt/internal/config"
	"github.com/Faultbox/meshsculpt/internal/logger"
	"github.com/Faultbox/meshsculpt/internal/pipeline"
)

var flagOut = flag.String("o", "", "Output OBJ path (default: scene name with .obj)")

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	// Strip the subcommand so the shared flag set sees only its own args.
	os.Args = append(os.Args[:1], os.Args[2:]...)
	config.ParseFlags()

	switch command {
	case "build":
		cmdBuild(flag.Args())
	case "inspect":
		cmdInspect(flag.Args())
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`sculpttool - build triangle meshes from scene descriptions

Usage:
  sculpttool <command> [options] <scene.yaml>

Commands:
  build <scene.yaml>    Build the scene and export a Wavefront OBJ file
  inspect <scene.yaml>  Build the scene and print mesh statistics

Options:
  -o path               Output OBJ path (build)
  -config path          Config file path
  -debug                Enable debug logging
  -group                Batch meshes into vertex-budgeted draw groups
  -group-budget n       Vertex budget per draw group
  -output-dir dir       Directory for exported meshes

Examples:
  sculpttool build town.yaml
  sculpttool build -o meshes/town.obj town.yaml
  sculpttool inspect -group -group-budget 4096 town.yaml`)
}

func setup(args []string) (*config.Config, []pipeline.BuiltMesh, string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: sculpttool <command> [options] <scene.yaml>")
		os.Exit(1)
	}
	scenePath := args[0]

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	scene, err := pipeline.LoadScene(scenePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	built, err := pipeline.Build(scene)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg, built, scenePath
}

func cmdBuild(args []string) {
	cfg, built, scenePath := setup(args)
	defer logger.Sync()

	outPath := *flagOut
	if outPath == "" {
		base := strings.TrimSuffix(filepath.Base(scenePath), filepath.Ext(scenePath))
		outPath = filepath.Join(cfg.Export.OutputDir, base+".obj")
	}

	toExport := built
	if cfg.Grouping.Enabled {
		changes, stats, err := pipeline.GroupMeshes(built, cfg.Grouping.MaxVerticesPerGroup)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		toExport = make([]pipeline.BuiltMesh, 0, len(changes))
		for _, change := range changes {
			toExport = append(toExport, pipeline.BuiltMesh{
				Name: fmt.Sprintf("group_%d", change.GroupID),
				Mesh: change.Mesh,
			})
		}
		fmt.Printf("Grouped %d meshes (%d vertices) into %d groups\n",
			stats.Meshes, stats.TotalVertices, stats.Groups)
	}

	if err := pipeline.ExportOBJ(outPath, toExport, cfg.Export.Precision); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s (%d objects)\n", outPath, len(toExport))
}

func cmdInspect(args []string) {
	cfg, built, _ := setup(args)
	defer logger.Sync()

	var totalVertices, totalTriangles int
	fmt.Printf("%-24s %10s %10s\n", "NAME", "VERTICES", "TRIANGLES")
	for _, entry := range built {
		fmt.Printf("%-24s %10d %10d\n",
			entry.Name, len(entry.Mesh.Vertices), entry.Mesh.TriangleCount())
		totalVertices += len(entry.Mesh.Vertices)
		totalTriangles += entry.Mesh.TriangleCount()
	}
	fmt.Printf("%-24s %10d %10d\n", "TOTAL", totalVertices, totalTriangles)

	if cfg.Grouping.Enabled {
		_, stats, err := pipeline.GroupMeshes(built, cfg.Grouping.MaxVerticesPerGroup)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\nDraw groups at %d-vertex budget: %d\n",
			cfg.Grouping.MaxVerticesPerGroup, stats.Groups)
	}
}
