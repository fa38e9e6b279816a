// Command meshslicer is a thin CLI demonstrating the engine's
// operations end to end: load -> repair -> slice/split/merge/footprint
// -> write. It exists to exercise github.com/fulgurant/stl and
// github.com/spf13/cobra concretely, not as a production slicing tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sliceengine/sliceengine/edgeindex"
	"github.com/sliceengine/sliceengine/loopbuilder"
	"github.com/sliceengine/sliceengine/mesh"
	"github.com/sliceengine/sliceengine/meshio"
	"github.com/sliceengine/sliceengine/projection"
	"github.com/sliceengine/sliceengine/repair"
	"github.com/sliceengine/sliceengine/slicer"
	"github.com/sliceengine/sliceengine/toposplit"
	"github.com/sliceengine/sliceengine/transform"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "meshslicer",
		Short: "Plane-sweep triangle mesh slicer",
	}
	root.AddCommand(newSliceCmd(), newSplitCmd(), newMergeCmd(), newFootprintCmd())
	return root
}

func newSliceCmd() *cobra.Command {
	var layerHeight float64
	var scalingFactor float64

	cmd := &cobra.Command{
		Use:   "slice <input.stl>",
		Short: "Slice a mesh at evenly spaced Z planes and print loop counts per layer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := loadAndRepair(args[0])
			if err != nil {
				return err
			}

			idx, err := edgeindex.Build(store)
			if err != nil {
				return fmt.Errorf("slice: %w", err)
			}

			zs := evenlySpacedPlanes(store, layerHeight)
			buckets, err := slicer.Slice(store, idx, zs, slicer.WithScalingFactor(scalingFactor))
			if err != nil {
				return fmt.Errorf("slice: %w", err)
			}

			for i, segs := range buckets {
				loops := loopbuilder.Build(segs)
				fmt.Fprintf(cmd.OutOrStdout(), "z=%.4f segments=%d loops=%d\n", zs[i], len(segs), len(loops))
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&layerHeight, "layer-height", 0.2, "spacing between cutting planes, in mesh units")
	cmd.Flags().Float64Var(&scalingFactor, "scaling-factor", slicer.DefaultScalingFactor, "mesh units per scaled integer grid unit")
	return cmd
}

func newSplitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "split <input.stl> <output-prefix>",
		Short: "Split a mesh into its connected components and write one STL per component",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := loadAndRepair(args[0])
			if err != nil {
				return err
			}

			parts, err := toposplit.Split(store)
			if err != nil {
				return fmt.Errorf("split: %w", err)
			}

			for i, part := range parts {
				path := fmt.Sprintf("%s.%d.stl", args[1], i)
				if err := meshio.SaveSTL(path, part); err != nil {
					return fmt.Errorf("split: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d facets)\n", path, part.FacetCount())
			}
			return nil
		},
	}
	return cmd
}

func newMergeCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "merge <input1.stl> <input2.stl> [more...]",
		Short: "Append-merge several meshes into one unrepaired STL",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := meshio.LoadSTL(args[0])
			if err != nil {
				return fmt.Errorf("merge: %w", err)
			}

			for _, path := range args[1:] {
				other, err := meshio.LoadSTL(path)
				if err != nil {
					return fmt.Errorf("merge: %w", err)
				}
				base.Merge(other)
			}

			if err := meshio.SaveSTL(output, base); err != nil {
				return fmt.Errorf("merge: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d facets, unrepaired)\n", output, base.FacetCount())
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "merged.stl", "output STL path")
	return cmd
}

func newFootprintCmd() *cobra.Command {
	var scalingFactor float64

	cmd := &cobra.Command{
		Use:   "footprint <input.stl>",
		Short: "Align a mesh to the origin and print its horizontal footprint polygon count",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := loadAndRepair(args[0])
			if err != nil {
				return err
			}
			transform.AlignToOrigin(store)

			polys, err := projection.Horizontal(store, scalingFactor)
			if err != nil {
				return fmt.Errorf("footprint: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "footprint polygons=%d\n", len(polys))
			for i, p := range polys {
				fmt.Fprintf(cmd.OutOrStdout(), "  polygon %d: %d vertices\n", i, len(p))
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&scalingFactor, "scaling-factor", slicer.DefaultScalingFactor, "mesh units per scaled integer grid unit")
	return cmd
}

func loadAndRepair(path string) (*mesh.Store, error) {
	store, err := meshio.LoadSTL(path)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	if err := repair.EnsureRepaired(store, repair.NeighbourRepair{}); err != nil {
		return nil, fmt.Errorf("repair: %w", err)
	}
	return store, nil
}

// evenlySpacedPlanes lays out cutting planes from the mesh's bounding
// box minimum to its maximum, layerHeight apart (at least one plane).
func evenlySpacedPlanes(store *mesh.Store, layerHeight float64) []float64 {
	bb := store.BoundingBox()
	zmin, zmax := bb.Min.Z(), bb.Max.Z()

	var zs []float64
	for z := zmin; z <= zmax; z += layerHeight {
		zs = append(zs, z)
	}
	if len(zs) == 0 {
		zs = append(zs, zmin)
	}
	return zs
}
