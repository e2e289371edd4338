package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"logo-backend/internal/shared/telemetry"
	"logo-backend/internal/shared/util"
	"logo-backend/logo/model"
)

func newBatchCmd() *cobra.Command {
	var (
		opts        writeOptions
		concurrency int
	)
	cmd := &cobra.Command{
		Use:   "batch <inputs.json>",
		Short: "Render logo sets for every input in a JSON array",
		Long: `Render logo sets for every input in a JSON array.

Each element uses the API request shape (companyName, tagline, industry,
colorPrimary, colorSecondary, style, imageBase64). Each set is written to
its own subdirectory of --out.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := readInputs(args[0])
			if err != nil {
				return err
			}

			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(max(concurrency, 1))

			var mu sync.Mutex
			written := 0
			for i, in := range inputs {
				g.Go(func() error {
					if err := ctx.Err(); err != nil {
						return err
					}
					setOpts := opts
					setOpts.OutDir = filepath.Join(opts.OutDir, batchDir(i, in))
					paths, err := writeSet(in, setOpts)
					if err != nil {
						return fmt.Errorf("input %d: %w", i, err)
					}
					telemetry.Info("logogen.set_written", map[string]any{"index": i, "dir": setOpts.OutDir})
					mu.Lock()
					written += len(paths)
					mu.Unlock()
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d files for %d inputs to %s\n", written, len(inputs), opts.OutDir)
			return nil
		},
	}
	addWriteFlags(cmd, &opts)
	cmd.Flags().IntVarP(&concurrency, "concurrency", "c", 4, "sets rendered in parallel")
	return cmd
}

func readInputs(path string) ([]model.LogoInput, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read inputs: %w", err)
	}
	var inputs []model.LogoInput
	if err := json.Unmarshal(b, &inputs); err != nil {
		return nil, fmt.Errorf("decode inputs: %w", err)
	}
	for i := range inputs {
		inputs[i].Style = model.ParseStyle(string(inputs[i].Style))
	}
	return inputs, nil
}

func batchDir(i int, in model.LogoInput) string {
	stem, err := util.SanitizeFileName(in.CompanyName)
	if err != nil {
		stem = "logo"
	}
	return fmt.Sprintf("%03d-%s", i+1, stem)
}
