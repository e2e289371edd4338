package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"logo-backend/logo/model"
	"logo-backend/logo/raster"
)

func newRenderCmd() *cobra.Command {
	var (
		input     model.LogoInput
		style     string
		imagePath string
		opts      writeOptions
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the four logo variants for one company",
		Example: `  logogen render --name Zenith --tagline "Reach Higher" \
    --industry "technology startup" --primary "#4f46e5" --secondary "#06b6d4" --png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input.Style = model.ParseStyle(style)
			if imagePath != "" {
				uri, err := imageDataURI(imagePath)
				if err != nil {
					return fmt.Errorf("read image: %w", err)
				}
				input.ImageBase64 = uri
			}
			paths, err := writeSet(input, opts)
			if err != nil {
				return err
			}
			for _, p := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&input.CompanyName, "name", "", "company name")
	f.StringVar(&input.Tagline, "tagline", "", "optional tagline")
	f.StringVar(&input.Industry, "industry", "", "free-form industry description")
	f.StringVar(&input.ColorPrimary, "primary", "#4f46e5", "primary color")
	f.StringVar(&input.ColorSecondary, "secondary", "#06b6d4", "secondary color")
	f.StringVar(&style, "style", "", "style preference (recorded only)")
	f.StringVar(&imagePath, "image", "", "image file to embed top-right")
	addWriteFlags(cmd, &opts)
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func addWriteFlags(cmd *cobra.Command, opts *writeOptions) {
	f := cmd.Flags()
	f.StringVarP(&opts.OutDir, "out", "o", "./out", "output directory")
	f.BoolVar(&opts.PNG, "png", false, "also write PNG files")
	f.IntVar(&opts.Size, "size", raster.DefaultSize, "PNG edge length in pixels")
	f.BoolVar(&opts.Namespace, "namespace", false, "suffix gradient and clip ids per variant")
	f.IntVar(&opts.MaxImagePx, "max-image-px", 256, "longest edge of embedded images")
}
