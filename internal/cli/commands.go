package cli

import (
	"github.com/spf13/cobra"

	"adsnap/internal/services"
)

func (r *runner) generateCmd() *cobra.Command {
	var req services.GenerateImageRequest
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate images from a text prompt",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, key, err := r.service()
			if err != nil {
				return err
			}
			req.APIKey = key
			res, err := svc.GenerateImage(cmd.Context(), req)
			if err != nil {
				return err
			}
			return r.emit(cmd, res.Data, res.Message)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&req.Prompt, "prompt", "p", "", "text prompt")
	f.IntVarP(&req.NumResults, "num-results", "n", 1, "number of images (1-4)")
	f.StringVar(&req.AspectRatio, "aspect-ratio", services.DefaultAspectRatio, "aspect ratio, e.g. 1:1 or 16:9")
	f.StringVar(&req.Medium, "medium", services.DefaultMedium, "photography or art")
	f.BoolVar(&req.EnhanceImage, "enhance-image", true, "let the vendor refine image detail")
	return cmd
}

func (r *runner) enhanceCmd() *cobra.Command {
	var req services.EnhancePromptRequest
	cmd := &cobra.Command{
		Use:   "enhance",
		Short: "Rewrite a prompt for better generation results",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, key, err := r.service()
			if err != nil {
				return err
			}
			req.APIKey = key
			res, err := svc.EnhancePrompt(cmd.Context(), req)
			if err != nil {
				return err
			}
			return r.write(cmd, output{
				Status:   "success",
				Original: res.Data.Original,
				Enhanced: res.Data.Enhanced,
				Message:  res.Message,
			}, res.Data.Raw)
		},
	}
	cmd.Flags().StringVarP(&req.Prompt, "prompt", "p", "", "prompt to enhance")
	return cmd
}

func (r *runner) lifestyleTextCmd() *cobra.Command {
	var (
		req   services.LifestyleTextRequest
		image string
	)
	cmd := &cobra.Command{
		Use:   "lifestyle-text",
		Short: "Place a product in a scene described by text",
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if req.Image, err = readImage(image); err != nil {
				return err
			}
			svc, key, err := r.service()
			if err != nil {
				return err
			}
			req.APIKey = key
			res, err := svc.LifestyleShotByText(cmd.Context(), req)
			if err != nil {
				return err
			}
			return r.emit(cmd, res.Data, res.Message)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&image, "image", "i", "", "product image file")
	f.StringVarP(&req.SceneDescription, "scene", "s", "", "scene description")
	f.StringVar(&req.PlacementType, "placement", services.DefaultPlacementType, "original, automatic or manual_placement")
	f.IntVarP(&req.NumResults, "num-results", "n", services.DefaultLifestyleCount, "number of shots (1-8)")
	f.BoolVar(&req.Sync, "sync", false, "wait for the rendered images")
	f.BoolVar(&req.Fast, "fast", true, "use the fast generation mode")
	return cmd
}

func (r *runner) lifestyleImageCmd() *cobra.Command {
	var (
		req              services.LifestyleImageRequest
		image, reference string
	)
	cmd := &cobra.Command{
		Use:   "lifestyle-image",
		Short: "Place a product in a scene taken from a reference image",
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if req.Image, err = readImage(image); err != nil {
				return err
			}
			if req.ReferenceImage, err = readImage(reference); err != nil {
				return err
			}
			svc, key, err := r.service()
			if err != nil {
				return err
			}
			req.APIKey = key
			res, err := svc.LifestyleShotByImage(cmd.Context(), req)
			if err != nil {
				return err
			}
			return r.emit(cmd, res.Data, res.Message)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&image, "image", "i", "", "product image file")
	f.StringVarP(&reference, "reference", "r", "", "reference scene image file")
	f.StringVar(&req.PlacementType, "placement", services.DefaultPlacementType, "original, automatic or manual_placement")
	f.IntVarP(&req.NumResults, "num-results", "n", services.DefaultLifestyleCount, "number of shots (1-8)")
	f.BoolVar(&req.Sync, "sync", false, "wait for the rendered images")
	return cmd
}

func (r *runner) fillCmd() *cobra.Command {
	var (
		req         services.GenerativeFillRequest
		image, mask string
	)
	cmd := &cobra.Command{
		Use:   "fill",
		Short: "Paint new content into a masked region",
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if req.Image, err = readImage(image); err != nil {
				return err
			}
			if req.Mask, err = readImage(mask); err != nil {
				return err
			}
			svc, key, err := r.service()
			if err != nil {
				return err
			}
			req.APIKey = key
			res, err := svc.GenerativeFill(cmd.Context(), req)
			if err != nil {
				return err
			}
			return r.emit(cmd, res.Data, res.Message)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&image, "image", "i", "", "source image file")
	f.StringVarP(&mask, "mask", "m", "", "mask image file; white marks the area to fill")
	f.StringVarP(&req.Prompt, "prompt", "p", "", "what to paint into the mask")
	f.StringVar(&req.NegativePrompt, "negative-prompt", "", "what to avoid")
	f.IntVarP(&req.NumResults, "num-results", "n", 1, "number of variations (1-4)")
	f.BoolVar(&req.Sync, "sync", false, "wait for the rendered images")
	return cmd
}

func (r *runner) eraseCmd() *cobra.Command {
	var (
		req   services.EraseForegroundRequest
		image string
	)
	cmd := &cobra.Command{
		Use:   "erase",
		Short: "Remove the foreground subject and rebuild the background",
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if req.Image, err = readImage(image); err != nil {
				return err
			}
			svc, key, err := r.service()
			if err != nil {
				return err
			}
			req.APIKey = key
			res, err := svc.EraseForeground(cmd.Context(), req)
			if err != nil {
				return err
			}
			return r.emit(cmd, res.Data, res.Message)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&image, "image", "i", "", "source image file")
	f.BoolVar(&req.ContentModeration, "content-moderation", false, "ask the vendor to moderate the input")
	return cmd
}

func (r *runner) shadowCmd() *cobra.Command {
	var (
		req   services.AddShadowRequest
		image string
	)
	cmd := &cobra.Command{
		Use:   "shadow",
		Short: "Add a natural or drop shadow under a product",
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if req.Image, err = readImage(image); err != nil {
				return err
			}
			svc, key, err := r.service()
			if err != nil {
				return err
			}
			req.APIKey = key
			res, err := svc.AddShadow(cmd.Context(), req)
			if err != nil {
				return err
			}
			return r.emit(cmd, res.Data, res.Message)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&image, "image", "i", "", "product image file")
	f.StringVar(&req.ShadowType, "type", services.DefaultShadowType, "natural or drop")
	f.IntVar(&req.ShadowIntensity, "intensity", services.DefaultShadowIntensity, "shadow intensity (0-100)")
	f.StringVar(&req.BackgroundColor, "background-color", "", "hex background color; transparent when unset")
	return cmd
}

func (r *runner) packshotCmd() *cobra.Command {
	var (
		req   services.PackshotRequest
		image string
	)
	cmd := &cobra.Command{
		Use:   "packshot",
		Short: "Place a product on a plain studio background",
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if req.Image, err = readImage(image); err != nil {
				return err
			}
			svc, key, err := r.service()
			if err != nil {
				return err
			}
			req.APIKey = key
			res, err := svc.CreatePackshot(cmd.Context(), req)
			if err != nil {
				return err
			}
			return r.emit(cmd, res.Data, res.Message)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&image, "image", "i", "", "product image file")
	f.StringVar(&req.BackgroundColor, "background-color", services.DefaultPackshotColor, "hex background color")
	f.BoolVar(&req.ForceRMBG, "force-rmbg", false, "force background removal first")
	return cmd
}

func (r *runner) removeBackgroundCmd() *cobra.Command {
	var (
		req   services.RemoveBackgroundRequest
		image string
	)
	cmd := &cobra.Command{
		Use:     "remove-bg",
		Aliases: []string{"remove-background"},
		Short:   "Cut the subject out onto a transparent background",
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if req.Image, err = readImage(image); err != nil {
				return err
			}
			svc, key, err := r.service()
			if err != nil {
				return err
			}
			req.APIKey = key
			res, err := svc.RemoveBackground(cmd.Context(), req)
			if err != nil {
				return err
			}
			return r.emit(cmd, res.Data, res.Message)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&image, "image", "i", "", "source image file")
	f.BoolVar(&req.ContentModeration, "content-moderation", false, "ask the vendor to moderate the input")
	return cmd
}
