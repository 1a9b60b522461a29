package services

// Capability names a single gateway operation.
type Capability string

const (
	CapGenerateImage    Capability = "generate_image"
	CapEnhancePrompt    Capability = "enhance_prompt"
	CapLifestyleText    Capability = "lifestyle_shot_text"
	CapLifestyleImage   Capability = "lifestyle_shot_image"
	CapGenerativeFill   Capability = "generative_fill"
	CapEraseForeground  Capability = "erase_foreground"
	CapAddShadow        Capability = "add_shadow"
	CapCreatePackshot   Capability = "create_packshot"
	CapRemoveBackground Capability = "remove_background"
)

type operation struct {
	capability Capability
	name       string
	endpoint   string
	message    string
}

var (
	opGenerateImage    = operation{CapGenerateImage, "Image generation", "/text-to-image/hd/2.3", "Image generated successfully"}
	opEnhancePrompt    = operation{CapEnhancePrompt, "Prompt enhancement", "/prompt_enhancer", "Prompt enhanced successfully"}
	opLifestyleText    = operation{CapLifestyleText, "Lifestyle shot by text", "/product/lifestyle_shot_by_text", "Lifestyle shot created successfully"}
	opLifestyleImage   = operation{CapLifestyleImage, "Lifestyle shot by image", "/product/lifestyle_shot_by_image", "Lifestyle shot created successfully"}
	opGenerativeFill   = operation{CapGenerativeFill, "Generative fill", "/gen_fill", "Generative fill completed successfully"}
	opEraseForeground  = operation{CapEraseForeground, "Foreground erase", "/erase_foreground", "Elements erased successfully"}
	opAddShadow        = operation{CapAddShadow, "Shadow generation", "/product/shadow", "Shadow added successfully"}
	opCreatePackshot   = operation{CapCreatePackshot, "Packshot creation", "/product/packshot", "Packshot created successfully"}
	opRemoveBackground = operation{CapRemoveBackground, "Background removal", "/background/remove", "Background removed successfully"}
)

// Endpoint returns the vendor path a capability is forwarded to.
func Endpoint(c Capability) string {
	for _, op := range operations() {
		if op.capability == c {
			return op.endpoint
		}
	}
	return ""
}

func operations() []operation {
	return []operation{
		opGenerateImage,
		opEnhancePrompt,
		opLifestyleText,
		opLifestyleImage,
		opGenerativeFill,
		opEraseForeground,
		opAddShadow,
		opCreatePackshot,
		opRemoveBackground,
	}
}

// Fixed vendor tuning values. They are not exposed to callers.
var (
	defaultShotSize        = []int{1000, 1000}
	defaultPadding         = []int{0, 0, 0, 0}
	defaultManualPlacement = []string{"upper_left"}
	defaultShadowOffset    = []int{0, 15}
)

const (
	defaultShadowColor       = "#000000"
	defaultShadowBlur        = 20
	defaultShadowHeight      = 70
	defaultRefImageInfluence = 1.0
	defaultMaskType          = "manual"
)

// Caller-facing defaults, shared with the HTTP binding and the CLI.
const (
	DefaultAspectRatio     = "1:1"
	DefaultMedium          = "photography"
	DefaultPlacementType   = "automatic"
	DefaultShadowType      = "natural"
	DefaultShadowIntensity = 60
	DefaultPackshotColor   = "#FFFFFF"
	DefaultLifestyleCount  = 4
)

// Inclusive bounds for numeric fields.
const (
	MinGenerateResults  = 1
	MaxGenerateResults  = 4
	MinLifestyleResults = 1
	MaxLifestyleResults = 8
	MinFillResults      = 1
	MaxFillResults      = 4
	MinShadowIntensity  = 0
	MaxShadowIntensity  = 100
)

// Enumerated values accepted by the adapters.
var (
	AspectRatios   = []string{"1:1", "2:3", "3:2", "3:4", "4:3", "4:5", "5:4", "9:16", "16:9"}
	Mediums        = []string{"photography", "art"}
	PlacementTypes = []string{"original", "automatic", "manual_placement"}
	ShadowTypes    = []string{"natural", "drop"}
)
