package config

// ImageKey names an image asset the way the scene asks for it
type ImageKey string

const (
	ImageBackground ImageKey = "background"
	ImagePlatform   ImageKey = "platform"
	ImageBunnyStand ImageKey = "bunny-stand"
	ImageBunnyJump  ImageKey = "bunny-jump"
	ImageCarrot     ImageKey = "carrot"
)

// ImageInfo is the source path and pixel size of an image asset.
// Sizes live here so gameplay can compute display bounds without decoding images.
type ImageInfo struct {
	Path   string
	Width  float64
	Height float64
}

var Images map[ImageKey]ImageInfo

func init() {
	Images = map[ImageKey]ImageInfo{
		ImageBackground: {Path: "images/bg_layer1.png", Width: 480, Height: 640},
		ImagePlatform:   {Path: "images/ground_grass.png", Width: 380, Height: 94},
		ImageBunnyStand: {Path: "images/bunny1_stand.png", Width: 120, Height: 190},
		ImageBunnyJump:  {Path: "images/bunny1_jump.png", Width: 120, Height: 190},
		ImageCarrot:     {Path: "images/carrot.png", Width: 64, Height: 80},
	}
}
