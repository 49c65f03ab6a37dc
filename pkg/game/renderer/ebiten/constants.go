package ebiten

import "image/color"

// Color palette for the HUD
var (
	colorBackground    = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorText          = color.RGBA{200, 210, 245, 255} // Soft off-white with blue-purple tint
	colorSubtle        = color.RGBA{120, 130, 180, 255} // Soft blue-purple-gray
	colorMoney         = color.RGBA{100, 255, 150, 255} // Green
	colorHelpBox       = color.RGBA{15, 15, 25, 200}    // Semi-transparent dark
	colorHelpBoxBorder = color.RGBA{80, 80, 100, 255}
)

// Animation timing (milliseconds)
const (
	fadeInMS  = 200
	fadeOutMS = 200
)

// Window zoom limits
const (
	minZoom     = 1
	maxZoom     = 3
	defaultZoom = 1
)

// Help box padding (virtual pixels)
const helpPadding = 6

// Shadow offset for big and high priority text
const shadowOffset = 2
