package scaffold

import "encoding/base64"

// ScreenshotPath is the placeholder image location, relative to the project.
const ScreenshotPath = "assets/screenshot.png"

// placeholderPNG is a 1x1 transparent PNG.
const placeholderPNG = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAQAAAC1HAwCAAAAC0lEQVR42mP8/x8AAwMCAO3Z5uQAAAAASUVORK5CYII="

func placeholderImage() []byte {
	data, err := base64.StdEncoding.DecodeString(placeholderPNG)
	if err != nil {
		panic("scaffold: invalid placeholder image: " + err.Error())
	}
	return data
}
