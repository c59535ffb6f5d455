// Package levels embeds the bundled test courses.
package levels

import "embed"

//go:embed *.tmx
var FS embed.FS

// Training is the default course: a floor, two ledges and a wall jump shaft.
const Training = "training.tmx"
