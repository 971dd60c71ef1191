// Command atlasdump loads an alpha8 atlas fixture (PNG or WebP) and
// prints its dimensions and a coarse ASCII preview of the alpha
// channel, for manually inspecting test fixtures.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gogpu/imguisw"
	"github.com/gogpu/imguisw/atlasio"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s <atlas-file.png|.webp>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	tex, err := atlasio.Load(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%s: %dx%d alpha8\n", flag.Arg(0), tex.Width(), tex.Height())
	dumpPreview(tex)
}

// ramp maps a coarse alpha bucket to a visibility character, darkest
// to brightest.
const ramp = " .:-=+*#%@"

func dumpPreview(tex *imguisw.Texture) {
	const maxCols = 64
	w, h := tex.Width(), tex.Height()
	stepX := 1
	if w > maxCols {
		stepX = w / maxCols
	}
	stepY := stepX * 2 // terminal glyphs are roughly twice as tall as wide

	for y := 0; y < h; y += stepY {
		for x := 0; x < w; x += stepX {
			a := tex.AlphaAt(x, y)
			idx := int(a) * (len(ramp) - 1) / 255
			fmt.Print(string(ramp[idx]))
		}
		fmt.Println()
	}
}
