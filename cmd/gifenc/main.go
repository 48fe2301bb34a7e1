// Command gifenc assembles a sequence of images into an animated GIF89a
// file.
//
// Usage:
//
//	gifenc -i frame1.png -i frame2.png -o out.gif
//	gifenc --gen-example -o demo.gif
//
// -i/--input-files takes one path per occurrence; it does not consume the
// arguments that follow that path, so the flag is repeated once per frame.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/vividgif/gif89"
)

type stringList []string

func (s *stringList) String() string     { return strings.Join(*s, ",") }
func (s *stringList) Set(v string) error { *s = append(*s, v); return nil }

func main() {
	var inputFiles stringList
	flag.Var(&inputFiles, "i", "input image file (repeatable)")
	flag.Var(&inputFiles, "input-files", "input image file (repeatable)")
	outputFile := flag.String("o", "out.gif", "output GIF file")
	flag.StringVar(outputFile, "output-file", "out.gif", "output GIF file")
	delay := flag.Int("delay", 2, "delay in centiseconds between frames")
	bitDepth := flag.Int("bit-depth", 8, "palette bit depth, 1-8")
	dither := flag.Bool("dither", false, "dither instead of threshold quantization")
	genExample := flag.Bool("gen-example", false, "generate a procedural example animation")
	numericSort := flag.Bool("numeric-sort", false, "sort input files by the first number found in each name")

	flag.Parse()

	var err error
	switch {
	case *genExample:
		err = genExampleGIF(*outputFile, *delay, *bitDepth)
	default:
		err = encodeFiles(inputFiles, *outputFile, *delay, *bitDepth, *dither, *numericSort)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "gifenc: %v\n", err)
		os.Exit(1)
	}
}

func encodeFiles(inputFiles []string, outputFile string, delay, bitDepth int, dither, numericSort bool) error {
	if len(inputFiles) == 0 {
		return fmt.Errorf("-i/--input-files requires at least one argument")
	}

	if numericSort {
		sortByEmbeddedNumber(inputFiles)
	}

	first, width, height, err := loadFrame(inputFiles[0])
	if err != nil {
		return fmt.Errorf("opening first input file %q: %w", inputFiles[0], err)
	}

	opts := gif89.Options{Delay: delay, BitDepth: bitDepth, Dither: dither}
	w, err := gif89.Open(outputFile, width, height, opts)
	if err != nil {
		return fmt.Errorf("opening output file %q: %w", outputFile, err)
	}
	defer w.Close()
	total := len(inputFiles)

	if err := w.WriteFrame(first, opts); err != nil {
		return fmt.Errorf("writing frame 0: %w", err)
	}
	fmt.Printf("writing frame 1/%d\r", total)

	start := time.Now()
	for i := 1; i < total; i++ {
		frame, w2, h2, err := loadFrame(inputFiles[i])
		if err != nil {
			return fmt.Errorf("opening input file %q: %w", inputFiles[i], err)
		}
		if w2 != width || h2 != height {
			return fmt.Errorf("frame %d (%q) is %dx%d, expected %dx%d", i, inputFiles[i], w2, h2, width, height)
		}
		if err := w.WriteFrame(frame, opts); err != nil {
			return fmt.Errorf("writing frame %d: %w", i, err)
		}
		fmt.Printf("writing frame %d/%d (%.0f%%)\r", i+1, total, 100*float64(i+1)/float64(total))
	}

	elapsed := time.Since(start)
	fmt.Printf("\ndone %.1fs (%.2fms/frame)\n", elapsed.Seconds(), float64(elapsed.Milliseconds())/float64(total))
	return nil
}

// loadFrame decodes path and returns a tightly packed RGBA8 buffer
// (width*height*4 bytes, no stride padding) along with its dimensions.
func loadFrame(path string) ([]byte, int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, 0, err
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, 0, 0, err
	}

	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), src, bounds.Min, draw.Src)

	return dst.Pix, width, height, nil
}

// sortByEmbeddedNumber sorts names in place by the first run of decimal
// digits found in each one, ascending. Names with no digits sort first.
func sortByEmbeddedNumber(names []string) {
	keyOf := func(s string) int {
		start := strings.IndexFunc(s, func(r rune) bool { return r >= '0' && r <= '9' })
		if start < 0 {
			return -1
		}
		end := start
		for end < len(s) && s[end] >= '0' && s[end] <= '9' {
			end++
		}
		n, _ := strconv.Atoi(s[start:end])
		return n
	}
	sort.SliceStable(names, func(i, j int) bool {
		return keyOf(names[i]) < keyOf(names[j])
	})
}

// genExampleGIF writes a procedurally generated 256-frame animation: a
// rotating cosine-wave color field over a 512x512 canvas. It exists to
// exercise the full pipeline (palette build, quantization, LZW, and
// container framing) without needing any input images on disk.
func genExampleGIF(outputFile string, delay, bitDepth int) error {
	const (
		width       = 512
		height      = 512
		totalFrames = 256
	)

	opts := gif89.Options{Delay: delay, BitDepth: bitDepth, Dither: true}
	w, err := gif89.Open(outputFile, width, height, opts)
	if err != nil {
		return fmt.Errorf("opening output file %q: %w", outputFile, err)
	}
	defer w.Close()
	pixels := make([]byte, width*height*4)

	start := time.Now()
	for frame := 0; frame < totalFrames; frame++ {
		tt := float64(frame) * math.Pi * 2 / 255.0
		for y := 0; y < height; y++ {
			fy := float64(y) / height
			for x := 0; x < width; x++ {
				fx := float64(x) / width

				red := 0.5 + 0.5*math.Cos(tt+fx)
				grn := 0.5 + 0.5*math.Cos(tt+fy+2)
				blu := 0.5 + 0.5*math.Cos(tt+fx+4)

				o := (y*width + x) * 4
				pixels[o] = byte(math.Round(255 * red))
				pixels[o+1] = byte(math.Round(255 * grn))
				pixels[o+2] = byte(math.Round(255 * blu))
				pixels[o+3] = 255
			}
		}

		fmt.Printf("writing frame %d/%d (%.2f%%)\r", frame, totalFrames, 100*float64(frame)/float64(totalFrames))
		if err := w.WriteFrame(pixels, opts); err != nil {
			return fmt.Errorf("writing frame %d: %w", frame, err)
		}
	}

	elapsed := time.Since(start)
	fmt.Printf("\ndone %.1fs (%.2fms/frame)\n", elapsed.Seconds(), float64(elapsed.Milliseconds())/float64(totalFrames))
	return nil
}
