// Package gif89 writes animated GIF89a files: a modified-median-split
// adaptive palette per frame, threshold or Floyd-Steinberg quantization
// against the previous frame for inter-frame delta compression, and a
// from-scratch variable-width LZW image coder.
//
// Basic usage:
//
//	w, err := gif89.Open("out.gif", width, height, gif89.Options{Delay: 2})
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer w.Close()
//	for _, frame := range frames {
//		if err := w.WriteFrame(frame, gif89.Options{BitDepth: 8}); err != nil {
//			log.Fatal(err)
//		}
//	}
package gif89
