// Package picture decodes image files into the RGBA planes the encoder reads.
//
// Images are kept non-premultiplied so transparent pixels still carry alpha 0
// and are treated as background. PNG and JPEG decoders are registered.
package picture
