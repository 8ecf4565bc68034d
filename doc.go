// Package xsdf approximates signed distance fields of binary images.
//
// For every pixel of a [binimg.Image], a [Field] stores the distance
// to the closest boundary pixel together with that pixel's
// coordinates. Distances are negative inside of the shape and
// positive outside of it unless [WithInsidePositive] is used. A
// boundary pixel is one whose classification differs from at least
// one of its four direct neighbors; its distance is exactly zero.
//
// The algorithm is the "dead reckoning" transform described in
// George J. Grevara, The "dead reckoning" signed distance transform
// (2004). It runs in time proportional to the number of pixels
// regardless of the shape, but it is an approximation: some pixels
// far away from the boundary may be assigned a slightly wrong
// nearest boundary pixel.
//
// Distances can be stored with 32-bit precision ([F32]) or in half
// the memory with 16-bit floats ([F16]):
//
//	img, err := binimg.FromBytes(buf, w, h)
//	if err != nil {
//		return err
//	}
//	field, err := xsdf.Compute[xsdf.F16](img)
//	if err != nil {
//		return err
//	}
//	norm, err := field.NormalizeClamped(10)
//	if err != nil {
//		return err
//	}
//	png.Encode(out, norm.Gray())
package xsdf
