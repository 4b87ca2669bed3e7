package render

// billboardShader samples the block texture and multiplies it by the block
// tint.
var billboardShader = []byte(`//kage:unit pixels

package main

var Tint vec4

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	return imageSrc0At(srcPos) * Tint
}
`)
