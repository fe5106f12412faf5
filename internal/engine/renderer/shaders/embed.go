// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// EditorVertexShader transforms editor vertices, resolves palette colors and
// applies the triangle animations.
//
//go:embed editor.vert
var EditorVertexShader string

// EditorFragmentShader is the fragment shader for all editor geometry.
//
//go:embed editor.frag
var EditorFragmentShader string
