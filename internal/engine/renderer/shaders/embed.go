// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// LitVertexShader is the vertex shader for lit mesh rendering.
//
//go:embed lit.vert
var LitVertexShader string

// LitFragmentShader is the fragment shader for lit mesh rendering.
//
//go:embed lit.frag
var LitFragmentShader string
