// Package shaders provides embedded GLSL shader sources.
//
// Every vertex shader declares its attributes at the render package's
// fixed slots (0 position, 1 normal, 2 color).
package shaders

import _ "embed"

// CameraVertexShader lights the camera scene per vertex (Lambert).
//
//go:embed camera.vert
var CameraVertexShader string

// CameraFragmentShader outputs the interpolated vertex colour.
//
//go:embed camera.frag
var CameraFragmentShader string

// BallsVertexShader places instanced balls and prepares Phong vectors.
//
//go:embed balls.vert
var BallsVertexShader string

// BallsFragmentShader shades per fragment (Phong).
//
//go:embed balls.frag
var BallsFragmentShader string

// SquareVertexShader passes clip-space positions straight through.
//
//go:embed square.vert
var SquareVertexShader string

// SquareFragmentShader fills with a flat colour.
//
//go:embed square.frag
var SquareFragmentShader string

// GouraudLambertVertexShader lights per vertex with a diffuse term only.
//
//go:embed gouraud_lambert.vert
var GouraudLambertVertexShader string

//go:embed gouraud_lambert.frag
var GouraudLambertFragmentShader string

// GouraudPhongVertexShader evaluates the full Phong model per vertex.
//
//go:embed gouraud_phong.vert
var GouraudPhongVertexShader string

//go:embed gouraud_phong.frag
var GouraudPhongFragmentShader string

// PhongVertexShader only prepares the normal and eye vectors; PhongFragmentShader
// does the lighting per fragment.
//
//go:embed phong.vert
var PhongVertexShader string

//go:embed phong.frag
var PhongFragmentShader string
