// Package validate checks a Go value that was filled from a configuration
// file, and reports problems against the lines of that file.
//
// easyconfig.Unmarshal never complains about the contents of a file:
// missing settings and values that do not parse are simply left at their
// zero value. When a program needs more than that, it can describe its
// expectations with `validate` struct tags (see
// [github.com/go-playground/validator/v10]) and call [Struct] after
// unmarshalling.
//
// For example, given
//
//	type Video struct {
//	  Width  int    `validate:"min=640,max=4096"`
//	  Height int    `validate:"required"`
//	  Mode   string `validate:"oneof=window fullscreen"`
//	}
//
//	type Options struct {
//	  Video *Video `validate:"required"`
//	}
//
// and the file
//
//	[Video]
//	Width = 9000
//	Mode = "tiled"
//
// Struct reports
//
//	1: missing required key Height
//	2: expected Width to be at most 4096
//	3: expected Mode to match window or fullscreen
package validate
