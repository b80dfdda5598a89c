// Package easyconfig reads and writes simple INI-like configuration files
// and maps them onto Go structs.
//
// A file is a list of groups, each holding settings:
//
//	# video options
//	[Video]
//	Fullscreen = yes
//	Width = 1920
//	Height = 1080
//
//	[Level]
//	Names = "a","b","c"
//	Booleans = yes, no, On
//
// Everything after a # is a comment. A group header is a name made of
// letters, digits and spaces in square brackets. A setting is a name and
// a value separated by the first =. Values are strings in double quotes,
// numbers, dates, or booleans; a comma outside of quotes makes the value
// an array. The boolean synonyms on, yes, off and no (in any casing) are
// stored as true and false.
//
// Files are read with [Open], [Read] or [Parse], edited through
// [ConfigFile], [SettingsGroup] and [Setting], and written with
// [ConfigFile.Save] or [ConfigFile.WriteTo]. Groups and settings keep the
// order in which they were read or added, so a file that is loaded and
// saved again comes out the same.
//
// Like the builtin json package, easyconfig can copy a file into a Go
// value. For example, the file above can be read into:
//
//	type Options struct {
//	  Video struct {
//	    Fullscreen *bool
//	    Width      int
//	    Height     int
//	  }
//	  Level struct {
//	    Names    []string
//	    Booleans []bool
//	  }
//	}
//
//	opts, err := easyconfig.MapTo[Options](file)
//
// Groups and settings are matched to fields by exact name. Unlike json,
// [Unmarshal] never fails because of the contents of the file: unknown
// names are skipped and values that do not parse leave the field as it
// was. The typed accessors on [Setting] (such as [Setting.Int]) are
// strict and return a [*ConversionError] instead.
package easyconfig
