package easyconfig_test

import (
	"net/netip"
	"testing"
	"time"

	"github.com/ConradIrwin/easyconfig-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Video struct {
	Fullscreen *bool
	Width      int
	Height     int
	Title      string
	Unused     *bool
}

type Level struct {
	Names    []string
	Booleans []bool
	Ints     []*int
	Doubles  []float64
	Pair     [2]int
	Quad     [4]int
	Empty    []int
}

type GameOptions struct {
	Video   Video
	Level   *Level
	Missing *Level
}

const gameFile = `[Video]
Fullscreen = yes
Width = 1920
Height = tall
Title = "Main, window"

[Level]
Names = "a","b, c","d"
Booleans = yes, no, On
Ints = 1, x, 3
Doubles = 1.5, 2
Pair = 4, 5, 6
Quad = 1, 2
Empty =

[Unknown]
Foo = 1
`

func intPtr(i int) *int { return &i }

func TestMapTo(t *testing.T) {
	file, err := easyconfig.Parse([]byte(gameFile))
	require.NoError(t, err)

	opts, err := easyconfig.MapTo[GameOptions](file)
	require.NoError(t, err)

	require.NotNil(t, opts.Video.Fullscreen)
	assert.True(t, *opts.Video.Fullscreen)
	assert.Equal(t, 1920, opts.Video.Width)
	assert.Equal(t, 0, opts.Video.Height)
	assert.Equal(t, "Main, window", opts.Video.Title)
	assert.Nil(t, opts.Video.Unused)

	require.NotNil(t, opts.Level)
	assert.Equal(t, []string{"a", "b,c", "d"}, opts.Level.Names)
	assert.Equal(t, []bool{true, false, true}, opts.Level.Booleans)
	assert.Equal(t, []*int{intPtr(1), nil, intPtr(3)}, opts.Level.Ints)
	assert.Equal(t, []float64{1.5, 2}, opts.Level.Doubles)
	assert.Equal(t, [2]int{4, 5}, opts.Level.Pair)
	assert.Equal(t, [4]int{1, 2, 0, 0}, opts.Level.Quad)
	assert.Equal(t, []int{0}, opts.Level.Empty)

	assert.Nil(t, opts.Missing)
}

func TestMapNullableFields(t *testing.T) {
	type NullableVideo struct {
		Fullscreen *bool
		Width      *int
		Height     *int
		Unused     *int
	}
	type Options struct {
		Video NullableVideo
	}

	boolPtr := func(b bool) *bool { return &b }

	for _, test := range []struct {
		name     string
		input    string
		expected NullableVideo
	}{
		{
			name:     "all present",
			input:    "[Video]\nFullscreen = true\nWidth = 1920\nHeight = 1080\n",
			expected: NullableVideo{Fullscreen: boolPtr(true), Width: intPtr(1920), Height: intPtr(1080)},
		},
		{
			name:     "quoted malformed number",
			input:    "[Video]\nFullscreen = true\nWidth = \"abc\"\nHeight = 1080\n",
			expected: NullableVideo{Fullscreen: boolPtr(true), Height: intPtr(1080)},
		},
		{
			name:     "bare malformed number",
			input:    "[Video]\nWidth = abc\n",
			expected: NullableVideo{},
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			file, err := easyconfig.Parse([]byte(test.input))
			require.NoError(t, err)
			opts, err := easyconfig.MapTo[Options](file)
			require.NoError(t, err)
			assert.Equal(t, test.expected, opts.Video)
			assert.Nil(t, opts.Video.Unused)
		})
	}
}

func TestUnmarshalKeepsExistingValues(t *testing.T) {
	file, err := easyconfig.Parse([]byte("[Video]\nWidth = 1,2\nHeight = tall\n"))
	require.NoError(t, err)

	fullscreen := true
	opts := GameOptions{Video: Video{Width: 800, Height: 600, Title: "default", Fullscreen: &fullscreen}}
	require.NoError(t, easyconfig.Unmarshal(file, &opts))

	assert.Equal(t, 800, opts.Video.Width)
	assert.Equal(t, 600, opts.Video.Height)
	assert.Equal(t, "default", opts.Video.Title)
	assert.Same(t, &fullscreen, opts.Video.Fullscreen)
	assert.Nil(t, opts.Level)
}

func TestUnmarshalSpecialTypes(t *testing.T) {
	type Server struct {
		Price   decimal.Decimal
		Start   time.Time
		Host    netip.Addr
		Backup  netip.Addr
		Small   uint8
		Tiny    int8
		Ratio   float32
		Hosts   []netip.Addr
		Prices  []*decimal.Decimal
		private int
	}
	type Config struct {
		Server Server
	}

	file, err := easyconfig.Parse([]byte(`[Server]
Price = 12.50
Start = 2024-11-01T16:00:00Z
Host = "10.0.0.1"
Backup = 10.0.0.2
Small = 300
Tiny = -12
Ratio = 0.25
Hosts = "10.0.0.3","::1"
Prices = 1.10, oops
private = 4
`))
	require.NoError(t, err)

	config, err := easyconfig.MapTo[Config](file)
	require.NoError(t, err)
	server := config.Server

	assert.True(t, decimal.RequireFromString("12.5").Equal(server.Price))
	assert.True(t, time.Date(2024, time.November, 1, 16, 0, 0, 0, time.UTC).Equal(server.Start))
	assert.Equal(t, netip.MustParseAddr("10.0.0.1"), server.Host)
	assert.Equal(t, netip.MustParseAddr("10.0.0.2"), server.Backup)
	assert.Equal(t, uint8(0), server.Small)
	assert.Equal(t, int8(-12), server.Tiny)
	assert.Equal(t, float32(0.25), server.Ratio)
	assert.Equal(t, []netip.Addr{netip.MustParseAddr("10.0.0.3"), netip.MustParseAddr("::1")}, server.Hosts)
	require.Len(t, server.Prices, 2)
	assert.True(t, decimal.RequireFromString("1.1").Equal(*server.Prices[0]))
	assert.Nil(t, server.Prices[1])
	assert.Equal(t, 0, server.private)
}

func TestUnmarshalDates(t *testing.T) {
	type Event struct {
		Day  time.Time
		Days []time.Time
	}
	var v struct{ Event Event }

	file, err := easyconfig.Parse([]byte("[Event]\nDay = 2024-03-15\nDays = 2024-01-02, nonsense\n"))
	require.NoError(t, err)
	require.NoError(t, easyconfig.Unmarshal(file, &v))

	assert.Equal(t, 2024, v.Event.Day.Year())
	assert.Equal(t, time.March, v.Event.Day.Month())
	assert.Equal(t, 15, v.Event.Day.Day())
	require.Len(t, v.Event.Days, 2)
	assert.Equal(t, 2, v.Event.Days[0].Day())
	assert.True(t, v.Event.Days[1].IsZero())
}

func TestUnmarshalGroup(t *testing.T) {
	file, err := easyconfig.Parse([]byte(gameFile))
	require.NoError(t, err)
	group, ok := file.SettingsGroup("Level")
	require.True(t, ok)

	var level Level
	require.NoError(t, easyconfig.UnmarshalGroup(group, &level))
	assert.Equal(t, []string{"a", "b,c", "d"}, level.Names)

	assert.EqualError(t, easyconfig.UnmarshalGroup(group, level), "invalid target, must be a non-nil pointer")
}

func TestUnmarshalInvalidTarget(t *testing.T) {
	file := easyconfig.New()

	for _, test := range []struct {
		name   string
		target any
		err    string
	}{
		{"nil", nil, "invalid target, must be a non-nil pointer"},
		{"struct value", GameOptions{}, "invalid target, must be a non-nil pointer"},
		{"nil pointer", (*GameOptions)(nil), "invalid target, must be a non-nil pointer"},
		{"pointer to int", new(int), "invalid target, must point to a struct, not int"},
		{"pointer to map", &map[string]any{}, "invalid target, must point to a struct, not map[string]interface {}"},
	} {
		t.Run(test.name, func(t *testing.T) {
			assert.EqualError(t, easyconfig.Unmarshal(file, test.target), test.err)
		})
	}

	_, err := easyconfig.MapTo[int](file)
	assert.EqualError(t, err, "invalid target, must point to a struct, not int")
}

func TestUnmarshalIgnoresUnsupportedFields(t *testing.T) {
	type Odd struct {
		Map    map[string]int
		Nested struct{ X int }
		Width  int
	}
	var v struct {
		Video Odd
		Count int
	}

	file, err := easyconfig.Parse([]byte("[Video]\nMap = 1\nNested = 2\nWidth = 3\n[Count]\nx = 1\n"))
	require.NoError(t, err)
	require.NoError(t, easyconfig.Unmarshal(file, &v))

	assert.Nil(t, v.Video.Map)
	assert.Equal(t, 0, v.Video.Nested.X)
	assert.Equal(t, 3, v.Video.Width)
	assert.Equal(t, 0, v.Count)
}
