package config

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stewi1014/glfractal-nav/programs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	o := Default()
	assert.NoError(t, o.Validate())
	assert.Equal(t, 1000, o.Width)
	assert.Equal(t, 1000, o.Height)
	assert.True(t, o.Dialog)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Options)
	}{
		{"zero width", func(o *Options) { o.Width = 0 }},
		{"negative height", func(o *Options) { o.Height = -1 }},
		{"huge", func(o *Options) { o.Width = 1 << 20 }},
		{"unknown program", func(o *Options) { o.Program = "nope" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := Default()
			tt.modify(&o)
			err := o.Validate()
			assert.ErrorIs(t, err, ErrInvalidOptions)
		})
	}
}

func TestUnknownProgramWrapsLookupError(t *testing.T) {
	o := Default()
	o.Program = "nope"
	assert.ErrorIs(t, o.Validate(), programs.ErrUnknownProgram)
}

func TestBindFlags(t *testing.T) {
	o := Default()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	o.BindFlags(fs)

	require.NoError(t, fs.Parse([]string{"--width", "800", "--height=600", "-p", "julia", "--debug", "--dialog=false"}))

	assert.Equal(t, Options{
		Width:   800,
		Height:  600,
		Program: "julia",
		Debug:   true,
		Dialog:  false,
	}, o)
	assert.NoError(t, o.Validate())
}
