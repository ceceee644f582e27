package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreativeRoundTrip(t *testing.T) {
	creatives := []Creative{
		ImageCreative{ImageURL: "https://cdn.example.com/a.png"},
		HTMLCreative{Content: "<b>hi</b>"},
		VideoCreative{VideoURL: "https://cdn.example.com/a.mp4"},
		ScriptCreative{Code: "console.log(1)"},
		NativeCreative{Title: "t", Description: "d", ThumbnailURL: "https://cdn.example.com/t.png"},
	}
	for _, c := range creatives {
		raw, err := MarshalCreative(c)
		require.NoError(t, err)
		got, err := UnmarshalCreative(raw)
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
}

func TestDecodeCreative(t *testing.T) {
	c, err := DecodeCreative(CreativeHTML, []byte(`{"html_content":"<p>x</p>"}`))
	require.NoError(t, err)
	assert.Equal(t, HTMLCreative{Content: "<p>x</p>"}, c)

	_, err = DecodeCreative("flash", []byte(`{}`))
	assert.ErrorIs(t, err, ErrUnknownCreativeKind)

	_, err = DecodeCreative(CreativeImage, []byte(`{"image":`))
	assert.Error(t, err)

	_, err = MarshalCreative(nil)
	assert.ErrorIs(t, err, ErrMissingCreative)
}

func TestAdvertisementValidate(t *testing.T) {
	valid := func() Advertisement {
		return Advertisement{
			Weight:    DefaultWeight,
			Priority:  0,
			Creative:  ImageCreative{ImageURL: "https://cdn.example.com/a.png"},
			TargetURL: "https://example.com",
		}
	}

	ad := valid()
	require.NoError(t, ad.Validate())

	ad = valid()
	ad.Weight = 0
	assert.ErrorIs(t, ad.Validate(), ErrInvalidWeight)

	ad = valid()
	ad.Priority = MaxPriority + 1
	assert.ErrorIs(t, ad.Validate(), ErrInvalidPriority)

	ad = valid()
	ad.Creative = nil
	assert.ErrorIs(t, ad.Validate(), ErrMissingCreative)

	ad = valid()
	ad.TargetURL = ""
	assert.ErrorIs(t, ad.Validate(), ErrMissingTarget)
}
