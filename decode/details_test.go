package decode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTrackDetailsPrefersContainerTags(t *testing.T) {
	probe := probeResult{
		Format: probeFormat{
			Duration: "123.456",
			Tags:     map[string]string{"title": "Container Title", "artist": "Container Artist"},
		},
	}
	audio := probeStream{
		Tags: map[string]string{"title": "Stream Title", "Artist": "Stream Artist"},
	}

	details := buildTrackDetails(probe, audio, nil)

	require.NotNil(t, details.Title)
	assert.Equal(t, "Container Title", *details.Title)

	require.NotNil(t, details.Artist)
	assert.Equal(t, "Container Artist", *details.Artist)

	require.NotNil(t, details.Duration)
	assert.InDelta(t, 123.456, details.Duration.Seconds(), 1e-6)
}

func TestBuildTrackDetailsTitleFallsBackToStreamTagsButArtistDoesNot(t *testing.T) {
	probe := probeResult{}
	audio := probeStream{
		Tags: map[string]string{"title": "Stream Title", "artist": "Stream Artist"},
	}

	details := buildTrackDetails(probe, audio, nil)

	require.NotNil(t, details.Title)
	assert.Equal(t, "Stream Title", *details.Title)

	assert.Nil(t, details.Artist)
}

func TestBuildTrackDetailsMissingFieldsAreNil(t *testing.T) {
	details := buildTrackDetails(probeResult{}, probeStream{}, nil)
	assert.Nil(t, details.Title)
	assert.Nil(t, details.Artist)
	assert.Nil(t, details.Duration)
	assert.Nil(t, details.Cover)
}

func TestDefaultAudioStreamSkipsVideo(t *testing.T) {
	probe := probeResult{Streams: []probeStream{
		{CodecType: "video", Index: 0},
		{CodecType: "audio", Index: 1, SampleRate: "44100"},
	}}
	audio, ok := probe.defaultAudioStream()
	require.True(t, ok)
	assert.Equal(t, 1, audio.Index)
}

func TestAttachedPicStreamRequiresDisposition(t *testing.T) {
	probe := probeResult{Streams: []probeStream{
		{CodecType: "video", Index: 0, Disposition: map[string]int{"attached_pic": 0}},
		{CodecType: "video", Index: 1, Disposition: map[string]int{"attached_pic": 1}},
	}}
	pic, ok := probe.attachedPicStream()
	require.True(t, ok)
	assert.Equal(t, 1, pic.Index)
}
