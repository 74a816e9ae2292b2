package youtube

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	yt "github.com/kkdai/youtube/v2"
)

func TestParseTranscriptJoinsTextElements(t *testing.T) {
	data := []byte(`<?xml version="1.0" encoding="utf-8"?>
<transcript>
  <text start="0.0" dur="2.5">Olá pessoal</text>
  <text start="2.5" dur="3.0">bem-vindos ao canal</text>
  <text start="5.5" dur="1.0"> </text>
</transcript>`)

	got, err := parseTranscript(data)

	require.NoError(t, err)
	assert.Equal(t, "Olá pessoal bem-vindos ao canal", got)
}

func TestParseTranscriptEmptyDocument(t *testing.T) {
	_, err := parseTranscript([]byte(`<transcript></transcript>`))
	assert.ErrorIs(t, err, ErrNoCaptions)
}

func TestParseTranscriptMalformedXML(t *testing.T) {
	_, err := parseTranscript([]byte(`<transcript><text>oops`))
	assert.Error(t, err)
}

func TestPickTrackPrefersPortuguese(t *testing.T) {
	tracks := []yt.CaptionTrack{
		{LanguageCode: "en", BaseURL: "http://en"},
		{LanguageCode: "pt", BaseURL: "http://pt"},
	}

	track := pickTrack(tracks)

	require.NotNil(t, track)
	assert.Equal(t, "http://pt", track.BaseURL)
}

func TestPickTrackFallsBackToEnglishThenAutoPT(t *testing.T) {
	english := pickTrack([]yt.CaptionTrack{
		{LanguageCode: "es", BaseURL: "http://es"},
		{LanguageCode: "en", BaseURL: "http://en"},
	})
	require.NotNil(t, english)
	assert.Equal(t, "http://en", english.BaseURL)

	auto := pickTrack([]yt.CaptionTrack{
		{LanguageCode: "pt", Kind: "asr", VssID: "a.pt", BaseURL: "http://apt"},
	})
	require.NotNil(t, auto)
	assert.Equal(t, "http://apt", auto.BaseURL)

	assert.Nil(t, pickTrack(nil))
}
