package decode

import "testing"

func TestIsMP3(t *testing.T) {
	mp3 := CodecParameters{CodecTag: "mp3"}
	flac := CodecParameters{CodecTag: "flac"}

	if !mp3.IsMP3() {
		t.Errorf("expected CodecTag %q to be recognized as MP3", mp3.CodecTag)
	}
	if flac.IsMP3() {
		t.Errorf("expected CodecTag %q not to be recognized as MP3", flac.CodecTag)
	}
}

func TestDefaultChunkFrames(t *testing.T) {
	if got := defaultChunkFrames(CodecParameters{CodecTag: "mp3"}); got != 1152 {
		t.Errorf("mp3 chunk frames = %d, want 1152", got)
	}
	if got := defaultChunkFrames(CodecParameters{CodecTag: "flac"}); got != 1024 {
		t.Errorf("flac chunk frames = %d, want 1024", got)
	}
	n := uint32(512)
	if got := defaultChunkFrames(CodecParameters{CodecTag: "flac", MaxFramesPerPacket: &n}); got != 512 {
		t.Errorf("explicit MaxFramesPerPacket not honored: got %d, want 512", got)
	}
}
