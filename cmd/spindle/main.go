package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/richinsley/spindle/player"
)

func main() {
	channels := flag.Uint("channels", 2, "output channel count")
	sampleRate := flag.Uint("rate", 48000, "output sample rate in Hz")
	progressBar := flag.Bool("progress-bar", true, "print a playback progress line while playing")
	noProgressBar := flag.Bool("no-progress-bar", false, "disable the playback progress line")
	flag.Parse()
	if *noProgressBar {
		*progressBar = false
	}

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: spindle [flags] <file> [file...]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	p, err := player.New(player.Options{
		Channels:   uint32(*channels),
		SampleRate: uint32(*sampleRate),
	})
	if err != nil {
		log.Fatalf("spindle: opening output device: %v", err)
	}

	for _, path := range flag.Args() {
		if err := p.Open(path); err != nil {
			log.Fatalf("spindle: queuing %s: %v", path, err)
		}
	}
	p.Controller().Play()

	if *progressBar {
		go printProgress(p)
	}

	p.WaitUntilEnd()
}

func printProgress(p *player.Player) {
	ctrl := p.Controller()
	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()

	for range ticker.C {
		position, err := ctrl.Position()
		if err != nil {
			continue
		}
		duration, err := ctrl.Duration()
		if err != nil {
			fmt.Printf("\r%s", formatDuration(position))
			continue
		}
		fmt.Printf("\r%s / %s", formatDuration(position), formatDuration(duration))
	}
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	minutes := d / time.Minute
	seconds := (d - minutes*time.Minute) / time.Second
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
