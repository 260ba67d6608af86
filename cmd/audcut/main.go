// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/ik5/audcut"
	"github.com/ik5/audcut/audio"
	"github.com/ik5/audcut/export"
	"github.com/ik5/audcut/formats/registry"
	"github.com/ik5/audcut/internal/cli"
)

// version is set via ldflags at build time
var version = "dev"

// CLI holds the command line. An End of zero selects the whole recording.
type CLI struct {
	Input         string  `arg:"" name:"input" help:"Input audio file (wav, aiff, mp3, ogg, flac)" optional:""`
	Output        string  `arg:"" name:"output" help:"Output file, defaults to edited_audio.<format>" optional:""`
	Start         float64 `help:"Start of the kept range in seconds" default:"0"`
	End           float64 `help:"End of the kept range in seconds, 0 keeps everything after start" default:"0"`
	FadeIn        float64 `help:"Fade-in length in seconds" default:"0"`
	FadeOut       float64 `help:"Fade-out length in seconds" default:"0"`
	Format        string  `help:"Output format: wav, aiff, mp3 or ogg" default:"wav" short:"f"`
	InclusiveFade bool    `help:"Reach full gain on the last fade sample"`
	Mono          bool    `help:"Mix the output down to one channel"`
	Rate          int     `help:"Output sample rate in Hz, 0 keeps the input rate" default:"0"`
	Verbose       bool    `help:"Log pipeline progress to stderr" short:"v"`
	Version       bool    `help:"Show version information"`
}

func main() {
	var c CLI
	kong.Parse(&c,
		kong.Name("audcut"),
		kong.Description("Trim an audio recording, fade it in and out and save it."),
		kong.UsageOnError(),
		kong.Help(cli.StyledHelpPrinter(kong.HelpOptions{Compact: true})),
	)

	if c.Version {
		cli.PrintVersion(os.Stdout, version)
		os.Exit(0)
	}

	if err := run(c, os.Stdout, os.Stderr); err != nil {
		cli.PrintError(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func run(c CLI, stdout, stderr io.Writer) error {
	if c.Input == "" {
		return fmt.Errorf("<input> is required")
	}

	logger := log.New(io.Discard, "", 0)
	if c.Verbose {
		logger = log.New(stderr, "audcut: ", log.Ltime)
	}

	dispatcher := export.Default(export.WithLogger(logger))
	if !dispatcher.Recognizes(c.Format) {
		return fmt.Errorf("%w: %q (choose one of %s)",
			export.ErrUnsupportedFormat, c.Format, joinFormats(dispatcher.Recognized()))
	}

	reg := registry.New()
	dec, ok := reg.ForFile(c.Input)
	if !ok {
		return fmt.Errorf("no decoder for %q (known extensions: %s)", c.Input, strings.Join(reg.Formats(), ", "))
	}

	buf, err := decodeFile(dec, c.Input)
	if err != nil {
		return err
	}
	cli.PrintInfo(stdout, "Input", fmt.Sprintf("%s, %d Hz, %d channel(s), %s",
		c.Input, buf.SampleRate, buf.Channels(), cli.FormatDuration(buf.Duration())))

	req := c.request(buf)
	out, err := audcut.ProcessBuffer(buf, req,
		audcut.WithDispatcher(dispatcher),
		audcut.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	name := c.Output
	if name == "" {
		name = audcut.OutputName("", c.Format)
	}
	if err := os.WriteFile(name, out.Data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}

	if out.Downgraded {
		cli.PrintWarning(stdout, fmt.Sprintf("no %s encoder is available, %s contains %s data (%s)",
			out.Requested, name, out.Produced, out.MediaType))
	}
	cli.PrintSuccess(stdout, fmt.Sprintf("wrote %s (%s)", name, cli.FormatBytes(int64(len(out.Data)))))

	return nil
}

func decodeFile(dec audio.Decoder, path string) (*audio.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	defer src.Close()

	buf, err := audio.ReadBuffer(src)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return buf, nil
}

func (c CLI) request(buf *audio.Buffer) audcut.Request {
	end := c.End
	if end == 0 {
		// one frame past the end; the editor clamps it
		end = float64(buf.Frames()+1) / float64(buf.SampleRate)
	}

	mode := audio.FadeCompat
	if c.InclusiveFade {
		mode = audio.FadeInclusive
	}

	return audcut.Request{
		Start:    c.Start,
		End:      end,
		FadeIn:   c.FadeIn,
		FadeOut:  c.FadeOut,
		Format:   c.Format,
		FadeMode: mode,

		Mono:       c.Mono,
		SampleRate: c.Rate,
	}
}

func joinFormats(formats []export.Format) string {
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = f.String()
	}

	return strings.Join(names, ", ")
}
