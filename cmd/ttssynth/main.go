// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// 2019-02
// This is a port to golang of the C++ Gnuspeech port by Marcelo Y. Matuda

// Command ttssynth loads a voice pack and renders a marked phonetic
// string to a control-rate parameter stream, printed as one
// space-separated row of parameter values per 4 ms frame.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/mym-br/gama-tts-sub001/frame"
	"github.com/mym-br/gama-tts-sub001/rhythm"
	"github.com/mym-br/gama-tts-sub001/synth"
	"github.com/mym-br/gama-tts-sub001/voicepack"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	voiceDir := flag.String("voice", "", "directory holding model.json, model_config.json, rhythm_config.json, intonation_config.json, tone_group_parameters.json")
	text := flag.String("text", "", "marked phonetic string to synthesize")
	out := flag.String("out", "", "output file for the frame stream (default stdout)")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	if err := run(*voiceDir, *text, *out, *verbose); err != nil {
		fmt.Fprintln(os.Stderr, "ttssynth:", err)
		os.Exit(1)
	}
}

func run(voiceDir, text, outPath string, verbose bool) error {
	if voiceDir == "" || text == "" {
		return fmt.Errorf("both -voice and -text are required")
	}

	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	var doc voicepack.Document
	if err := voicepack.LoadJSON(voiceDir+"/model.json", &doc); err != nil {
		return fmt.Errorf("loading model.json: %w", err)
	}
	m, err := voicepack.Build(&doc)
	if err != nil {
		return fmt.Errorf("building model: %w", err)
	}

	var modelCfg voicepack.ModelConfig
	if err := voicepack.LoadJSON(voiceDir+"/model_config.json", &modelCfg); err != nil {
		return fmt.Errorf("loading model_config.json: %w", err)
	}

	rhythmCfg := rhythm.DefaultConfig()
	var rhythmOverride voicepack.RhythmConfig
	if err := voicepack.LoadJSON(voiceDir+"/rhythm_config.json", &rhythmOverride); err == nil {
		rhythmCfg = rhythmOverride.Merge(rhythmCfg)
	}

	var intonCfg voicepack.IntonationConfig
	var toneGroups voicepack.ToneGroupParameters
	_ = voicepack.LoadJSON(voiceDir+"/intonation_config.json", &intonCfg)
	_ = voicepack.LoadJSON(voiceDir+"/tone_group_parameters.json", &toneGroups)

	cfg := synth.Config{
		GlobalTempo:        nonZero(modelCfg.GlobalTempo, 1.0),
		PitchMean:          modelCfg.PitchMean,
		PitchParameter:     nonZeroStr(modelCfg.PitchParameter, "glottalVolume"),
		DriftDeviation:     modelCfg.DriftDeviation,
		DriftLowpassCutoff: nonZero(modelCfg.DriftLowpassCutoff, 3.0),
		Intonation:         modelCfg.Intonation,
		Rhythm:             rhythmCfg,
		IntonationTable:    voicepack.BuildIntonationConfig(intonCfg, toneGroups),
	}

	s, err := synth.New(m, cfg)
	if err != nil {
		return fmt.Errorf("initializing synthesizer: %w", err)
	}
	s.Log = log.Logger

	frames, err := s.SynthesizePhoneticString(text)
	if err != nil {
		return fmt.Errorf("synthesizing %q: %w", text, err)
	}

	w := os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating %s: %w", outPath, err)
		}
		defer f.Close()
		w = f
	}
	return writeFrames(w, frames)
}

func writeFrames(w *os.File, frames []frame.Frame) error {
	buf := bufio.NewWriter(w)
	defer buf.Flush()
	for _, fr := range frames {
		for i, v := range fr {
			if i > 0 {
				if err := buf.WriteByte(' '); err != nil {
					return err
				}
			}
			if _, err := buf.WriteString(strconv.FormatFloat(v, 'f', 4, 64)); err != nil {
				return err
			}
		}
		if err := buf.WriteByte('\n'); err != nil {
			return err
		}
	}
	return nil
}

func nonZero(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}

func nonZeroStr(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
