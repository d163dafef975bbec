// SPDX-License-Identifier: EPL-2.0

package audsynth_test

import (
	"context"
	"encoding/binary"
	"fmt"
	"log"

	"github.com/ik5/audsynth"
	"github.com/ik5/audsynth/synth"
)

func ExampleGenerate() {
	req, err := synth.NewEffectRequest(synth.Laser, 1, 44100)
	if err != nil {
		log.Fatal(err)
	}

	data, err := audsynth.Generate(context.Background(), req)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(len(data), "bytes")
	fmt.Println(string(data[0:4]), string(data[8:12]))
	fmt.Println("data chunk:", binary.LittleEndian.Uint32(data[40:44]))
	// Output:
	// 176444 bytes
	// RIFF WAVE
	// data chunk: 176400
}

func ExampleFilename() {
	req, err := synth.NewMusicRequest(synth.Epic, 60, 48000, 0)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(audsynth.Filename("Final Boss", req, "wav"))
	// Output:
	// final-boss-epic-110bpm.wav
}
