// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/audsynth/formats/wav"
	"github.com/ik5/audsynth/utils"
)

// Example_encoding writes one second of stereo silence.
func Example_encoding() {
	samples := make([]int16, 8000*2)

	output := new(bytes.Buffer)
	if err := wav.WriteWAV16(output, 8000, 2, samples); err != nil {
		fmt.Printf("Write error: %v\n", err)
		return
	}

	data := output.Bytes()
	fmt.Printf("Wrote %d bytes\n", output.Len())
	fmt.Printf("Byte rate: %d\n", binary.LittleEndian.Uint32(data[28:32]))
	fmt.Printf("Data size: %d\n", binary.LittleEndian.Uint32(data[40:44]))
	// Output:
	// Wrote 32044 bytes
	// Byte rate: 32000
	// Data size: 32000
}

// Example_roundTrip encodes stereo frames and reads them back.
func Example_roundTrip() {
	original := []int16{-1000, 1000, -500, 500, 0, 0}

	data, err := wav.EncodeWAV16(8000, 2, original)
	if err != nil {
		fmt.Printf("Encode error: %v\n", err)
		return
	}

	source, err := wav.Decoder{}.Decode(bytes.NewReader(data))
	if err != nil {
		fmt.Printf("Decode error: %v\n", err)
		return
	}

	buf := make([]float32, len(original))
	n, err := source.ReadSamples(buf)
	if err != nil && err != io.EOF {
		fmt.Printf("Read error: %v\n", err)
		return
	}

	recovered := make([]int16, n)
	for i := range n {
		recovered[i] = utils.Float64ToInt16(float64(buf[i]))
	}

	fmt.Printf("Channels: %d\n", source.Channels())
	fmt.Printf("Recovered: %v\n", recovered)
	// Output:
	// Channels: 2
	// Recovered: [-1000 1000 -500 500 0 0]
}

// Example_errorNotWAV shows handling of invalid input.
func Example_errorNotWAV() {
	_, err := wav.Decoder{}.Decode(bytes.NewReader([]byte("This is not a WAV file at all")))
	if err == wav.ErrNotWavFile {
		fmt.Println("Detected: Not a valid WAV file")
	} else if err != nil {
		fmt.Printf("Other error: %v\n", err)
	}
	// Output: Detected: Not a valid WAV file
}
