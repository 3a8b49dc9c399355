package aethel

import (
	"encoding/binary"
	"fmt"
	"io"
	"time"
)

// Audio payload format returned by the speech model.
const (
	PCMSampleRate    = 24000
	PCMChannels      = 1
	PCMBitsPerSample = 16
)

// DecodePCM interprets data as little-endian signed 16-bit samples and
// normalizes each to [-1, 1) by dividing by 32768. A trailing odd byte is
// ignored.
func DecodePCM(data []byte) []float32 {
	out := make([]float32, len(data)/2)
	for i := range out {
		v := int16(binary.LittleEndian.Uint16(data[2*i:]))
		out[i] = float32(v) / 32768
	}
	return out
}

// PCMDuration returns the playing time of decoded mono samples.
func PCMDuration(samples []float32) time.Duration {
	return time.Duration(len(samples)) * time.Second / PCMSampleRate
}

// PCMPeak returns the largest absolute sample value, 0 for silence.
func PCMPeak(samples []float32) float32 {
	var peak float32
	for _, v := range samples {
		peak = max(peak, v, -v)
	}
	return peak
}

// EncodeWAV writes pcm as a RIFF/WAVE file with the speech model's format.
func EncodeWAV(w io.Writer, pcm []byte) error {
	const headerSize = 44
	byteRate := PCMSampleRate * PCMChannels * PCMBitsPerSample / 8
	blockAlign := PCMChannels * PCMBitsPerSample / 8

	h := make([]byte, headerSize)
	copy(h[0:], "RIFF")
	binary.LittleEndian.PutUint32(h[4:], uint32(headerSize-8+len(pcm)))
	copy(h[8:], "WAVE")
	copy(h[12:], "fmt ")
	binary.LittleEndian.PutUint32(h[16:], 16) // fmt chunk size
	binary.LittleEndian.PutUint16(h[20:], 1)  // PCM
	binary.LittleEndian.PutUint16(h[22:], PCMChannels)
	binary.LittleEndian.PutUint32(h[24:], PCMSampleRate)
	binary.LittleEndian.PutUint32(h[28:], uint32(byteRate))
	binary.LittleEndian.PutUint16(h[32:], uint16(blockAlign))
	binary.LittleEndian.PutUint16(h[34:], PCMBitsPerSample)
	copy(h[36:], "data")
	binary.LittleEndian.PutUint32(h[40:], uint32(len(pcm)))

	if _, err := w.Write(h); err != nil {
		return fmt.Errorf("write wav header: %w", err)
	}
	if _, err := w.Write(pcm); err != nil {
		return fmt.Errorf("write wav data: %w", err)
	}
	return nil
}
