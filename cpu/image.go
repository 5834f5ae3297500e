package cpu

import (
	"errors"
	"fmt"
	"io"
	"os"
)

var (
	// ErrOddImage is returned for object data that is not a whole number of words.
	ErrOddImage = errors.New("image has an odd number of bytes")
	// ErrEmptyImage is returned when there is no origin word.
	ErrEmptyImage = errors.New("image has no origin word")
)

// Image is a program in object form: a load address and the cells stored from there.
type Image struct {
	Origin uint16
	Code   []uint16
}

// ReadImage reads a big-endian object file. The first word is the origin.
func ReadImage(r io.Reader) (Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Image{}, fmt.Errorf("reading image: %w", err)
	}
	return ParseImage(data)
}

// ParseImage decodes object file bytes.
func ParseImage(data []byte) (Image, error) {
	words, err := BytesToWords(data)
	if err != nil {
		return Image{}, err
	}
	if len(words) == 0 {
		return Image{}, ErrEmptyImage
	}
	img := Image{Origin: words[0], Code: words[1:]}
	if int(img.Origin)+len(img.Code) > MemorySize {
		return Image{}, fmt.Errorf("image of %d words at 0x%04X does not fit in memory", len(img.Code), img.Origin)
	}
	return img, nil
}

// Bytes encodes the image in object file form.
func (img Image) Bytes() []byte {
	words := make([]uint16, 0, len(img.Code)+1)
	words = append(words, img.Origin)
	words = append(words, img.Code...)
	return WordsToBytes(words)
}

// End is the first address after the image.
func (img Image) End() int {
	return int(img.Origin) + len(img.Code)
}

// Load copies an image into memory and points PC at its origin.
func (c *CPU) Load(img Image) {
	copy(c.Mem[img.Origin:], img.Code)
	c.PC = img.Origin
}

// LoadFile reads an object file from disk and loads it.
func (c *CPU) LoadFile(path string) (Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return Image{}, err
	}
	defer f.Close()

	img, err := ReadImage(f)
	if err != nil {
		return Image{}, fmt.Errorf("%s: %w", path, err)
	}
	c.Load(img)
	return img, nil
}
