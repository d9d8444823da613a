package window

import (
	"image"

	"github.com/lixenwraith/fountain/render"
)

// imageIdleFrames is how many frames a GPU image may go unused before it is released
const imageIdleFrames = 120

type cacheEntry[T any] struct {
	img      T
	lastUsed uint64
}

// imageCache uploads each text buffer once and releases images that stop being drawn
type imageCache[T any] struct {
	entries map[*render.TextBuffer]*cacheEntry[T]
	frame   uint64
	create  func(*image.RGBA) T
	release func(T)
}

func newImageCache[T any](create func(*image.RGBA) T, release func(T)) *imageCache[T] {
	return &imageCache[T]{
		entries: make(map[*render.TextBuffer]*cacheEntry[T]),
		create:  create,
		release: release,
	}
}

// get returns the image for buf, creating it on first use
func (c *imageCache[T]) get(buf *render.TextBuffer) T {
	e, ok := c.entries[buf]
	if !ok {
		e = &cacheEntry[T]{img: c.create(buf.Image)}
		c.entries[buf] = e
	}
	e.lastUsed = c.frame
	return e.img
}

// endFrame advances the frame counter and evicts idle images
func (c *imageCache[T]) endFrame() {
	c.frame++
	for buf, e := range c.entries {
		if c.frame-e.lastUsed > imageIdleFrames {
			c.release(e.img)
			delete(c.entries, buf)
		}
	}
}

func (c *imageCache[T]) len() int {
	return len(c.entries)
}

// clear releases every cached image
func (c *imageCache[T]) clear() {
	for buf, e := range c.entries {
		c.release(e.img)
		delete(c.entries, buf)
	}
}
