// Package clipboard provides access to the system clipboard.
package clipboard

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/atotto/clipboard"
)

const errorCopyFormat = "copy to clipboard: %w"

// Copier copies textual data to the system clipboard.
type Copier interface {
	Copy(text string) error
}

// Service implements Copier using github.com/atotto/clipboard.
type Service struct{}

// NewService constructs a Clipboard service implementation.
func NewService() *Service {
	return &Service{}
}

// Copy writes text to the system clipboard.
func (service *Service) Copy(text string) error {
	return clipboard.WriteAll(text)
}

var _ Copier = (*Service)(nil)

// Buffer collects everything written to it and hands the text to a Copier on Flush.
type Buffer struct {
	mutex  sync.Mutex
	copier Copier
	buffer bytes.Buffer
}

// NewBuffer returns a Buffer that copies through copier.
func NewBuffer(copier Copier) *Buffer {
	return &Buffer{copier: copier}
}

// Write appends data to the pending clipboard contents.
func (clipboardBuffer *Buffer) Write(data []byte) (int, error) {
	clipboardBuffer.mutex.Lock()
	defer clipboardBuffer.mutex.Unlock()
	return clipboardBuffer.buffer.Write(data)
}

// Flush copies the accumulated text and resets the buffer. Nothing is copied
// when no data was written.
func (clipboardBuffer *Buffer) Flush() error {
	clipboardBuffer.mutex.Lock()
	defer clipboardBuffer.mutex.Unlock()
	if clipboardBuffer.buffer.Len() == 0 {
		return nil
	}
	text := clipboardBuffer.buffer.String()
	clipboardBuffer.buffer.Reset()
	if copyError := clipboardBuffer.copier.Copy(text); copyError != nil {
		return fmt.Errorf(errorCopyFormat, copyError)
	}
	return nil
}
