//go:build linux || darwin

package altstack

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

var pageSize = os.Getpagesize()

// New maps a stack of at least size usable bytes, with one unreadable,
// unwritable guard page immediately on the overflow side (below the usable
// region, since every GOARCH corostack supports today grows its stack
// downward). size is rounded up to a whole number of pages.
func New(size int) (Stack, error) {
	if size <= 0 {
		return nil, fmt.Errorf("altstack: size must be positive, got %d", size)
	}

	usable := roundUp(size, pageSize)
	total := usable + pageSize // one leading guard page

	region, err := unix.Mmap(-1, 0, total, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, fmt.Errorf("altstack: mmap: %w", err)
	}

	guard := region[:pageSize]
	if err := unix.Mprotect(guard, unix.PROT_NONE); err != nil {
		_ = unix.Munmap(region)
		return nil, fmt.Errorf("altstack: mprotect guard page: %w", err)
	}

	return &unixStack{region: region, usable: region[pageSize:]}, nil
}

type unixStack struct {
	region []byte
	usable []byte
}

func (s *unixStack) Bytes() []byte { return s.usable }

func (s *unixStack) Close() error {
	if s.region == nil {
		return nil
	}
	region := s.region
	s.region, s.usable = nil, nil
	if err := unix.Munmap(region); err != nil {
		return fmt.Errorf("altstack: munmap: %w", err)
	}
	return nil
}

func roundUp(n, multiple int) int {
	if n%multiple == 0 {
		return n
	}
	return n + (multiple - n%multiple)
}
