// RGBKB Core
// Copyright (c) 2026 The RGBKB Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of RGBKB Core.
//
// RGBKB Core is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// RGBKB Core is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with RGBKB Core.  If not, see <http://www.gnu.org/licenses/>.

package testutils

import (
	"errors"

	"github.com/rgbkb-project/rgbkb-core/pkg/keyboard"
)

var errMockWrite = errors.New("mock write failure")

// MockDevice records writes and supports error injection for testing the
// session's transmit path.
type MockDevice struct {
	WriteErr     error
	FailAtPacket int // 1-based index of the write that fails; 0 disables
	ShortWriteAt int // 1-based index of the write that reports len-1; 0 disables
	Writes       [][]byte
	Closed       bool
}

func (m *MockDevice) Write(p []byte) (int, error) {
	attempt := len(m.Writes) + 1
	if m.FailAtPacket != 0 && attempt == m.FailAtPacket {
		return 0, m.writeErr()
	}

	buf := make([]byte, len(p))
	copy(buf, p)
	m.Writes = append(m.Writes, buf)

	if m.ShortWriteAt != 0 && attempt == m.ShortWriteAt {
		return len(p) - 1, nil
	}
	return len(p), nil
}

func (m *MockDevice) writeErr() error {
	if m.WriteErr != nil {
		return m.WriteErr
	}
	return errMockWrite
}

func (m *MockDevice) Close() error {
	m.Closed = true
	return nil
}

// MockTransport is a keyboard.Transport backed by MockDevice.
type MockTransport struct {
	ListErr    error
	OpenErr    error
	Device     *MockDevice
	Candidates []keyboard.Candidate
	Opened     []string
}

// NewMockTransport returns a transport with a single candidate device.
func NewMockTransport() *MockTransport {
	return &MockTransport{
		Candidates: []keyboard.Candidate{{Path: "/dev/hidraw0", Product: "Mock Keyboard"}},
		Device:     &MockDevice{},
	}
}

func (m *MockTransport) ListCandidates() ([]keyboard.Candidate, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Candidates, nil
}

// Writes returns everything written to the transport's device, in order.
func (m *MockTransport) Writes() [][]byte {
	return m.Device.Writes
}

func (m *MockTransport) Open(path string) (keyboard.Device, error) {
	m.Opened = append(m.Opened, path)
	if m.OpenErr != nil {
		return nil, m.OpenErr
	}
	return m.Device, nil
}
