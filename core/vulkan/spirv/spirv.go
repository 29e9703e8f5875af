// Copyright (C) 2025 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package spirv decodes the capability declarations of SPIR-V modules.
//
// It is not a validator. Only the module header layout and the OpCapability
// and OpExtension instructions that precede OpMemoryModel are understood.
package spirv

import (
	"encoding/binary"

	"github.com/tracetooltests/vkusage/core/fault"
)

const (
	// Magic is the first word of every SPIR-V module.
	Magic = uint32(0x07230203)
	// HeaderWords is the length of the module header in words.
	HeaderWords = 5

	OpExtension   = uint32(10)
	OpMemoryModel = uint32(14)
	OpCapability  = uint32(17)
)

const (
	ErrTooShort      = fault.Const("SPIR-V module is shorter than its header")
	ErrZeroWordCount = fault.Const("SPIR-V instruction has a zero word count")
	ErrTruncated     = fault.Const("SPIR-V instruction runs past the end of the module")
	ErrUnaligned     = fault.Const("SPIR-V module size is not a multiple of 4")
	ErrBadMagic      = fault.Const("SPIR-V module has an invalid magic number")
)

// Module holds what a scan recovered from a SPIR-V module.
type Module struct {
	Capabilities []Capability
	Extensions   []string
}

// Scan decodes the capability declarations of code. byteLen is the module
// size in bytes as passed to vkCreateShaderModule; it is converted to words
// and bounded by len(code).
//
// Scanning stops at the first OpMemoryModel or at the end of the module. A
// zero word count or an instruction that runs past the end also stops the
// scan, in which case the declarations decoded so far are returned together
// with ErrZeroWordCount or ErrTruncated. Each step advances by at least one
// word, so Scan always terminates.
func Scan(code []uint32, byteLen int) (Module, error) {
	words := byteLen / 4
	if words > len(code) {
		words = len(code)
	}
	m := Module{}
	if words < HeaderWords {
		return m, ErrTooShort
	}
	for i := HeaderWords; i < words; {
		opcode := code[i] & 0xffff
		count := int(code[i] >> 16)
		switch {
		case count == 0:
			return m, ErrZeroWordCount
		case i+count > words:
			return m, ErrTruncated
		}
		operands := code[i+1 : i+count]
		switch opcode {
		case OpCapability:
			if len(operands) > 0 {
				m.Capabilities = append(m.Capabilities, Capability(operands[0]))
			}
		case OpExtension:
			m.Extensions = append(m.Extensions, literalString(operands))
		case OpMemoryModel:
			return m, nil
		}
		i += count
	}
	return m, nil
}

// literalString decodes a nul terminated UTF-8 literal packed little end
// first into words.
func literalString(words []uint32) string {
	buf := make([]byte, 0, len(words)*4)
	for _, w := range words {
		for shift := uint(0); shift < 32; shift += 8 {
			c := byte(w >> shift)
			if c == 0 {
				return string(buf)
			}
			buf = append(buf, c)
		}
	}
	return string(buf)
}

// Words converts a SPIR-V file image into words, detecting the byte order
// from the magic number.
func Words(data []byte) ([]uint32, error) {
	if len(data)%4 != 0 {
		return nil, ErrUnaligned
	}
	if len(data) < HeaderWords*4 {
		return nil, ErrTooShort
	}
	var order binary.ByteOrder
	switch {
	case binary.LittleEndian.Uint32(data) == Magic:
		order = binary.LittleEndian
	case binary.BigEndian.Uint32(data) == Magic:
		order = binary.BigEndian
	default:
		return nil, ErrBadMagic
	}
	out := make([]uint32, len(data)/4)
	for i := range out {
		out[i] = order.Uint32(data[i*4:])
	}
	return out, nil
}
