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

package spirv_test

import (
	"encoding/binary"
	"testing"

	"github.com/tracetooltests/vkusage/core/assert"
	"github.com/tracetooltests/vkusage/core/log"
	"github.com/tracetooltests/vkusage/core/vulkan/spirv"
)

func insn(op uint32, operands ...uint32) []uint32 {
	return append([]uint32{uint32(len(operands)+1)<<16 | op}, operands...)
}

func module(insns ...[]uint32) []uint32 {
	out := []uint32{spirv.Magic, 0x00010600, 0, 16, 0}
	for _, i := range insns {
		out = append(out, i...)
	}
	return out
}

func TestScanCapabilities(t *testing.T) {
	ctx := log.Testing(t)
	code := module(
		insn(spirv.OpCapability, uint32(spirv.Shader)),
		insn(spirv.OpCapability, uint32(spirv.Int64)),
		// "SPV_KHR_8bit_storage" packed into words
		insn(spirv.OpExtension, 0x5f565053, 0x5f52484b, 0x74696238, 0x6f74735f, 0x65676172, 0),
		insn(spirv.OpMemoryModel, 0, 1),
		insn(spirv.OpCapability, uint32(spirv.Float64)),
	)
	m, err := spirv.Scan(code, len(code)*4)
	assert.For(ctx, "err").ThatError(err).Succeeded()
	assert.For(ctx, "caps").ThatSlice(m.Capabilities).Equals([]spirv.Capability{spirv.Shader, spirv.Int64})
	assert.For(ctx, "exts").ThatSlice(m.Extensions).Equals([]string{"SPV_KHR_8bit_storage"})
}

func TestScanStopsAtByteLength(t *testing.T) {
	ctx := log.Testing(t)
	code := module(
		insn(spirv.OpCapability, uint32(spirv.Int16)),
		insn(spirv.OpCapability, uint32(spirv.Int8)),
	)
	m, err := spirv.Scan(code, (len(code)-2)*4)
	assert.For(ctx, "err").ThatError(err).Succeeded()
	assert.For(ctx, "caps").ThatSlice(m.Capabilities).Equals([]spirv.Capability{spirv.Int16})

	m, err = spirv.Scan(code, len(code)*4+64)
	assert.For(ctx, "bounded err").ThatError(err).Succeeded()
	assert.For(ctx, "bounded caps").ThatSlice(m.Capabilities).IsLength(2)
}

func TestScanZeroWordCount(t *testing.T) {
	ctx := log.Testing(t)
	code := module(
		insn(spirv.OpCapability, uint32(spirv.Float16)),
		[]uint32{spirv.OpCapability},
		insn(spirv.OpCapability, uint32(spirv.Int8)),
	)
	m, err := spirv.Scan(code, len(code)*4)
	assert.For(ctx, "err").ThatError(err).Equals(spirv.ErrZeroWordCount)
	assert.For(ctx, "caps").ThatSlice(m.Capabilities).Equals([]spirv.Capability{spirv.Float16})
}

func TestScanTruncated(t *testing.T) {
	ctx := log.Testing(t)
	code := module(insn(spirv.OpCapability, uint32(spirv.MinLod)))
	code = append(code, 4<<16|spirv.OpCapability, uint32(spirv.Int8))
	m, err := spirv.Scan(code, len(code)*4)
	assert.For(ctx, "err").ThatError(err).Equals(spirv.ErrTruncated)
	assert.For(ctx, "caps").ThatSlice(m.Capabilities).Equals([]spirv.Capability{spirv.MinLod})
}

func TestScanTooShort(t *testing.T) {
	ctx := log.Testing(t)
	_, err := spirv.Scan([]uint32{spirv.Magic, 0, 0}, 12)
	assert.For(ctx, "short").ThatError(err).Equals(spirv.ErrTooShort)
	_, err = spirv.Scan(module(), 19)
	assert.For(ctx, "odd bytes").ThatError(err).Equals(spirv.ErrTooShort)
	m, err := spirv.Scan(module(), 20)
	assert.For(ctx, "header only").ThatError(err).Succeeded()
	assert.For(ctx, "empty").ThatSlice(m.Capabilities).IsEmpty()
}

func TestScanTerminatesOnArbitraryInput(t *testing.T) {
	ctx := log.Testing(t)
	seed := uint32(2463534242)
	for round := 0; round < 200; round++ {
		code := make([]uint32, 5+round%37)
		for i := range code {
			seed ^= seed << 13
			seed ^= seed >> 17
			seed ^= seed << 5
			code[i] = seed
		}
		m, _ := spirv.Scan(code, len(code)*4)
		assert.For(ctx, "bounded").ThatInteger(len(m.Capabilities)).IsAtMost(len(code))
	}
}

func TestWords(t *testing.T) {
	ctx := log.Testing(t)
	code := module(insn(spirv.OpCapability, uint32(spirv.Int64)))
	le := make([]byte, len(code)*4)
	be := make([]byte, len(code)*4)
	for i, w := range code {
		binary.LittleEndian.PutUint32(le[i*4:], w)
		binary.BigEndian.PutUint32(be[i*4:], w)
	}
	got, err := spirv.Words(le)
	assert.For(ctx, "le err").ThatError(err).Succeeded()
	assert.For(ctx, "le").ThatSlice(got).Equals(code)
	got, err = spirv.Words(be)
	assert.For(ctx, "be err").ThatError(err).Succeeded()
	assert.For(ctx, "be").ThatSlice(got).Equals(code)

	_, err = spirv.Words(le[:len(le)-1])
	assert.For(ctx, "unaligned").ThatError(err).Equals(spirv.ErrUnaligned)
	_, err = spirv.Words(le[:8])
	assert.For(ctx, "short").ThatError(err).Equals(spirv.ErrTooShort)
	_, err = spirv.Words(make([]byte, 20))
	assert.For(ctx, "magic").ThatError(err).Equals(spirv.ErrBadMagic)
}

func TestCapabilityString(t *testing.T) {
	ctx := log.Testing(t)
	assert.For(ctx, "known").ThatString(spirv.DemoteToHelperInvocation).Equals("DemoteToHelperInvocation")
	assert.For(ctx, "unknown").ThatString(spirv.Capability(99999)).Equals("Capability(99999)")
}
