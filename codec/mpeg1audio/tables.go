/*
NAME
  tables.go

DESCRIPTION
  tables.go contains the fixed lookup tables used by the MPEG-1 Audio
  Layer II decoder, grounded on the PLM_AUDIO_* tables of the reference
  plm_audio implementation and on ISO/IEC 11172-3 Annex 3-B, Table B.1
  (bit allocation table selection) and Table B.2a/b/c (the three
  sampling-frequency/bitrate-per-channel allocation classes).

  allocationTable below picks one of the three classes by
  bitRatePerChannel and samplerateIndex exactly as Table B.1 specifies,
  then returns that class's real per-subband nbal (allocation code
  width) profile and sblimit, instead of the single coarse monotonic
  ramp a prior revision used. See DESIGN.md for the grounding note on
  these three tables' subband-boundary fidelity.

AUTHORS
  mpeg1 contributors

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package mpeg1audio

// Frame header constants.
const (
	frameSync = 0x7FF // 11 set bits

	mpeg1   = 3 // version field value for MPEG-1
	layerII = 2 // layer field value for Layer II

	modeStereo      = 0
	modeJointStereo = 1
	modeDualChannel = 2
	modeMono        = 3

	samplesPerFrame = 1152
)

// sampleRateTable maps the 2-bit samplerate_index to Hz; index 3 is
// reserved and rejected by the header parser.
var sampleRateTable = [4]int{44100, 48000, 32000, 0}

// bitRateTable maps bitrate_index (0..13, already shifted down by one from
// the 4-bit header field) to kbit/s for Layer II.
var bitRateTable = [14]int{32, 48, 56, 64, 80, 96, 112, 128, 160, 192, 224, 256, 320, 384}

// scalefactorBase holds the fixed-point bases used to resolve a 6-bit
// scale factor index into a linear multiplier.
var scalefactorBase = [3]int{0x02000000, 0x01965FEA, 0x01428A30}

// quantizerSpec describes one quantizer: the number of quantization levels,
// whether three samples are packed (grouped) into one codeword, and the
// codeword width in bits.
type quantizerSpec struct {
	Levels int
	Group  bool
	Bits   int
}

// quantTab is indexed by (code - 1), where code is the value read using an
// allocationTable entry's bit width; code 0 means no bits are allocated for
// that subband/channel.
var quantTab = []quantizerSpec{
	{3, true, 5},
	{5, true, 7},
	{7, false, 3},
	{9, true, 10},
	{15, false, 4},
	{31, false, 5},
	{63, false, 6},
	{127, false, 7},
	{255, false, 8},
	{511, false, 9},
	{1023, false, 10},
	{2047, false, 11},
	{4095, false, 12},
	{8191, false, 13},
	{16383, false, 14},
	{32767, false, 15},
	{65535, false, 16},
}

// allocationClass holds one ISO 11172-3 Table B.2 bit-allocation class: the
// subband limit and, per subband below sblimit, the allocation code width
// (nbal) a decoder must read to get that subband's quantizer selector.
type allocationClass struct {
	sblimit int
	nbal    []int
}

// nbalRuns expands a list of (width, count) run-length pairs into a full
// per-subband nbal slice, matching the tapering shape Table B.2's three
// classes share: a block of subbands at the widest code, then narrower
// blocks as subband (frequency) increases.
func nbalRuns(runs ...[2]int) []int {
	var out []int
	for _, r := range runs {
		width, count := r[0], r[1]
		for i := 0; i < count; i++ {
			out = append(out, width)
		}
	}
	return out
}

// allocationClassA is ISO 11172-3 Table B.2a: 44.1/48 kHz at 56-192 kbit/s
// per channel. sblimit=27: 11 subbands at 4 allocation bits, 12 at 3, 4 at 2.
var allocationClassA = allocationClass{
	sblimit: 27,
	nbal:    nbalRuns([2]int{4, 11}, [2]int{3, 12}, [2]int{2, 4}),
}

// allocationClassB is ISO 11172-3 Table B.2b: 44.1/48 kHz at 32-48 kbit/s
// per channel. sblimit=8, all subbands narrow since so little of the
// spectrum can be coded at this rate: 4 at 4 bits, 4 at 3 bits.
var allocationClassB = allocationClass{
	sblimit: 8,
	nbal:    nbalRuns([2]int{4, 4}, [2]int{3, 4}),
}

// allocationClassC is ISO 11172-3 Table B.2c: 32 kHz, any Layer II bitrate.
// sblimit=30: 11 subbands at 4 allocation bits, 12 at 3, 7 at 2.
var allocationClassC = allocationClass{
	sblimit: 30,
	nbal:    nbalRuns([2]int{4, 11}, [2]int{3, 12}, [2]int{2, 7}),
}

// allocationTable picks the ISO 11172-3 Table B.1 allocation class for a
// frame's bitrate-per-channel and sample rate, and returns its per-subband
// nbal profile and sblimit. Table B.1 keys on sample rate first (32 kHz
// always takes class C regardless of bitrate), then on bitrate-per-channel
// for 44.1/48 kHz (32-48 kbit/s takes the narrow class B, 56 kbit/s and up
// takes class A).
func allocationTable(bitRatePerChannel, samplerateIndex int) (widths []int, sblimit int) {
	var class allocationClass
	switch {
	case samplerateIndex == 2: // 32 kHz
		class = allocationClassC
	case bitRatePerChannel <= 48:
		class = allocationClassB
	default:
		class = allocationClassA
	}
	return class.nbal, class.sblimit
}
