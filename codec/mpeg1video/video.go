/*
NAME
  video.go

DESCRIPTION
  video.go implements a decoder for MPEG-1 Video (ISO/IEC 11172-2)
  elementary streams, grounded directly on the plm_video_t functions of the
  reference pl_mpeg implementation, restyled on github.com/ausocean/av's
  codec/h264/h264dec decoder conventions.

AUTHORS
  mpeg1 contributors

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package mpeg1video decodes an MPEG-1 Video elementary stream into a
// sequence of planar YCbCr frames.
package mpeg1video

import (
	"github.com/ausocean/mpeg1/bitbuf"
	"github.com/ausocean/mpeg1/internal/logging"
)

// Start-code constants for the video elementary stream.
const (
	startSequence  = 0xB3
	startSliceFirst = 0x01
	startSliceLast  = 0xAF
	startPicture   = 0x00
	startExtension = 0xB5
	startUserData  = 0xB2
)

func isSlice(code int) bool {
	return code >= startSliceFirst && code <= startSliceLast
}

// motionVector holds one direction's (forward or backward) motion state.
type motionVector struct {
	FullPX bool
	IsSet  bool
	RSize  int
	H, V   int
}

// Decoder decodes an MPEG-1 Video elementary stream, maintaining the three
// rotating reference frames (current, forward, backward) needed for P and
// B picture prediction.
type Decoder struct {
	buf              *bitbuf.BitBuffer
	log              logging.Logger
	closeBufWhenDone bool

	framerate     float64
	time          float64
	framesDecoded int

	width, height              int
	mbWidth, mbHeight, mbSize  int
	lumaWidth, lumaHeight      int
	chromaWidth, chromaHeight  int

	startCode   int
	pictureType int

	motionForward  motionVector
	motionBackward motionVector

	hasSequenceHeader bool

	quantizerScale    int
	sliceBegin        bool
	macroblockAddress int

	mbRow, mbCol int

	macroblockType  int
	macroblockIntra bool

	dcPredictor [3]int

	framesData                                 []uint8
	frameCurrent, frameForward, frameBackward Frame

	blockData           [64]int
	intraQuantMatrix    [64]uint8
	nonIntraQuantMatrix [64]uint8

	hasReferenceFrame bool
	assumeNoBFrames   bool
}

// New wraps buf in a Decoder and attempts to decode the sequence header
// immediately, mirroring plm_video_create_with_buffer. If closeBufWhenDone
// is true, Close also closes buf.
func New(buf *bitbuf.BitBuffer, closeBufWhenDone bool, log logging.Logger) *Decoder {
	if log == nil {
		log = logging.NoLog{}
	}
	d := &Decoder{
		buf:              buf,
		log:              log,
		closeBufWhenDone: closeBufWhenDone,
		startCode:        bitbuf.StartCodeNone,
	}
	d.startCode = d.buf.FindStartCode(startSequence)
	if d.startCode != bitbuf.StartCodeNone {
		d.decodeSequenceHeader()
	}
	return d
}

// Close closes the underlying buffer if this Decoder owns it.
func (d *Decoder) Close() error {
	if d.closeBufWhenDone {
		return d.buf.Close()
	}
	return nil
}

// GetFramerate returns the sequence's frames-per-second, or 0 if no
// sequence header has been decoded yet.
func (d *Decoder) GetFramerate() float64 {
	if !d.HasHeader() {
		return 0
	}
	return d.framerate
}

// GetWidth returns the coded picture width, or 0 if no sequence header has
// been decoded yet.
func (d *Decoder) GetWidth() int {
	if !d.HasHeader() {
		return 0
	}
	return d.width
}

// GetHeight returns the coded picture height, or 0 if no sequence header
// has been decoded yet.
func (d *Decoder) GetHeight() int {
	if !d.HasHeader() {
		return 0
	}
	return d.height
}

// SetAssumeNoBFrames tells the decoder the stream contains no B pictures,
// eliminating one frame of latency by always returning frameBackward
// instead of holding a reference frame back to pair with a future
// B-picture. The setting applies to every picture: on a stream that does
// contain B pictures, frameBackward is returned in place of each B picture.
func (d *Decoder) SetAssumeNoBFrames(v bool) {
	d.assumeNoBFrames = v
}

// GetTime returns the presentation time, in seconds, of the most recently
// decoded frame.
func (d *Decoder) GetTime() float64 {
	return d.time
}

// SetTime sets the decoder's notion of current time, recomputing
// framesDecoded from the framerate so subsequent Decode calls advance time
// consistently.
func (d *Decoder) SetTime(t float64) {
	d.framesDecoded = int(d.framerate * t)
	d.time = t
}

// Rewind seeks the underlying buffer back to the start and resets all
// decode-position state.
func (d *Decoder) Rewind() {
	d.buf.Rewind()
	d.time = 0
	d.framesDecoded = 0
	d.hasReferenceFrame = false
	d.startCode = bitbuf.StartCodeNone
}

// HasEnded reports whether the underlying buffer has been fully consumed.
func (d *Decoder) HasEnded() bool {
	return d.buf.HasEnded()
}

// HasHeader reports whether the sequence header has been decoded,
// attempting to decode it if not.
func (d *Decoder) HasHeader() bool {
	if d.hasSequenceHeader {
		return true
	}
	if d.startCode != startSequence {
		d.startCode = d.buf.FindStartCode(startSequence)
	}
	if d.startCode == bitbuf.StartCodeNone {
		return false
	}
	return d.decodeSequenceHeader()
}

// Decode decodes and returns the next frame in presentation order, or nil
// if a full picture is not yet available or the stream has ended. Unless
// assumeNoBFrames is set, decode is one frame behind picture order to hold
// the most recent I/P picture back as a prediction reference for a
// following B picture; the held frame is released once the stream ends.
func (d *Decoder) Decode() *Frame {
	if !d.HasHeader() {
		return nil
	}

	var frame *Frame
	for frame == nil {
		if d.startCode != startPicture {
			d.startCode = d.buf.FindStartCode(startPicture)
			if d.startCode == bitbuf.StartCodeNone {
				if d.hasReferenceFrame && !d.assumeNoBFrames && d.buf.HasEnded() &&
					(d.pictureType == pictureTypeIntra || d.pictureType == pictureTypePredictive) {
					d.hasReferenceFrame = false
					frame = &d.frameBackward
					break
				}
				return nil
			}
		}

		// Make sure a full picture is available before decoding it; this can
		// only be done by locating the start of the next picture.
		if !d.buf.HasStartCode(startPicture) && !d.buf.HasEnded() {
			return nil
		}

		d.decodePicture()

		switch {
		case d.assumeNoBFrames:
			frame = &d.frameBackward
		case d.pictureType == pictureTypeB:
			frame = &d.frameCurrent
		case d.hasReferenceFrame:
			frame = &d.frameForward
		default:
			d.hasReferenceFrame = true
		}
	}

	frame.Time = d.time
	d.framesDecoded++
	d.time = float64(d.framesDecoded) / d.framerate
	return frame
}

// decodeSequenceHeader parses the sequence_header syntax element and
// allocates the three rotating reference frames. Returns false if not
// enough data is buffered yet.
func (d *Decoder) decodeSequenceHeader() bool {
	const maxHeaderSize = 64 + 2*64*8 // 64-bit header + 2x 64-byte matrix
	if !d.buf.Has(maxHeaderSize) {
		return false
	}

	d.width = int(d.buf.Read(12))
	d.height = int(d.buf.Read(12))
	if d.width <= 0 || d.height <= 0 {
		return false
	}

	d.buf.Skip(4) // pixel aspect ratio
	d.framerate = pictureRateTable[d.buf.Read(4)]
	d.buf.Skip(18 + 1 + 10 + 1) // bit_rate, marker, buffer_size, constrained bit

	if d.buf.Read(1) != 0 {
		for i := 0; i < 64; i++ {
			d.intraQuantMatrix[zigZag[i]] = uint8(d.buf.Read(8))
		}
	} else {
		copy(d.intraQuantMatrix[:], intraQuantMatrixDefault)
	}

	if d.buf.Read(1) != 0 {
		for i := 0; i < 64; i++ {
			d.nonIntraQuantMatrix[zigZag[i]] = uint8(d.buf.Read(8))
		}
	} else {
		for i := range d.nonIntraQuantMatrix {
			d.nonIntraQuantMatrix[i] = 16
		}
	}

	d.mbWidth = (d.width + 15) >> 4
	d.mbHeight = (d.height + 15) >> 4
	d.mbSize = d.mbWidth * d.mbHeight

	d.lumaWidth = d.mbWidth << 4
	d.lumaHeight = d.mbHeight << 4
	d.chromaWidth = d.mbWidth << 3
	d.chromaHeight = d.mbHeight << 3

	lumaPlaneSize := d.lumaWidth * d.lumaHeight
	chromaPlaneSize := d.chromaWidth * d.chromaHeight
	frameDataSize := lumaPlaneSize + 2*chromaPlaneSize

	d.framesData = make([]uint8, frameDataSize*3)
	d.initFrame(&d.frameCurrent, d.framesData[frameDataSize*0:])
	d.initFrame(&d.frameForward, d.framesData[frameDataSize*1:])
	d.initFrame(&d.frameBackward, d.framesData[frameDataSize*2:])

	d.hasSequenceHeader = true
	return true
}

// initFrame slices base, the start of one frame's share of the contiguous
// three-frame allocation, into its Y, Cr and Cb planes.
func (d *Decoder) initFrame(frame *Frame, base []uint8) {
	lumaPlaneSize := d.lumaWidth * d.lumaHeight
	chromaPlaneSize := d.chromaWidth * d.chromaHeight

	frame.Width = d.width
	frame.Height = d.height

	frame.Y.Width = d.lumaWidth
	frame.Y.Height = d.lumaHeight
	frame.Y.Data = base[:lumaPlaneSize]

	frame.Cr.Width = d.chromaWidth
	frame.Cr.Height = d.chromaHeight
	frame.Cr.Data = base[lumaPlaneSize : lumaPlaneSize+chromaPlaneSize]

	frame.Cb.Width = d.chromaWidth
	frame.Cb.Height = d.chromaHeight
	frame.Cb.Data = base[lumaPlaneSize+chromaPlaneSize : lumaPlaneSize+2*chromaPlaneSize]
}

// decodePicture parses picture_header/picture_coding_extension and decodes
// every slice of the picture, rotating the reference frames on completion
// if this was an I or P picture.
func (d *Decoder) decodePicture() {
	d.buf.Skip(10) // temporal_reference
	d.pictureType = int(d.buf.Read(3))
	d.buf.Skip(16) // vbv_delay

	if d.pictureType <= 0 || d.pictureType > pictureTypeB {
		return // D frames or unknown coding type
	}

	if d.pictureType == pictureTypePredictive || d.pictureType == pictureTypeB {
		d.motionForward.FullPX = d.buf.Read(1) != 0
		fCode := int(d.buf.Read(3))
		if fCode == 0 {
			return // ignore picture with zero f_code
		}
		d.motionForward.RSize = fCode - 1
	}

	if d.pictureType == pictureTypeB {
		d.motionBackward.FullPX = d.buf.Read(1) != 0
		fCode := int(d.buf.Read(3))
		if fCode == 0 {
			return
		}
		d.motionBackward.RSize = fCode - 1
	}

	frameTemp := d.frameForward
	if d.pictureType == pictureTypeIntra || d.pictureType == pictureTypePredictive {
		d.frameForward = d.frameBackward
	}

	// Find the first slice start code, skipping extension and user data.
	for {
		d.startCode = d.buf.NextStartCode()
		if d.startCode != startExtension && d.startCode != startUserData {
			break
		}
	}

	for isSlice(d.startCode) {
		d.decodeSlice(d.startCode & 0xFF)
		if d.macroblockAddress >= d.mbSize-2 {
			break
		}
		d.startCode = d.buf.NextStartCode()
	}

	if d.pictureType == pictureTypeIntra || d.pictureType == pictureTypePredictive {
		d.frameBackward = d.frameCurrent
		d.frameCurrent = frameTemp
	}
}

// decodeSlice decodes one slice, a run of macroblocks starting at the row
// given by slice (1-based), terminating once the whole macroblock grid or
// the next start code is reached.
func (d *Decoder) decodeSlice(slice int) {
	d.sliceBegin = true
	d.macroblockAddress = (slice-1)*d.mbWidth - 1

	d.motionForward.H, d.motionForward.V = 0, 0
	d.motionBackward.H, d.motionBackward.V = 0, 0
	d.dcPredictor[0] = 128
	d.dcPredictor[1] = 128
	d.dcPredictor[2] = 128

	d.quantizerScale = int(d.buf.Read(5))

	for d.buf.Read(1) != 0 {
		d.buf.Skip(8) // extra_bit_slice / extra_information_slice
	}

	for {
		d.decodeMacroblock()
		if d.macroblockAddress >= d.mbSize-1 || !d.buf.PeekNonZero(23) {
			break
		}
	}
}

// decodeMacroblock decodes one macroblock_address_increment, synthesizing
// any skipped macroblocks along the way, then the macroblock's type,
// motion vectors and coded blocks.
func (d *Decoder) decodeMacroblock() {
	increment := 0
	t := int(d.buf.ReadVLC(macroblockAddressIncrementTable))
	for t == 34 { // macroblock_stuffing
		t = int(d.buf.ReadVLC(macroblockAddressIncrementTable))
	}
	for t == 35 { // macroblock_escape
		increment += 33
		t = int(d.buf.ReadVLC(macroblockAddressIncrementTable))
	}
	increment += t

	if d.sliceBegin {
		// The first increment of a slice is relative to the start of the
		// previous row, not the previous macroblock.
		d.sliceBegin = false
		d.macroblockAddress += increment
	} else {
		if d.macroblockAddress+increment >= d.mbSize {
			return // invalid
		}
		if increment > 1 {
			d.dcPredictor[0] = 128
			d.dcPredictor[1] = 128
			d.dcPredictor[2] = 128
			if d.pictureType == pictureTypePredictive {
				d.motionForward.H, d.motionForward.V = 0, 0
			}
		}
		for increment > 1 {
			d.macroblockAddress++
			d.mbRow = d.macroblockAddress / d.mbWidth
			d.mbCol = d.macroblockAddress % d.mbWidth
			d.predictMacroblock()
			increment--
		}
		d.macroblockAddress++
	}

	d.mbRow = d.macroblockAddress / d.mbWidth
	d.mbCol = d.macroblockAddress % d.mbWidth
	if d.mbCol >= d.mbWidth || d.mbRow >= d.mbHeight {
		return // corrupt stream
	}

	table := macroblockTypeTables[d.pictureType]
	d.macroblockType = int(d.buf.ReadVLC(table))

	d.macroblockIntra = d.macroblockType&0x01 != 0
	d.motionForward.IsSet = d.macroblockType&0x08 != 0
	d.motionBackward.IsSet = d.macroblockType&0x04 != 0

	if d.macroblockType&0x10 != 0 {
		d.quantizerScale = int(d.buf.Read(5))
	}

	if d.macroblockIntra {
		d.motionBackward.H, d.motionForward.H = 0, 0
		d.motionBackward.V, d.motionForward.V = 0, 0
	} else {
		d.dcPredictor[0] = 128
		d.dcPredictor[1] = 128
		d.dcPredictor[2] = 128
		d.decodeMotionVectors()
		d.predictMacroblock()
	}

	var cbp int
	if d.macroblockType&0x02 != 0 {
		cbp = int(d.buf.ReadVLC(codeBlockPatternTable))
	} else if d.macroblockIntra {
		cbp = 0x3f
	}

	mask := 0x20
	for block := 0; block < 6; block++ {
		if cbp&mask != 0 {
			d.decodeBlock(block)
		}
		mask >>= 1
	}
}

// decodeMotionVectors decodes the forward and/or backward motion vectors
// for the current macroblock.
func (d *Decoder) decodeMotionVectors() {
	if d.motionForward.IsSet {
		d.motionForward.H = d.decodeMotionVector(d.motionForward.RSize, d.motionForward.H)
		d.motionForward.V = d.decodeMotionVector(d.motionForward.RSize, d.motionForward.V)
	} else if d.pictureType == pictureTypePredictive {
		d.motionForward.H, d.motionForward.V = 0, 0
	}

	if d.motionBackward.IsSet {
		d.motionBackward.H = d.decodeMotionVector(d.motionBackward.RSize, d.motionBackward.H)
		d.motionBackward.V = d.decodeMotionVector(d.motionBackward.RSize, d.motionBackward.V)
	}
}

// decodeMotionVector decodes one motion vector component relative to
// motion (the previous value for the same direction and axis), wrapping
// the result into the range the r_size-derived scale allows.
func (d *Decoder) decodeMotionVector(rSize, motion int) int {
	fscale := 1 << rSize
	mCode := int(d.buf.ReadVLC(motionTable))

	var delta int
	if mCode != 0 && fscale != 1 {
		r := int(d.buf.Read(rSize))
		delta = ((abs(mCode) - 1) << rSize) + r + 1
		if mCode < 0 {
			delta = -delta
		}
	} else {
		delta = mCode
	}

	motion += delta
	if motion > (fscale<<4)-1 {
		motion -= fscale << 5
	} else if motion < (-fscale)<<4 {
		motion += fscale << 5
	}
	return motion
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// predictMacroblock copies or interpolates the current macroblock from the
// forward/backward reference frames according to picture type and which
// motion directions are set.
func (d *Decoder) predictMacroblock() {
	fwH, fwV := d.motionForward.H, d.motionForward.V
	if d.motionForward.FullPX {
		fwH <<= 1
		fwV <<= 1
	}

	if d.pictureType == pictureTypeB {
		bwH, bwV := d.motionBackward.H, d.motionBackward.V
		if d.motionBackward.FullPX {
			bwH <<= 1
			bwV <<= 1
		}

		if d.motionForward.IsSet {
			d.copyMacroblock(&d.frameForward, fwH, fwV)
			if d.motionBackward.IsSet {
				d.interpolateMacroblock(&d.frameBackward, bwH, bwV)
			}
		} else {
			d.copyMacroblock(&d.frameBackward, bwH, bwV)
		}
	} else {
		d.copyMacroblock(&d.frameForward, fwH, fwV)
	}
}

func (d *Decoder) copyMacroblock(s *Frame, motionH, motionV int) {
	dst := &d.frameCurrent
	d.processMacroblock(s.Y.Data, dst.Y.Data, motionH, motionV, 16, false)
	d.processMacroblock(s.Cr.Data, dst.Cr.Data, motionH/2, motionV/2, 8, false)
	d.processMacroblock(s.Cb.Data, dst.Cb.Data, motionH/2, motionV/2, 8, false)
}

func (d *Decoder) interpolateMacroblock(s *Frame, motionH, motionV int) {
	dst := &d.frameCurrent
	d.processMacroblock(s.Y.Data, dst.Y.Data, motionH, motionV, 16, true)
	d.processMacroblock(s.Cr.Data, dst.Cr.Data, motionH/2, motionV/2, 8, true)
	d.processMacroblock(s.Cb.Data, dst.Cb.Data, motionH/2, motionV/2, 8, true)
}

// processMacroblock copies one block_size x block_size block from s into
// dst at the current (mbRow, mbCol), offset by the motion vector and
// optionally averaged with the existing dst contents (interpolate, used
// for bidirectionally predicted B-picture macroblocks).
func (d *Decoder) processMacroblock(s, dst []uint8, motionH, motionV, blockSize int, interpolate bool) {
	dw := d.mbWidth * blockSize

	hp := motionH >> 1
	vp := motionV >> 1
	oddH := motionH&1 == 1
	oddV := motionV&1 == 1

	si := (d.mbRow*blockSize+vp)*dw + d.mbCol*blockSize + hp
	di := (d.mbRow*dw + d.mbCol) * blockSize

	maxAddress := dw*(d.mbHeight*blockSize-blockSize+1) - blockSize
	if uint32(si) > uint32(maxAddress) || uint32(di) > uint32(maxAddress) {
		return // corrupt video
	}

	var op func(si, di int) uint8
	switch {
	case !interpolate && !oddH && !oddV:
		op = func(si, di int) uint8 { return s[si] }
	case !interpolate && !oddH && oddV:
		op = func(si, di int) uint8 { return uint8((int(s[si]) + int(s[si+dw]) + 1) >> 1) }
	case !interpolate && oddH && !oddV:
		op = func(si, di int) uint8 { return uint8((int(s[si]) + int(s[si+1]) + 1) >> 1) }
	case !interpolate && oddH && oddV:
		op = func(si, di int) uint8 {
			return uint8((int(s[si]) + int(s[si+1]) + int(s[si+dw]) + int(s[si+dw+1]) + 2) >> 2)
		}
	case interpolate && !oddH && !oddV:
		op = func(si, di int) uint8 { return uint8((int(dst[di]) + int(s[si]) + 1) >> 1) }
	case interpolate && !oddH && oddV:
		op = func(si, di int) uint8 {
			return uint8((int(dst[di]) + ((int(s[si]) + int(s[si+dw]) + 1) >> 1) + 1) >> 1)
		}
	case interpolate && oddH && !oddV:
		op = func(si, di int) uint8 {
			return uint8((int(dst[di]) + ((int(s[si]) + int(s[si+1]) + 1) >> 1) + 1) >> 1)
		}
	default:
		op = func(si, di int) uint8 {
			sum := int(s[si]) + int(s[si+1]) + int(s[si+dw]) + int(s[si+dw+1]) + 2
			return uint8((int(dst[di]) + (sum >> 2) + 1) >> 1)
		}
	}

	scan := dw - blockSize
	for y := 0; y < blockSize; y++ {
		for x := 0; x < blockSize; x++ {
			dst[di] = op(si, di)
			si++
			di++
		}
		si += scan
		di += scan
	}
}

// decodeBlock decodes one 8x8 block (4 luma + 1 Cb + 1 Cr per macroblock),
// dequantizes it and writes or adds it into the destination plane at the
// block's position.
func (d *Decoder) decodeBlock(block int) {
	n := 0
	var quantMatrix [64]uint8

	if d.macroblockIntra {
		planeIndex := 0
		if block > 3 {
			planeIndex = block - 3
		}
		predictor := d.dcPredictor[planeIndex]
		dctSize := int(d.buf.ReadVLC(dctSizeTables[planeIndex]))

		if dctSize > 0 {
			differential := int(d.buf.Read(dctSize))
			if differential&(1<<(dctSize-1)) != 0 {
				d.blockData[0] = predictor + differential
			} else {
				d.blockData[0] = predictor + (-(1 << dctSize) | (differential + 1))
			}
		} else {
			d.blockData[0] = predictor
		}
		d.dcPredictor[planeIndex] = d.blockData[0]

		d.blockData[0] <<= 3 + 5 // dequantize + premultiply

		quantMatrix = d.intraQuantMatrix
		n = 1
	} else {
		quantMatrix = d.nonIntraQuantMatrix
	}

	level := 0
	for {
		run := 0
		coeff := d.buf.ReadVLCUint(dctCoeffTable)

		if coeff == 0x0001 && n > 0 && d.buf.Read(1) == 0 {
			break // end_of_block
		}
		if coeff == 0xffff {
			run = int(d.buf.Read(6))
			level = int(d.buf.Read(8))
			switch {
			case level == 0:
				level = int(d.buf.Read(8))
			case level == 128:
				level = int(d.buf.Read(8)) - 256
			case level > 128:
				level -= 256
			}
		} else {
			run = int(coeff >> 8)
			level = int(coeff & 0xff)
			if d.buf.Read(1) != 0 {
				level = -level
			}
		}

		n += run
		if n < 0 || n >= 64 {
			return // invalid
		}

		deZigZagged := int(zigZag[n])
		n++

		level <<= 1
		if !d.macroblockIntra {
			if level < 0 {
				level--
			} else {
				level++
			}
		}
		level = (level * d.quantizerScale * int(quantMatrix[deZigZagged])) >> 4
		if level&1 == 0 {
			if level > 0 {
				level--
			} else {
				level++
			}
		}
		if level > 2047 {
			level = 2047
		} else if level < -2048 {
			level = -2048
		}

		d.blockData[deZigZagged] = level * int(premultiplierMatrix[deZigZagged])
	}

	var dst []uint8
	var dw, di int
	if block < 4 {
		dst = d.frameCurrent.Y.Data
		dw = d.lumaWidth
		di = (d.mbRow*d.lumaWidth + d.mbCol) << 4
		if block&1 != 0 {
			di += 8
		}
		if block&2 != 0 {
			di += d.lumaWidth << 3
		}
	} else {
		if block == 4 {
			dst = d.frameCurrent.Cb.Data
		} else {
			dst = d.frameCurrent.Cr.Data
		}
		dw = d.chromaWidth
		di = ((d.mbRow * d.lumaWidth) << 2) + (d.mbCol << 3)
	}

	if d.macroblockIntra {
		if n == 1 {
			clamped := clampByte((d.blockData[0] + 128) >> 8)
			blockSet(dst, di, dw, clamped)
			d.blockData[0] = 0
		} else {
			idct(&d.blockData)
			blockSetFrom(dst, di, dw, d.blockData[:])
			d.blockData = [64]int{}
		}
	} else {
		if n == 1 {
			value := (d.blockData[0] + 128) >> 8
			blockAdd(dst, di, dw, value)
			d.blockData[0] = 0
		} else {
			idct(&d.blockData)
			blockAddFrom(dst, di, dw, d.blockData[:])
			d.blockData = [64]int{}
		}
	}
}

// blockSet writes the constant value v into every sample of an 8x8 block
// at di within a plane of width dw (used when only a DC coefficient is
// present in an intra block).
func blockSet(dst []uint8, di, dw int, v uint8) {
	scan := dw - 8
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			dst[di] = v
			di++
		}
		di += scan
	}
}

// blockSetFrom overwrites an 8x8 block at di with the clamped contents of
// block (row-major, 64 entries).
func blockSetFrom(dst []uint8, di, dw int, block []int) {
	scan := dw - 8
	si := 0
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			dst[di] = clampByte(block[si])
			si++
			di++
		}
		di += scan
	}
}

// blockAdd adds the constant value v to every sample of an 8x8 block at di
// (used when only a DC coefficient is present in a non-intra block).
func blockAdd(dst []uint8, di, dw, v int) {
	scan := dw - 8
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			dst[di] = clampByte(int(dst[di]) + v)
			di++
		}
		di += scan
	}
}

// blockAddFrom adds the contents of block to an 8x8 block at di, clamping
// each sum to [0, 255].
func blockAddFrom(dst []uint8, di, dw int, block []int) {
	scan := dw - 8
	si := 0
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			dst[di] = clampByte(int(dst[di]) + block[si])
			si++
			di++
		}
		di += scan
	}
}

func clampByte(n int) uint8 {
	if n > 255 {
		return 255
	}
	if n < 0 {
		return 0
	}
	return uint8(n)
}

// idct performs an in-place separable 8x8 inverse discrete cosine
// transform using the fixed integer coefficients 473, 196 and 362.
func idct(block *[64]int) {
	var b1, b3, b4, b6, b7, tmp1, tmp2, m0 int
	var x0, x1, x2, x3, x4, y3, y4, y5, y6, y7 int

	// Transform columns.
	for i := 0; i < 8; i++ {
		b1 = block[4*8+i]
		b3 = block[2*8+i] + block[6*8+i]
		b4 = block[5*8+i] - block[3*8+i]
		tmp1 = block[1*8+i] + block[7*8+i]
		tmp2 = block[3*8+i] + block[5*8+i]
		b6 = block[1*8+i] - block[7*8+i]
		b7 = tmp1 + tmp2
		m0 = block[0*8+i]
		x4 = ((b6*473 - b4*196 + 128) >> 8) - b7
		x0 = x4 - (((tmp1-tmp2)*362 + 128) >> 8)
		x1 = m0 - b1
		x2 = (((block[2*8+i] - block[6*8+i]) * 362 + 128) >> 8) - b3
		x3 = m0 + b1
		y3 = x1 + x2
		y4 = x3 + b3
		y5 = x1 - x2
		y6 = x3 - b3
		y7 = -x0 - ((b4*473 + b6*196 + 128) >> 8)
		block[0*8+i] = b7 + y4
		block[1*8+i] = x4 + y3
		block[2*8+i] = y5 - x0
		block[3*8+i] = y6 - y7
		block[4*8+i] = y6 + y7
		block[5*8+i] = x0 + y5
		block[6*8+i] = y3 - x4
		block[7*8+i] = y4 - b7
	}

	// Transform rows.
	for i := 0; i < 64; i += 8 {
		b1 = block[4+i]
		b3 = block[2+i] + block[6+i]
		b4 = block[5+i] - block[3+i]
		tmp1 = block[1+i] + block[7+i]
		tmp2 = block[3+i] + block[5+i]
		b6 = block[1+i] - block[7+i]
		b7 = tmp1 + tmp2
		m0 = block[0+i]
		x4 = ((b6*473 - b4*196 + 128) >> 8) - b7
		x0 = x4 - (((tmp1-tmp2)*362 + 128) >> 8)
		x1 = m0 - b1
		x2 = (((block[2+i] - block[6+i]) * 362 + 128) >> 8) - b3
		x3 = m0 + b1
		y3 = x1 + x2
		y4 = x3 + b3
		y5 = x1 - x2
		y6 = x3 - b3
		y7 = -x0 - ((b4*473 + b6*196 + 128) >> 8)
		block[0+i] = (b7 + y4 + 128) >> 8
		block[1+i] = (x4 + y3 + 128) >> 8
		block[2+i] = (y5 - x0 + 128) >> 8
		block[3+i] = (y6 - y7 + 128) >> 8
		block[4+i] = (y6 + y7 + 128) >> 8
		block[5+i] = (x0 + y5 + 128) >> 8
		block[6+i] = (y3 - x4 + 128) >> 8
		block[7+i] = (y4 - b7 + 128) >> 8
	}
}
