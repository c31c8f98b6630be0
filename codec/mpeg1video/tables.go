/*
NAME
  tables.go

DESCRIPTION
  tables.go holds the fixed lookup tables the MPEG-1 video syntax is built
  on: the picture-rate table, default quantization matrices, the zig-zag
  scan, the IDCT premultiplier matrix, and the VLC tables for macroblock
  addressing, macroblock type, coded block pattern, motion vectors, DCT
  coefficient size and DCT coefficient run/level, transcribed verbatim (as
  flat {index, value} pairs, see bitbuf.VLCEntry) from the reference
  pl_mpeg decoder tables.

AUTHORS
  mpeg1 contributors

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package mpeg1video

import "github.com/ausocean/mpeg1/bitbuf"

// pictureRateTable maps the 4-bit sequence header framerate code to a
// frames-per-second value; codes 9-15 are reserved and read as 0.
var pictureRateTable = []float64{
	0, 23.976, 24, 25, 29.97, 30, 50, 59.94, 60, 0, 0, 0, 0, 0, 0, 0,
}

// zigZag maps a coefficient's position in decode order to its position
// within an 8x8 block in raster order.
var zigZag = []uint8{
	0, 1, 8, 16, 9, 2, 3, 10,
	17, 24, 32, 25, 18, 11, 4, 5,
	12, 19, 26, 33, 40, 48, 41, 34,
	27, 20, 13, 6, 7, 14, 21, 28,
	35, 42, 49, 56, 57, 50, 43, 36,
	29, 22, 15, 23, 30, 37, 44, 51,
	58, 59, 52, 45, 38, 31, 39, 46,
	53, 60, 61, 54, 47, 55, 62, 63,
}

// intraQuantMatrixDefault is used for intra blocks when the sequence header
// does not supply a custom matrix; the non-intra default is flat (16) and
// built inline where it's used.
var intraQuantMatrixDefault = []uint8{
	8, 16, 19, 22, 26, 27, 29, 34,
	16, 16, 22, 24, 27, 29, 34, 37,
	19, 22, 26, 27, 29, 34, 34, 38,
	22, 22, 26, 27, 29, 34, 37, 40,
	22, 26, 27, 29, 32, 35, 40, 48,
	26, 27, 29, 32, 35, 40, 48, 58,
	26, 27, 29, 34, 38, 46, 56, 69,
	27, 29, 35, 38, 46, 56, 69, 83,
}

// premultiplierMatrix folds the IDCT's scaling constants into the
// dequantized coefficients ahead of time.
var premultiplierMatrix = []uint8{
	32, 44, 42, 38, 32, 25, 17, 9,
	44, 62, 58, 52, 44, 35, 24, 12,
	42, 58, 55, 49, 42, 33, 23, 12,
	38, 52, 49, 44, 38, 30, 20, 10,
	32, 44, 42, 38, 32, 25, 17, 9,
	25, 35, 33, 30, 25, 20, 14, 7,
	17, 24, 23, 20, 17, 14, 9, 5,
	9, 12, 12, 10, 9, 7, 5, 2,
}
// macroblockAddressIncrementTable decodes macroblock_address_increment;
// value 34 is macroblock_stuffing, 35 is macroblock_escape (+33).
var macroblockAddressIncrementTable = []bitbuf.VLCEntry{
	{Index: 2, Value: 0},
	{Index: 0, Value: 1},
	{Index: 4, Value: 0},
	{Index: 6, Value: 0},
	{Index: 8, Value: 0},
	{Index: 10, Value: 0},
	{Index: 0, Value: 3},
	{Index: 0, Value: 2},
	{Index: 12, Value: 0},
	{Index: 14, Value: 0},
	{Index: 0, Value: 5},
	{Index: 0, Value: 4},
	{Index: 16, Value: 0},
	{Index: 18, Value: 0},
	{Index: 0, Value: 7},
	{Index: 0, Value: 6},
	{Index: 20, Value: 0},
	{Index: 22, Value: 0},
	{Index: 24, Value: 0},
	{Index: 26, Value: 0},
	{Index: 28, Value: 0},
	{Index: 30, Value: 0},
	{Index: 32, Value: 0},
	{Index: 34, Value: 0},
	{Index: 36, Value: 0},
	{Index: 38, Value: 0},
	{Index: 0, Value: 9},
	{Index: 0, Value: 8},
	{Index: -1, Value: 0},
	{Index: 40, Value: 0},
	{Index: -1, Value: 0},
	{Index: 42, Value: 0},
	{Index: 44, Value: 0},
	{Index: 46, Value: 0},
	{Index: 0, Value: 15},
	{Index: 0, Value: 14},
	{Index: 0, Value: 13},
	{Index: 0, Value: 12},
	{Index: 0, Value: 11},
	{Index: 0, Value: 10},
	{Index: 48, Value: 0},
	{Index: 50, Value: 0},
	{Index: 52, Value: 0},
	{Index: 54, Value: 0},
	{Index: 56, Value: 0},
	{Index: 58, Value: 0},
	{Index: 60, Value: 0},
	{Index: 62, Value: 0},
	{Index: 64, Value: 0},
	{Index: -1, Value: 0},
	{Index: -1, Value: 0},
	{Index: 66, Value: 0},
	{Index: 68, Value: 0},
	{Index: 70, Value: 0},
	{Index: 72, Value: 0},
	{Index: 74, Value: 0},
	{Index: 76, Value: 0},
	{Index: 78, Value: 0},
	{Index: 0, Value: 21},
	{Index: 0, Value: 20},
	{Index: 0, Value: 19},
	{Index: 0, Value: 18},
	{Index: 0, Value: 17},
	{Index: 0, Value: 16},
	{Index: 0, Value: 35},
	{Index: -1, Value: 0},
	{Index: -1, Value: 0},
	{Index: 0, Value: 34},
	{Index: 0, Value: 33},
	{Index: 0, Value: 32},
	{Index: 0, Value: 31},
	{Index: 0, Value: 30},
	{Index: 0, Value: 29},
	{Index: 0, Value: 28},
	{Index: 0, Value: 27},
	{Index: 0, Value: 26},
	{Index: 0, Value: 25},
	{Index: 0, Value: 24},
	{Index: 0, Value: 23},
	{Index: 0, Value: 22},
}

// macroblockTypeIntraTable decodes macroblock_type for I pictures. Bit 0 of
// the value is macroblock_intra, bit 4 (0x10) is macroblock_quant.
var macroblockTypeIntraTable = []bitbuf.VLCEntry{
	{Index: 2, Value: 0},
	{Index: 0, Value: 0x01},
	{Index: -1, Value: 0},
	{Index: 0, Value: 0x11},
}

// macroblockTypePredictiveTable decodes macroblock_type for P pictures.
var macroblockTypePredictiveTable = []bitbuf.VLCEntry{
	{Index: 2, Value: 0},
	{Index: 0, Value: 0x0a},
	{Index: 4, Value: 0},
	{Index: 0, Value: 0x02},
	{Index: 6, Value: 0},
	{Index: 0, Value: 0x08},
	{Index: 8, Value: 0},
	{Index: 10, Value: 0},
	{Index: 12, Value: 0},
	{Index: 0, Value: 0x12},
	{Index: 0, Value: 0x1a},
	{Index: 0, Value: 0x01},
	{Index: -1, Value: 0},
	{Index: 0, Value: 0x11},
}

// macroblockTypeBTable decodes macroblock_type for B pictures.
var macroblockTypeBTable = []bitbuf.VLCEntry{
	{Index: 2, Value: 0},
	{Index: 4, Value: 0},
	{Index: 6, Value: 0},
	{Index: 8, Value: 0},
	{Index: 0, Value: 0x0c},
	{Index: 0, Value: 0x0e},
	{Index: 10, Value: 0},
	{Index: 12, Value: 0},
	{Index: 0, Value: 0x04},
	{Index: 0, Value: 0x06},
	{Index: 14, Value: 0},
	{Index: 16, Value: 0},
	{Index: 0, Value: 0x08},
	{Index: 0, Value: 0x0a},
	{Index: 18, Value: 0},
	{Index: 20, Value: 0},
	{Index: 0, Value: 0x1e},
	{Index: 0, Value: 0x01},
	{Index: -1, Value: 0},
	{Index: 0, Value: 0x11},
	{Index: 0, Value: 0x16},
	{Index: 0, Value: 0x1a},
}

// codeBlockPatternTable decodes coded_block_pattern into a 6-bit mask over
// the four luma and two chroma blocks of a macroblock.
var codeBlockPatternTable = []bitbuf.VLCEntry{
	{Index: 2, Value: 0},
	{Index: 4, Value: 0},
	{Index: 6, Value: 0},
	{Index: 8, Value: 0},
	{Index: 10, Value: 0},
	{Index: 12, Value: 0},
	{Index: 14, Value: 0},
	{Index: 16, Value: 0},
	{Index: 18, Value: 0},
	{Index: 20, Value: 0},
	{Index: 22, Value: 0},
	{Index: 24, Value: 0},
	{Index: 26, Value: 0},
	{Index: 0, Value: 60},
	{Index: 28, Value: 0},
	{Index: 30, Value: 0},
	{Index: 32, Value: 0},
	{Index: 34, Value: 0},
	{Index: 36, Value: 0},
	{Index: 38, Value: 0},
	{Index: 40, Value: 0},
	{Index: 42, Value: 0},
	{Index: 44, Value: 0},
	{Index: 46, Value: 0},
	{Index: 0, Value: 32},
	{Index: 0, Value: 16},
	{Index: 0, Value: 8},
	{Index: 0, Value: 4},
	{Index: 48, Value: 0},
	{Index: 50, Value: 0},
	{Index: 52, Value: 0},
	{Index: 54, Value: 0},
	{Index: 56, Value: 0},
	{Index: 58, Value: 0},
	{Index: 60, Value: 0},
	{Index: 62, Value: 0},
	{Index: 0, Value: 62},
	{Index: 0, Value: 2},
	{Index: 0, Value: 61},
	{Index: 0, Value: 1},
	{Index: 0, Value: 56},
	{Index: 0, Value: 52},
	{Index: 0, Value: 44},
	{Index: 0, Value: 28},
	{Index: 0, Value: 40},
	{Index: 0, Value: 20},
	{Index: 0, Value: 48},
	{Index: 0, Value: 12},
	{Index: 64, Value: 0},
	{Index: 66, Value: 0},
	{Index: 68, Value: 0},
	{Index: 70, Value: 0},
	{Index: 72, Value: 0},
	{Index: 74, Value: 0},
	{Index: 76, Value: 0},
	{Index: 78, Value: 0},
	{Index: 80, Value: 0},
	{Index: 82, Value: 0},
	{Index: 84, Value: 0},
	{Index: 86, Value: 0},
	{Index: 0, Value: 63},
	{Index: 0, Value: 3},
	{Index: 0, Value: 36},
	{Index: 0, Value: 24},
	{Index: 88, Value: 0},
	{Index: 90, Value: 0},
	{Index: 92, Value: 0},
	{Index: 94, Value: 0},
	{Index: 96, Value: 0},
	{Index: 98, Value: 0},
	{Index: 100, Value: 0},
	{Index: 102, Value: 0},
	{Index: 104, Value: 0},
	{Index: 106, Value: 0},
	{Index: 108, Value: 0},
	{Index: 110, Value: 0},
	{Index: 112, Value: 0},
	{Index: 114, Value: 0},
	{Index: 116, Value: 0},
	{Index: 118, Value: 0},
	{Index: 0, Value: 34},
	{Index: 0, Value: 18},
	{Index: 0, Value: 10},
	{Index: 0, Value: 6},
	{Index: 0, Value: 33},
	{Index: 0, Value: 17},
	{Index: 0, Value: 9},
	{Index: 0, Value: 5},
	{Index: -1, Value: 0},
	{Index: 120, Value: 0},
	{Index: 122, Value: 0},
	{Index: 124, Value: 0},
	{Index: 0, Value: 58},
	{Index: 0, Value: 54},
	{Index: 0, Value: 46},
	{Index: 0, Value: 30},
	{Index: 0, Value: 57},
	{Index: 0, Value: 53},
	{Index: 0, Value: 45},
	{Index: 0, Value: 29},
	{Index: 0, Value: 38},
	{Index: 0, Value: 26},
	{Index: 0, Value: 37},
	{Index: 0, Value: 25},
	{Index: 0, Value: 43},
	{Index: 0, Value: 23},
	{Index: 0, Value: 51},
	{Index: 0, Value: 15},
	{Index: 0, Value: 42},
	{Index: 0, Value: 22},
	{Index: 0, Value: 50},
	{Index: 0, Value: 14},
	{Index: 0, Value: 41},
	{Index: 0, Value: 21},
	{Index: 0, Value: 49},
	{Index: 0, Value: 13},
	{Index: 0, Value: 35},
	{Index: 0, Value: 19},
	{Index: 0, Value: 11},
	{Index: 0, Value: 7},
	{Index: 0, Value: 39},
	{Index: 0, Value: 27},
	{Index: 0, Value: 59},
	{Index: 0, Value: 55},
	{Index: 0, Value: 47},
	{Index: 0, Value: 31},
}

// motionTable decodes a motion vector component's motion_code.
var motionTable = []bitbuf.VLCEntry{
	{Index: 2, Value: 0},
	{Index: 0, Value: 0},
	{Index: 4, Value: 0},
	{Index: 6, Value: 0},
	{Index: 8, Value: 0},
	{Index: 10, Value: 0},
	{Index: 0, Value: 1},
	{Index: 0, Value: -1},
	{Index: 12, Value: 0},
	{Index: 14, Value: 0},
	{Index: 0, Value: 2},
	{Index: 0, Value: -2},
	{Index: 16, Value: 0},
	{Index: 18, Value: 0},
	{Index: 0, Value: 3},
	{Index: 0, Value: -3},
	{Index: 20, Value: 0},
	{Index: 22, Value: 0},
	{Index: 24, Value: 0},
	{Index: 26, Value: 0},
	{Index: -1, Value: 0},
	{Index: 28, Value: 0},
	{Index: 30, Value: 0},
	{Index: 32, Value: 0},
	{Index: 34, Value: 0},
	{Index: 36, Value: 0},
	{Index: 0, Value: 4},
	{Index: 0, Value: -4},
	{Index: -1, Value: 0},
	{Index: 38, Value: 0},
	{Index: 40, Value: 0},
	{Index: 42, Value: 0},
	{Index: 0, Value: 7},
	{Index: 0, Value: -7},
	{Index: 0, Value: 6},
	{Index: 0, Value: -6},
	{Index: 0, Value: 5},
	{Index: 0, Value: -5},
	{Index: 44, Value: 0},
	{Index: 46, Value: 0},
	{Index: 48, Value: 0},
	{Index: 50, Value: 0},
	{Index: 52, Value: 0},
	{Index: 54, Value: 0},
	{Index: 56, Value: 0},
	{Index: 58, Value: 0},
	{Index: 60, Value: 0},
	{Index: 62, Value: 0},
	{Index: 64, Value: 0},
	{Index: 66, Value: 0},
	{Index: 0, Value: 10},
	{Index: 0, Value: -10},
	{Index: 0, Value: 9},
	{Index: 0, Value: -9},
	{Index: 0, Value: 8},
	{Index: 0, Value: -8},
	{Index: 0, Value: 16},
	{Index: 0, Value: -16},
	{Index: 0, Value: 15},
	{Index: 0, Value: -15},
	{Index: 0, Value: 14},
	{Index: 0, Value: -14},
	{Index: 0, Value: 13},
	{Index: 0, Value: -13},
	{Index: 0, Value: 12},
	{Index: 0, Value: -12},
	{Index: 0, Value: 11},
	{Index: 0, Value: -11},
}

// dctSizeLuminanceTable decodes dct_dc_size_luminance.
var dctSizeLuminanceTable = []bitbuf.VLCEntry{
	{Index: 2, Value: 0},
	{Index: 4, Value: 0},
	{Index: 0, Value: 1},
	{Index: 0, Value: 2},
	{Index: 6, Value: 0},
	{Index: 8, Value: 0},
	{Index: 0, Value: 0},
	{Index: 0, Value: 3},
	{Index: 0, Value: 4},
	{Index: 10, Value: 0},
	{Index: 0, Value: 5},
	{Index: 12, Value: 0},
	{Index: 0, Value: 6},
	{Index: 14, Value: 0},
	{Index: 0, Value: 7},
	{Index: 16, Value: 0},
	{Index: 0, Value: 8},
	{Index: -1, Value: 0},
}

// dctSizeChrominanceTable decodes dct_dc_size_chrominance.
var dctSizeChrominanceTable = []bitbuf.VLCEntry{
	{Index: 2, Value: 0},
	{Index: 4, Value: 0},
	{Index: 0, Value: 0},
	{Index: 0, Value: 1},
	{Index: 0, Value: 2},
	{Index: 6, Value: 0},
	{Index: 0, Value: 3},
	{Index: 8, Value: 0},
	{Index: 0, Value: 4},
	{Index: 10, Value: 0},
	{Index: 0, Value: 5},
	{Index: 12, Value: 0},
	{Index: 0, Value: 6},
	{Index: 14, Value: 0},
	{Index: 0, Value: 7},
	{Index: 16, Value: 0},
	{Index: 0, Value: 8},
	{Index: -1, Value: 0},
}

// dctCoeffTable decodes dct_coeff_next/dct_coeff_first. The leaf value
// packs run in the high byte and level in the low byte; 0x0001 with a
// following zero bit is end_of_block, -1 (read back as 0xffff) is escape.
var dctCoeffTable = []bitbuf.VLCEntry{
	{Index: 2, Value: 0},
	{Index: 0, Value: 0x0001},
	{Index: 4, Value: 0},
	{Index: 6, Value: 0},
	{Index: 8, Value: 0},
	{Index: 10, Value: 0},
	{Index: 12, Value: 0},
	{Index: 0, Value: 0x0101},
	{Index: 14, Value: 0},
	{Index: 16, Value: 0},
	{Index: 18, Value: 0},
	{Index: 20, Value: 0},
	{Index: 0, Value: 0x0002},
	{Index: 0, Value: 0x0201},
	{Index: 22, Value: 0},
	{Index: 24, Value: 0},
	{Index: 26, Value: 0},
	{Index: 28, Value: 0},
	{Index: 30, Value: 0},
	{Index: 0, Value: 0x0003},
	{Index: 0, Value: 0x0401},
	{Index: 0, Value: 0x0301},
	{Index: 32, Value: 0},
	{Index: 0, Value: -1},
	{Index: 34, Value: 0},
	{Index: 36, Value: 0},
	{Index: 0, Value: 0x0701},
	{Index: 0, Value: 0x0601},
	{Index: 0, Value: 0x0102},
	{Index: 0, Value: 0x0501},
	{Index: 38, Value: 0},
	{Index: 40, Value: 0},
	{Index: 42, Value: 0},
	{Index: 44, Value: 0},
	{Index: 0, Value: 0x0202},
	{Index: 0, Value: 0x0901},
	{Index: 0, Value: 0x0004},
	{Index: 0, Value: 0x0801},
	{Index: 46, Value: 0},
	{Index: 48, Value: 0},
	{Index: 50, Value: 0},
	{Index: 52, Value: 0},
	{Index: 54, Value: 0},
	{Index: 56, Value: 0},
	{Index: 58, Value: 0},
	{Index: 60, Value: 0},
	{Index: 0, Value: 0x0d01},
	{Index: 0, Value: 0x0006},
	{Index: 0, Value: 0x0c01},
	{Index: 0, Value: 0x0b01},
	{Index: 0, Value: 0x0302},
	{Index: 0, Value: 0x0103},
	{Index: 0, Value: 0x0005},
	{Index: 0, Value: 0x0a01},
	{Index: 62, Value: 0},
	{Index: 64, Value: 0},
	{Index: 66, Value: 0},
	{Index: 68, Value: 0},
	{Index: 70, Value: 0},
	{Index: 72, Value: 0},
	{Index: 74, Value: 0},
	{Index: 76, Value: 0},
	{Index: 78, Value: 0},
	{Index: 80, Value: 0},
	{Index: 82, Value: 0},
	{Index: 84, Value: 0},
	{Index: 86, Value: 0},
	{Index: 88, Value: 0},
	{Index: 90, Value: 0},
	{Index: 92, Value: 0},
	{Index: 0, Value: 0x1001},
	{Index: 0, Value: 0x0502},
	{Index: 0, Value: 0x0007},
	{Index: 0, Value: 0x0203},
	{Index: 0, Value: 0x0104},
	{Index: 0, Value: 0x0f01},
	{Index: 0, Value: 0x0e01},
	{Index: 0, Value: 0x0402},
	{Index: 94, Value: 0},
	{Index: 96, Value: 0},
	{Index: 98, Value: 0},
	{Index: 100, Value: 0},
	{Index: 102, Value: 0},
	{Index: 104, Value: 0},
	{Index: 106, Value: 0},
	{Index: 108, Value: 0},
	{Index: 110, Value: 0},
	{Index: 112, Value: 0},
	{Index: 114, Value: 0},
	{Index: 116, Value: 0},
	{Index: 118, Value: 0},
	{Index: 120, Value: 0},
	{Index: 122, Value: 0},
	{Index: 124, Value: 0},
	{Index: -1, Value: 0},
	{Index: 126, Value: 0},
	{Index: 128, Value: 0},
	{Index: 130, Value: 0},
	{Index: 132, Value: 0},
	{Index: 134, Value: 0},
	{Index: 136, Value: 0},
	{Index: 138, Value: 0},
	{Index: 140, Value: 0},
	{Index: 142, Value: 0},
	{Index: 144, Value: 0},
	{Index: 146, Value: 0},
	{Index: 148, Value: 0},
	{Index: 150, Value: 0},
	{Index: 152, Value: 0},
	{Index: 154, Value: 0},
	{Index: 0, Value: 0x000b},
	{Index: 0, Value: 0x0802},
	{Index: 0, Value: 0x0403},
	{Index: 0, Value: 0x000a},
	{Index: 0, Value: 0x0204},
	{Index: 0, Value: 0x0702},
	{Index: 0, Value: 0x1501},
	{Index: 0, Value: 0x1401},
	{Index: 0, Value: 0x0009},
	{Index: 0, Value: 0x1301},
	{Index: 0, Value: 0x1201},
	{Index: 0, Value: 0x0105},
	{Index: 0, Value: 0x0303},
	{Index: 0, Value: 0x0008},
	{Index: 0, Value: 0x0602},
	{Index: 0, Value: 0x1101},
	{Index: 156, Value: 0},
	{Index: 158, Value: 0},
	{Index: 160, Value: 0},
	{Index: 162, Value: 0},
	{Index: 164, Value: 0},
	{Index: 166, Value: 0},
	{Index: 168, Value: 0},
	{Index: 170, Value: 0},
	{Index: 172, Value: 0},
	{Index: 174, Value: 0},
	{Index: 176, Value: 0},
	{Index: 178, Value: 0},
	{Index: 180, Value: 0},
	{Index: 182, Value: 0},
	{Index: 0, Value: 0x0a02},
	{Index: 0, Value: 0x0902},
	{Index: 0, Value: 0x0503},
	{Index: 0, Value: 0x0304},
	{Index: 0, Value: 0x0205},
	{Index: 0, Value: 0x0107},
	{Index: 0, Value: 0x0106},
	{Index: 0, Value: 0x000f},
	{Index: 0, Value: 0x000e},
	{Index: 0, Value: 0x000d},
	{Index: 0, Value: 0x000c},
	{Index: 0, Value: 0x1a01},
	{Index: 0, Value: 0x1901},
	{Index: 0, Value: 0x1801},
	{Index: 0, Value: 0x1701},
	{Index: 0, Value: 0x1601},
	{Index: 184, Value: 0},
	{Index: 186, Value: 0},
	{Index: 188, Value: 0},
	{Index: 190, Value: 0},
	{Index: 192, Value: 0},
	{Index: 194, Value: 0},
	{Index: 196, Value: 0},
	{Index: 198, Value: 0},
	{Index: 200, Value: 0},
	{Index: 202, Value: 0},
	{Index: 204, Value: 0},
	{Index: 206, Value: 0},
	{Index: 0, Value: 0x001f},
	{Index: 0, Value: 0x001e},
	{Index: 0, Value: 0x001d},
	{Index: 0, Value: 0x001c},
	{Index: 0, Value: 0x001b},
	{Index: 0, Value: 0x001a},
	{Index: 0, Value: 0x0019},
	{Index: 0, Value: 0x0018},
	{Index: 0, Value: 0x0017},
	{Index: 0, Value: 0x0016},
	{Index: 0, Value: 0x0015},
	{Index: 0, Value: 0x0014},
	{Index: 0, Value: 0x0013},
	{Index: 0, Value: 0x0012},
	{Index: 0, Value: 0x0011},
	{Index: 0, Value: 0x0010},
	{Index: 208, Value: 0},
	{Index: 210, Value: 0},
	{Index: 212, Value: 0},
	{Index: 214, Value: 0},
	{Index: 216, Value: 0},
	{Index: 218, Value: 0},
	{Index: 220, Value: 0},
	{Index: 222, Value: 0},
	{Index: 0, Value: 0x0028},
	{Index: 0, Value: 0x0027},
	{Index: 0, Value: 0x0026},
	{Index: 0, Value: 0x0025},
	{Index: 0, Value: 0x0024},
	{Index: 0, Value: 0x0023},
	{Index: 0, Value: 0x0022},
	{Index: 0, Value: 0x0021},
	{Index: 0, Value: 0x0020},
	{Index: 0, Value: 0x010e},
	{Index: 0, Value: 0x010d},
	{Index: 0, Value: 0x010c},
	{Index: 0, Value: 0x010b},
	{Index: 0, Value: 0x010a},
	{Index: 0, Value: 0x0109},
	{Index: 0, Value: 0x0108},
	{Index: 0, Value: 0x0112},
	{Index: 0, Value: 0x0111},
	{Index: 0, Value: 0x0110},
	{Index: 0, Value: 0x010f},
	{Index: 0, Value: 0x0603},
	{Index: 0, Value: 0x1002},
	{Index: 0, Value: 0x0f02},
	{Index: 0, Value: 0x0e02},
	{Index: 0, Value: 0x0d02},
	{Index: 0, Value: 0x0c02},
	{Index: 0, Value: 0x0b02},
	{Index: 0, Value: 0x1f01},
	{Index: 0, Value: 0x1e01},
	{Index: 0, Value: 0x1d01},
	{Index: 0, Value: 0x1c01},
	{Index: 0, Value: 0x1b01},
}

// pictureType identifies the decode semantics for a coded picture.
const (
	pictureTypeIntra      = 1
	pictureTypePredictive = 2
	pictureTypeB          = 3
)

// macroblockTypeTables selects the macroblock_type VLC table by picture_type;
// index 0 (a forbidden picture_type) is never used since decodePicture
// rejects type 0 and types above 3 (including D pictures, type 4) before
// any slice is decoded.
var macroblockTypeTables = [4][]bitbuf.VLCEntry{
	nil,
	macroblockTypeIntraTable,
	macroblockTypePredictiveTable,
	macroblockTypeBTable,
}

// dctSizeTables selects the dct_dc_size VLC table by plane index
// (0 = luma, 1 = Cb, 2 = Cr).
var dctSizeTables = [3][]bitbuf.VLCEntry{
	dctSizeLuminanceTable,
	dctSizeChrominanceTable,
	dctSizeChrominanceTable,
}
