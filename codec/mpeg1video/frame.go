/*
NAME
  frame.go

DESCRIPTION
  frame.go defines the decoded video frame and plane types, grounded on
  plm_frame_t/plm_plane_t of the reference pl_mpeg implementation.

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

// Plane is one 8-bit sample plane of a Frame.
type Plane struct {
	Width  int
	Height int
	Data   []uint8
}

// Frame is a decoded picture in planar 4:2:0 YCbCr, with Cb/Cr at half the
// luma resolution in each axis. Width/Height are the coded picture
// dimensions; the planes may be larger, padded up to a multiple of the
// macroblock size. A Frame returned by Decoder.Decode aliases the
// Decoder's internal frame storage and is only valid until the next Decode
// call.
type Frame struct {
	Time   float64
	Width  int
	Height int
	Y      Plane
	Cr     Plane
	Cb     Plane
}
