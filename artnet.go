package planetarium

// This file contains the Art-Net ArtDMX packet layout.  Only the fields needed
// to carry one universe of channel data are populated, sequencing is disabled
// and the physical port is always reported as 0.

import (
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/gvard/planetarium-led/model"
)

const (
	artNetID        = "Art-Net\x00"
	OpDMX           = 0x5000
	ProtocolVersion = 14

	HeaderLen = 18
	PacketLen = HeaderLen + model.MaxChannels
)

// EncodeDMX builds an ArtDMX datagram carrying a full universe of channels
func EncodeDMX(universe uint16, frame *Frame) (pkt []byte) {
	pkt = make([]byte, 0, PacketLen)

	pkt = append(pkt, artNetID...)
	pkt = binary.LittleEndian.AppendUint16(pkt, OpDMX)
	pkt = binary.BigEndian.AppendUint16(pkt, ProtocolVersion)
	pkt = append(pkt, 0) // sequence
	pkt = append(pkt, 0) // physical
	pkt = binary.LittleEndian.AppendUint16(pkt, universe)
	pkt = binary.BigEndian.AppendUint16(pkt, model.MaxChannels)
	pkt = append(pkt, frame[:]...)

	return pkt
}

// DecodeDMX extracts the universe and channel data from an ArtDMX datagram.
// Shorter channel payloads are accepted and the remaining channels are left at
// zero.
func DecodeDMX(pkt []byte) (universe uint16, frame *Frame, err error) {
	if len(pkt) < HeaderLen {
		return 0, nil, errors.Errorf("artnet: packet of %d bytes is too short", len(pkt))
	}
	if string(pkt[:len(artNetID)]) != artNetID {
		return 0, nil, errors.Errorf("artnet: missing packet signature")
	}
	if op := binary.LittleEndian.Uint16(pkt[8:]); op != OpDMX {
		return 0, nil, errors.Errorf("artnet: opcode 0x%04x is not ArtDMX", op)
	}

	universe = binary.LittleEndian.Uint16(pkt[14:])
	length := int(binary.BigEndian.Uint16(pkt[16:]))
	if length > model.MaxChannels {
		return universe, nil, errors.Errorf("artnet: channel count %d exceeds %d", length, model.MaxChannels)
	}
	if HeaderLen+length > len(pkt) {
		return universe, nil, errors.Errorf("artnet: truncated channel data")
	}

	frame = &Frame{}
	copy(frame[:], pkt[HeaderLen:HeaderLen+length])
	return universe, frame, nil
}
