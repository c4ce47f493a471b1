package planetarium

import (
	"encoding/binary"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeLayout(t *testing.T) {
	frame := &Frame{}
	frame[0] = 0xaa
	frame[511] = 0x55

	pkt := EncodeDMX(0x0102, frame)
	require.Len(t, pkt, 530)

	assert.Equal(t, []byte("Art-Net\x00"), pkt[0:8])
	assert.Equal(t, []byte{0x00, 0x50}, pkt[8:10], "opcode is little endian")
	assert.Equal(t, []byte{0x00, 14}, pkt[10:12], "version is big endian")
	assert.Equal(t, byte(0), pkt[12], "sequence")
	assert.Equal(t, byte(0), pkt[13], "physical")
	assert.Equal(t, []byte{0x02, 0x01}, pkt[14:16], "universe is little endian")
	assert.Equal(t, []byte{0x02, 0x00}, pkt[16:18], "length is big endian")
	assert.Equal(t, byte(0xaa), pkt[18])
	assert.Equal(t, byte(0x55), pkt[529])
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(14))

	for _, universe := range []uint16{0, 1, 15, 0x7fff, 0xffff, uint16(rnd.Intn(0x10000))} {
		frame := &Frame{}
		rnd.Read(frame[:])

		pkt := EncodeDMX(universe, frame)
		assert.Len(t, pkt, PacketLen)

		gotUniverse, gotFrame, err := DecodeDMX(pkt)
		require.NoError(t, err)
		assert.Equal(t, universe, gotUniverse)
		assert.Equal(t, *frame, *gotFrame)
	}
}

func TestDecodeRejects(t *testing.T) {
	good := EncodeDMX(3, &Frame{})

	_, _, err := DecodeDMX(good[:10])
	assert.Error(t, err, "short packet")

	bad := append([]byte{}, good...)
	bad[0] = 'X'
	_, _, err = DecodeDMX(bad)
	assert.Error(t, err, "signature")

	bad = append([]byte{}, good...)
	binary.LittleEndian.PutUint16(bad[8:], 0x2000)
	_, _, err = DecodeDMX(bad)
	assert.Error(t, err, "opcode")

	_, _, err = DecodeDMX(good[:100])
	assert.Error(t, err, "truncated data")
}

func TestDecodeShortUniverse(t *testing.T) {
	pkt := EncodeDMX(7, &Frame{})[:HeaderLen]
	binary.BigEndian.PutUint16(pkt[16:], 6)
	pkt = append(pkt, 1, 2, 3, 4, 5, 6)

	universe, frame, err := DecodeDMX(pkt)
	require.NoError(t, err)
	assert.Equal(t, uint16(7), universe)
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 0}, frame[:7])
}
