package qrcode

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{0x89, 0x50, 0x4E, 0x47}

func TestGenerateTicketQR(t *testing.T) {
	data, err := GenerateTicketQR("https://checkin.coj.go.th/t/7f9c2ba4-e88f-11ee-a8c6-0242ac120002")
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.True(t, bytes.HasPrefix(data, pngHeader), "ต้องได้ PNG")
}

func TestGenerateTicketQREmptyURL(t *testing.T) {
	data, err := GenerateTicketQR("")
	// ลิงก์ว่าง encode ไม่ได้
	assert.Error(t, err)
	assert.Nil(t, data)
}
