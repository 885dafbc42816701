package s3

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyFromURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{name: "public url", url: "https://cdn.example.com/room/3f2c.png", want: "room/3f2c.png"},
		{name: "path style endpoint", url: "http://minio:9000/rooms/room/3f2c.png", want: "room/3f2c.png"},
		{name: "foreign host", url: "https://elsewhere.example.com/room/3f2c.png", want: ""},
		{name: "bare base", url: "https://cdn.example.com/", want: ""},
		{name: "empty", url: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, keyFromURL(tt.url, "https://cdn.example.com", "http://minio:9000/rooms"))
		})
	}
}

func TestKeyFromURLSkipsUnsetBases(t *testing.T) {
	assert.Equal(t, "", keyFromURL("/room/a.png", "", "/"))
}
