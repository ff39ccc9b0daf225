package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublicIDFromURL(t *testing.T) {
	tests := []struct {
		name   string
		url    string
		wantID string
		wantOK bool
	}{
		{
			name:   "versioned delivery url",
			url:    "https://res.cloudinary.com/demo/image/upload/v1712345678/projects/qahwa/gallery/cup.webp",
			wantID: "projects/qahwa/gallery/cup",
			wantOK: true,
		},
		{
			name:   "single segment after version",
			url:    "https://res.cloudinary.com/demo/image/upload/v1/cup.jpg",
			wantID: "cup",
			wantOK: true,
		},
		{
			name:   "deeply nested folders",
			url:    "https://res.cloudinary.com/demo/image/upload/v1/a/b/c/d/photo.png",
			wantID: "a/b/c/d/photo",
			wantOK: true,
		},
		{
			name:   "no extension",
			url:    "https://res.cloudinary.com/demo/image/upload/v1/projects/qahwa/raw-asset",
			wantID: "projects/qahwa/raw-asset",
			wantOK: true,
		},
		{
			name:   "dot inside folder name kept",
			url:    "https://res.cloudinary.com/demo/image/upload/v1/my.folder/cup.jpg",
			wantID: "my.folder/cup",
			wantOK: true,
		},
		{
			name:   "missing upload marker",
			url:    "https://example.com/static/projects/qahwa/cup.jpg",
			wantOK: false,
		},
		{
			name:   "upload is last segment",
			url:    "https://res.cloudinary.com/demo/image/upload",
			wantOK: false,
		},
		{
			name:   "nothing after version segment",
			url:    "https://res.cloudinary.com/demo/image/upload/v1712345678",
			wantOK: false,
		},
		{
			name:   "not a url at all",
			url:    "cup.jpg",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := PublicIDFromURL(tt.url)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}
