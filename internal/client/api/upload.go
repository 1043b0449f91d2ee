package api

import "context"

// Upload is the payload returned by UploadImage.
type Upload struct {
	URL string `json:"url"`
}

// PlaceholderImageURL is what UploadImage hands back instead of a real
// stored object.
const PlaceholderImageURL = "https://picsum.photos/seed/mock/600/400"

// UploadImage pretends to upload an image. The backing store cannot accept
// multipart bodies, so no network call is made and the envelope carries a
// fixed placeholder URL.
func (c *Client) UploadImage(ctx context.Context, _ []byte) Result[Upload] {
	return Result[Upload]{
		Success: true,
		Data:    Upload{URL: PlaceholderImageURL},
		Message: "Mock upload success",
	}
}
