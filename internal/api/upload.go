package api

import (
	"context"
	"io"
)

// UploadClient wraps the binary upload endpoint.
type UploadClient struct {
	c *Client
}

// NewUploadClient creates an UploadClient.
func NewUploadClient(c *Client) *UploadClient {
	return &UploadClient{c: c}
}

// PackageImage uploads a package photo and returns its hosted URL.
func (u *UploadClient) PackageImage(ctx context.Context, filename string, file io.Reader) (string, error) {
	raw, err := u.c.doMultipart(ctx, "/upload/package-image", "image", filename, file)
	if err != nil {
		return "", err
	}
	res, err := unwrap[struct {
		URL string `json:"url"`
	}](raw, ErrorOnNull, "Upload failed")
	if err != nil {
		return "", err
	}
	return res.URL, nil
}
