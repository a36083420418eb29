// Package qr composes URLs for an external QR rendering service. No image
// generation happens in-process: the returned URL is handed to the client,
// which fetches a scannable image of the encoded data.
package qr

import (
	"fmt"
	"net/url"
)

const DefaultEndpoint = "https://api.qrserver.com/v1/create-qr-code/"

const defaultSize = "200x200"

type Builder struct {
	endpoint string
	size     string
}

func NewBuilder(endpoint string) *Builder {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	return &Builder{
		endpoint: endpoint,
		size:     defaultSize,
	}
}

// ImageURL returns the renderer URL for a QR code encoding data.
func (b *Builder) ImageURL(data string) string {
	return fmt.Sprintf("%s?size=%s&data=%s", b.endpoint, b.size, url.QueryEscape(data))
}
