package port

import "context"

// AddressProvider resolves the current receiving address from the external
// payment-watching service.
type AddressProvider interface {
	ResolveAddress(ctx context.Context) (string, error)
}

// QREncoder renders a payment URI as a scannable image.
type QREncoder interface {
	DataURI(content string) (string, error)
}
