package domain

const (
	// Gateway constants
	DefaultIPFSGateway = "https://ipfs.io"

	// Blockchain constants
	EthereumZeroAddress = "0x0000000000000000000000000000000000000000"
)
