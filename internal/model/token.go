package model

// Token describes a fungible token tracked by the registry.
type Token struct {
	Symbol      string
	Name        string
	MintAddress string
	Decimals    uint8
	TotalSupply *Amount
}
