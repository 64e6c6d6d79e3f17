package service

import (
	"github.com/MKhiriev/go-pocket-money/internal/adapter"
	"github.com/MKhiriev/go-pocket-money/internal/session"
)

type ClientServices struct {
	AuthService   ClientAuthService
	PocketService ClientPocketService
}

func NewClientServices(tokens session.TokenStore, serverAdapter adapter.ServerAdapter) *ClientServices {
	return &ClientServices{
		AuthService:   NewClientAuthService(tokens, serverAdapter),
		PocketService: NewClientPocketService(serverAdapter),
	}
}
