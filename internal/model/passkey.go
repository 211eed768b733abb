package model

import "github.com/go-webauthn/webauthn/protocol"

// RegisterUser is the identity claimed when a passkey is registered.
type RegisterUser struct {
	UserName    string `json:"userName"`
	DisplayName string `json:"displayName,omitempty"`
}

// Ceremony is the first half of a WebAuthn exchange: the options the browser
// passes to navigator.credentials and the attempt id that ties them to the
// stored challenge.
type Ceremony struct {
	AttemptID       string                                      `json:"attemptId"`
	CreationOptions *protocol.PublicKeyCredentialCreationOptions `json:"creationOptions,omitempty"`
	RequestOptions  *protocol.PublicKeyCredentialRequestOptions  `json:"requestOptions,omitempty"`
}
