package models

// Account stores credentials for an external service. EncryptedSecret is
// ciphertext produced by cryptox.Seal; the plaintext never touches the store.
type Account struct {
	ID              int64  `json:"id,omitempty"`
	Name            string `json:"name" validate:"required"`
	Username        string `json:"username" validate:"required"`
	EncryptedSecret string `json:"encryptedSecret"`
	Notes           string `json:"notes,omitempty"`
	Category        string `json:"category" validate:"required"`
	IsPinned        bool   `json:"isPinned,omitempty"`
	IsHighlighted   bool   `json:"isHighlighted,omitempty"`
}

// AccountPatch is a partial update; nil fields are left unchanged.
type AccountPatch struct {
	Name            *string
	Username        *string
	EncryptedSecret *string
	Notes           *string
	Category        *string
	IsPinned        *bool
	IsHighlighted   *bool
}
